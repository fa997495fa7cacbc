// Package xlogconf 从配置文件构建日志实例。
//
// 配置经 koanf 解析（YAML/JSON，按扩展名自动识别），映射为
// [Config] 后通过 [Config.Build] 组装 Logger 与对应的 Appender：
//
//	level: info
//	pattern: "%date [%level] %message\n"
//	output: file
//	file:
//	  path: /var/log/app.log
//	  max_size_mb: 100
//	  max_backups: 7
//
// [Watch] 监控配置文件变更并把新的级别热应用到运行中的 Logger；
// 输出拓扑（output/file 段）的变更需要重建 Logger，监视器只上报
// 不代劳。
package xlogconf
