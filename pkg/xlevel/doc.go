// Package xlevel 定义固定的日志严重度级别注册表。
//
// 五个级别按严重度升序排列：Debug < Info < Warn < Error < Fatal。
// 级别表在进程生命周期内不可变，不存在运行时增删级别的能力。
//
// 级别比较只使用数值排名（Level 的整数值），调用方不得按名称做
// 字典序比较——排名是唯一的门控依据。
//
//   - [Parse]: 按名称解析级别（大小写不敏感，自动 TrimSpace）
//   - [Level.String]: 排名到规范名称（DEBUG/INFO/WARN/ERROR/FATAL）
//   - [Levels]: 按排名升序返回全部级别，用于构建分发表
//
// Level 实现 encoding.TextMarshaler/TextUnmarshaler，支持配置文件
// 直接序列化/反序列化。
package xlevel
