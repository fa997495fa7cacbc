package xlogger

import "github.com/omeyang/logkit/pkg/xlevel"

// Option Logger 配置选项函数。
type Option func(*config)

type config struct {
	level   xlevel.Level
	onError func(error)
}

// WithLevel 设置初始阈值。
//
// 缺省阈值为最宽松的 [xlevel.Debug]。非法排名在 [New] 中被拒绝。
func WithLevel(level xlevel.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOnError 设置内部错误旁路通道。
//
// Appender 返回错误或 panic 时调用此回调。缺省实现向 os.Stderr
// 写一行诊断。回调在热路径同步执行，应保持轻量。
//
// 安全约束：回调不得再经由同一 Logger 记日志，否则会被递归保护
// 吞掉后续通知；推荐输出到独立的诊断通道。
func WithOnError(fn func(error)) Option {
	return func(c *config) {
		c.onError = fn
	}
}
