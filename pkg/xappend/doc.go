// Package xappend 提供现成的 Appender 实现。
//
// Appender 是日志核心的输出边界（[xlogger.Appender]）；本包负责把
// (级别, 消息) 渲染成完整的日志行并送达目的地：
//
//   - [NewWriter]: 任意 io.Writer，行模板 + 时间戳由本层套用
//   - [NewConsole]: os.Stderr 便捷封装
//   - [NewRotatingFile]: 基于 lumberjack 的按大小轮转文件输出
//   - [NewMulti]: 扇出到多个 Appender
//   - [Discard]: 丢弃一切，基准测试用
//
// 行模板使用 [xformat.ApplyTemplate] 的 %date/%level/%message 标记，
// 缺省 [xformat.DefaultPattern]。
//
// 本包的内部失败只通过返回值交给 Logger 的旁路通道，绝不经由任何
// 日志库上报——日志输出组件若再打日志，会在自身作为输出目标时
// 形成递归写入。
package xappend
