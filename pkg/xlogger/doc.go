// Package xlogger 实现按严重度分级的日志核心。
//
// # 设计
//
//   - 每个独立日志流对应一个 [Logger] 实例；输出边界是构造时注入的
//     [Appender] 回调，核心自身不做任何 I/O
//   - 阈值（最低输出级别）以原子变量保存，级别激活状态是阈值的
//     纯函数，在调用点按排名比较现场判定，不存在可独立设置的
//     激活标志，因此激活状态与阈值永不失配
//   - [Logger.SetLevel] 对并发的日志调用是原子的：要么观察到完整的
//     旧阈值，要么观察到完整的新阈值，不存在撕裂的中间态
//
// # 级别未启用时的零开销契约
//
// Debug/Info/Warn/Error/Fatal 在级别未启用时立即返回：不做消息
// 格式化、不触发序列化、延迟回调绝不被调用。这是硬性契约而非
// 优化——延迟回调消息可能任意昂贵。
//
// # Appender 失败
//
// 日志调用对调用方是 fire-and-forget 的：Appender 返回错误或 panic
// 都不会传播到调用点，而是计入错误计数并通过 onError 旁路通道上报
// （默认写一行到进程诊断流 os.Stderr）。onError 回调自身带递归保护
// 与 panic 隔离。唯一同步返回给调用方的错误是调用方自己传入的
// 非法级别（[xlevel.ErrUndefinedLevel]）。
package xlogger
