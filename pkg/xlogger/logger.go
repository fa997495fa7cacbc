package xlogger

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/omeyang/logkit/pkg/xformat"
	"github.com/omeyang/logkit/pkg/xlevel"
)

// Appender 输出回调，日志核心唯一的副作用边界。
//
// 接收级别与已格式化的消息文本；如何落盘、上屏或转发由宿主环境
// 决定。同一个 Appender 函数可以被多个独立构造的 Logger 复用，
// 是否复用是调用方的选择。
type Appender func(level xlevel.Level, message string) error

// Logger 一个独立日志流的可变实例。
//
// 零值不可用，必须经 [New] 构造。所有方法并发安全。
type Logger struct {
	appender Appender
	level    atomic.Int32 // 当前阈值排名，激活状态由它唯一决定
	onError  func(error)

	errorCount     atomic.Uint64 // Appender 失败计数（监控/测试用）
	inErrorHandler atomic.Bool   // 防止 onError 递归调用
}

// New 构造 Logger。
//
// appender 为 nil 时返回 [ErrNilAppender]。缺省阈值为
// [xlevel.Debug]（最宽松）。
func New(appender Appender, opts ...Option) (*Logger, error) {
	if appender == nil {
		return nil, ErrNilAppender
	}

	cfg := config{level: xlevel.Debug}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.level.Valid() {
		return nil, fmt.Errorf("%w: rank %d", xlevel.ErrUndefinedLevel, int(cfg.level))
	}

	l := &Logger{
		appender: appender,
		onError:  cfg.onError,
	}
	l.level.Store(int32(cfg.level))
	return l, nil
}

// SetLevel 原子地设置阈值。
//
// 非法排名返回 [xlevel.ErrUndefinedLevel]，原阈值保持不变。
// 并发的日志调用要么观察到完整的旧阈值，要么观察到完整的新阈值。
func (l *Logger) SetLevel(level xlevel.Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: rank %d", xlevel.ErrUndefinedLevel, int(level))
	}
	l.level.Store(int32(level))
	return nil
}

// SetLevelString 按名称设置阈值。
//
// 未知名称返回 [xlevel.ErrUndefinedLevel]，原阈值保持不变。
func (l *Logger) SetLevelString(s string) error {
	level, err := xlevel.Parse(s)
	if err != nil {
		return err
	}
	return l.SetLevel(level)
}

// Level 返回当前阈值。
func (l *Logger) Level() xlevel.Level {
	return xlevel.Level(l.level.Load())
}

// Enabled 指定级别当前是否会被输出。
//
// 激活状态是阈值的纯函数：rank(level) >= rank(threshold)。
func (l *Logger) Enabled(level xlevel.Level) bool {
	return int32(level) >= l.level.Load()
}

// Log 按动态级别记录一条日志。
//
// 非法排名返回 [xlevel.ErrUndefinedLevel]；级别未启用时立即返回
// nil，不做任何消息构造；否则解析消息并调用 Appender。Appender
// 的失败不会从这里返回。
func (l *Logger) Log(level xlevel.Level, msg any, args ...any) error {
	if !level.Valid() {
		return fmt.Errorf("%w: rank %d", xlevel.ErrUndefinedLevel, int(level))
	}
	if !l.Enabled(level) {
		return nil
	}
	l.emit(level, msg, args)
	return nil
}

// Debug 记录 Debug 级别日志。
func (l *Logger) Debug(msg any, args ...any) {
	if !l.Enabled(xlevel.Debug) {
		return
	}
	l.emit(xlevel.Debug, msg, args)
}

// Info 记录 Info 级别日志。
func (l *Logger) Info(msg any, args ...any) {
	if !l.Enabled(xlevel.Info) {
		return
	}
	l.emit(xlevel.Info, msg, args)
}

// Warn 记录 Warn 级别日志。
func (l *Logger) Warn(msg any, args ...any) {
	if !l.Enabled(xlevel.Warn) {
		return
	}
	l.emit(xlevel.Warn, msg, args)
}

// Error 记录 Error 级别日志。
func (l *Logger) Error(msg any, args ...any) {
	if !l.Enabled(xlevel.Error) {
		return
	}
	l.emit(xlevel.Error, msg, args)
}

// Fatal 记录 Fatal 级别日志。
//
// Fatal 只是最高排名，不终止进程；是否退出由宿主在 Appender 侧
// 决定。
func (l *Logger) Fatal(msg any, args ...any) {
	if !l.Enabled(xlevel.Fatal) {
		return
	}
	l.emit(xlevel.Fatal, msg, args)
}

// ErrorCount 返回累计的 Appender 失败次数。
func (l *Logger) ErrorCount() uint64 {
	return l.errorCount.Load()
}

// emit 解析消息并穿过 Appender 边界。调用方已完成级别门控。
func (l *Logger) emit(level xlevel.Level, msg any, args []any) {
	text := xformat.Message(msg, args...)
	l.append(level, text)
}

// append 调用 Appender，失败与 panic 都被就地吸收。
//
// 日志调用绝不允许让调用方崩溃：错误计数后经 onError 旁路上报。
func (l *Logger) append(level xlevel.Level, text string) {
	defer func() {
		if r := recover(); r != nil {
			l.handleError(fmt.Errorf("xlogger: appender panic: %v", r))
		}
	}()

	if err := l.appender(level, text); err != nil {
		l.handleError(err)
	}
}

// handleError 处理 Appender 失败。
//
// 递归保护：onError 回调内部再触发失败时跳过通知，errorCount 仍
// 计入全部失败；回调定位为 best-effort。
func (l *Logger) handleError(err error) {
	l.errorCount.Add(1)
	if l.inErrorHandler.CompareAndSwap(false, true) {
		defer l.inErrorHandler.Store(false)
		l.safeOnError(err)
	}
}

// safeOnError 执行旁路通知，隔离回调 panic。
func (l *Logger) safeOnError(err error) {
	defer func() {
		if r := recover(); r != nil {
			// 回调 panic 也计入错误计数，便于监控发现
			l.errorCount.Add(1)
		}
	}()

	if l.onError != nil {
		l.onError(err)
		return
	}
	fmt.Fprintf(os.Stderr, "xlogger: appender error: %v\n", err)
}
