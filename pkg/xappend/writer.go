package xappend

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/omeyang/logkit/pkg/xformat"
	"github.com/omeyang/logkit/pkg/xlevel"
	"github.com/omeyang/logkit/pkg/xlogger"
)

// Option 行渲染配置选项函数。
type Option func(*options)

type options struct {
	pattern    string
	dateLayout string
	clock      func() time.Time
}

func defaultOptions() *options {
	return &options{
		pattern:    xformat.DefaultPattern,
		dateLayout: xformat.DefaultDateLayout,
		clock:      time.Now,
	}
}

// render 把 (级别, 消息) 渲染成完整日志行。
func (o *options) render(level xlevel.Level, message string) string {
	return xformat.ApplyTemplate(o.pattern, o.clock().Format(o.dateLayout), level.String(), message)
}

// WithPattern 设置行模板。
//
// 识别 %date、%level、%message 三个标记，缺省 [xformat.DefaultPattern]。
// 空串视为使用缺省模板。
func WithPattern(pattern string) Option {
	return func(o *options) {
		if pattern != "" {
			o.pattern = pattern
		}
	}
}

// WithDateLayout 设置 %date 的时间戳格式（Go time layout）。
func WithDateLayout(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.dateLayout = layout
		}
	}
}

// WithClock 注入时钟。仅用于测试确定性时间戳。
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// NewWriter 创建写入任意 io.Writer 的 Appender。
//
// 行模板与时间戳在本层套用；对同一 Appender 的并发调用由内部互斥
// 锁串行化，w 本身无需并发安全。w 为 nil 时返回的 Appender 恒定
// 失败（[ErrNilWriter]），失败经 Logger 旁路通道上报。
func NewWriter(w io.Writer, opts ...Option) xlogger.Appender {
	if w == nil {
		return func(xlevel.Level, string) error { return ErrNilWriter }
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	var mu sync.Mutex
	return func(level xlevel.Level, message string) error {
		line := o.render(level, message)
		mu.Lock()
		defer mu.Unlock()
		_, err := io.WriteString(w, line)
		return err
	}
}

// NewConsole 创建写入 os.Stderr 的 Appender。
func NewConsole(opts ...Option) xlogger.Appender {
	return NewWriter(os.Stderr, opts...)
}

// Discard 丢弃一切输出的 Appender，基准测试与占位用。
var Discard xlogger.Appender = func(xlevel.Level, string) error { return nil }
