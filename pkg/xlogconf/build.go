package xlogconf

import (
	"fmt"
	"strings"

	"github.com/omeyang/logkit/pkg/xappend"
	"github.com/omeyang/logkit/pkg/xlevel"
	"github.com/omeyang/logkit/pkg/xlogger"
)

// noopCleanup console/discard 输出没有需要释放的资源。
func noopCleanup() error { return nil }

// Build 按配置组装 Logger 与清理函数。
//
// 未知级别名称返回 [xlevel.ErrUndefinedLevel]，未知输出类型返回
// [ErrInvalidOutput]；文件输出的校验错误来自 xappend。
func (c Config) Build() (*xlogger.Logger, func() error, error) {
	level := xlevel.Debug
	if c.Level != "" {
		parsed, err := xlevel.Parse(c.Level)
		if err != nil {
			return nil, nil, err
		}
		level = parsed
	}

	var lineOpts []xappend.Option
	if c.Pattern != "" {
		lineOpts = append(lineOpts, xappend.WithPattern(c.Pattern))
	}
	if c.DateLayout != "" {
		lineOpts = append(lineOpts, xappend.WithDateLayout(c.DateLayout))
	}

	appender, cleanup, err := c.buildAppender(lineOpts)
	if err != nil {
		return nil, nil, err
	}

	logger, err := xlogger.New(appender, xlogger.WithLevel(level))
	if err != nil {
		// Appender 已分配的资源随构造失败一并释放
		_ = cleanup()
		return nil, nil, err
	}
	return logger, cleanup, nil
}

// buildAppender 按输出类型构建 Appender。
func (c Config) buildAppender(lineOpts []xappend.Option) (xlogger.Appender, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(c.Output)) {
	case "", OutputConsole:
		return xappend.NewConsole(lineOpts...), noopCleanup, nil

	case OutputDiscard:
		return xappend.Discard, noopCleanup, nil

	case OutputFile:
		opts := c.File.options()
		opts = append(opts, xappend.WithLine(lineOpts...))
		return xappend.NewRotatingFile(c.File.Path, opts...)

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
}

// options 把文件配置映射为 xappend 选项；0 值字段沿用缺省值。
func (f FileConfig) options() []xappend.FileOption {
	var opts []xappend.FileOption
	if f.MaxSizeMB > 0 {
		opts = append(opts, xappend.WithMaxSize(f.MaxSizeMB))
	}
	if f.MaxBackups > 0 {
		opts = append(opts, xappend.WithMaxBackups(f.MaxBackups))
	}
	if f.MaxAgeDays > 0 {
		opts = append(opts, xappend.WithMaxAge(f.MaxAgeDays))
	}
	if f.Compress != nil {
		opts = append(opts, xappend.WithCompress(*f.Compress))
	}
	if f.LocalTime {
		opts = append(opts, xappend.WithLocalTime(true))
	}
	return opts
}
