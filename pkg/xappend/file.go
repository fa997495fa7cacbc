package xappend

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/omeyang/logkit/pkg/xlevel"
	"github.com/omeyang/logkit/pkg/xlogger"
)

// 文件输出默认配置值
const (
	// DefaultMaxSizeMB 默认单个日志文件最大大小（MB）
	DefaultMaxSizeMB = 500

	// DefaultMaxBackups 默认保留的备份文件数量
	DefaultMaxBackups = 7

	// DefaultMaxAgeDays 默认保留备份的天数
	DefaultMaxAgeDays = 30

	// DefaultCompress 默认是否压缩备份
	DefaultCompress = true

	// maxSizeMB 单个日志文件大小上限（10 GB）
	maxSizeMB = 10240

	// maxBackups 备份文件数量上限
	maxBackups = 1024

	// maxAgeDays 备份保留天数上限（约 10 年）
	maxAgeDays = 3650
)

// fileConfig 文件输出配置，基于大小的轮转策略。
type fileConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	LocalTime  bool
	line       []Option
}

// FileOption 文件输出配置选项函数。
type FileOption func(*fileConfig)

// WithMaxSize 设置单个日志文件最大大小（MB）。
func WithMaxSize(mb int) FileOption {
	return func(c *fileConfig) {
		c.MaxSizeMB = mb
	}
}

// WithMaxBackups 设置保留的备份文件数量。
//
// 0 表示不按数量清理（但 MaxBackups 与 MaxAgeDays 不能同时为 0）。
func WithMaxBackups(n int) FileOption {
	return func(c *fileConfig) {
		c.MaxBackups = n
	}
}

// WithMaxAge 设置保留备份的天数。
func WithMaxAge(days int) FileOption {
	return func(c *fileConfig) {
		c.MaxAgeDays = days
	}
}

// WithCompress 设置是否 gzip 压缩备份文件。
func WithCompress(compress bool) FileOption {
	return func(c *fileConfig) {
		c.Compress = compress
	}
}

// WithLocalTime 设置备份文件名是否使用本地时间（缺省 UTC）。
func WithLocalTime(local bool) FileOption {
	return func(c *fileConfig) {
		c.LocalTime = local
	}
}

// WithLine 设置行渲染选项（模板、时间戳格式、时钟）。
func WithLine(opts ...Option) FileOption {
	return func(c *fileConfig) {
		c.line = append(c.line, opts...)
	}
}

// NewRotatingFile 创建基于 lumberjack 的按大小轮转文件 Appender。
//
// 返回 Appender、关闭函数与错误。父目录不存在时自动创建（权限
// 0750）。关闭后的写入与重复关闭都返回 [ErrClosed]。
//
// lumberjack 提供按大小自动轮转、备份数量/天数清理、可选 gzip
// 压缩，写入本身并发安全。
func NewRotatingFile(filename string, opts ...FileOption) (xlogger.Appender, func() error, error) {
	if filename == "" {
		return nil, nil, ErrEmptyFilename
	}

	cfg := fileConfig{
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
		Compress:   DefaultCompress,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateFileConfig(&cfg); err != nil {
		return nil, nil, err
	}

	path := filepath.Clean(filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("xappend: create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	}

	o := defaultOptions()
	for _, lo := range cfg.line {
		if lo != nil {
			lo(o)
		}
	}

	var closed atomic.Bool

	appender := func(level xlevel.Level, message string) error {
		if closed.Load() {
			return ErrClosed
		}
		line := o.render(level, message)
		if _, err := lj.Write([]byte(line)); err != nil {
			// Write 通过前置检查后 Close 可能已完成；后置检查保证
			// 调用方始终得到 ErrClosed 而非底层 I/O 错误
			if closed.Load() {
				return ErrClosed
			}
			return err
		}
		return nil
	}

	cleanup := func() error {
		// 首次关闭失败后不重置标记：关闭后不再有新的写入到达底层
		if closed.Swap(true) {
			return ErrClosed
		}
		return lj.Close()
	}

	return appender, cleanup, nil
}

// validateFileConfig 验证文件输出配置。
func validateFileConfig(cfg *fileConfig) error {
	if cfg.MaxSizeMB <= 0 || cfg.MaxSizeMB > maxSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, cfg.MaxSizeMB, maxSizeMB)
	}
	if cfg.MaxBackups < 0 || cfg.MaxBackups > maxBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, cfg.MaxBackups, maxBackups)
	}
	if cfg.MaxAgeDays < 0 || cfg.MaxAgeDays > maxAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, cfg.MaxAgeDays, maxAgeDays)
	}
	if cfg.MaxBackups == 0 && cfg.MaxAgeDays == 0 {
		return fmt.Errorf("%w: MaxBackups and MaxAgeDays cannot both be 0", ErrNoCleanupPolicy)
	}
	return nil
}
