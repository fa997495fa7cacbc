package xlogger

import "errors"

// ErrNilAppender 构造时未提供可调用的 Appender。
var ErrNilAppender = errors.New("xlogger: nil appender")
