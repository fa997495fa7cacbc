package xappend

import (
	"errors"

	"github.com/omeyang/logkit/pkg/xlevel"
	"github.com/omeyang/logkit/pkg/xlogger"
)

// NewMulti 创建扇出到多个 Appender 的组合 Appender。
//
// 每个子 Appender 都会被调用，任一失败不阻断其余；全部失败以
// errors.Join 合并返回。nil 子项被跳过。
func NewMulti(appenders ...xlogger.Appender) xlogger.Appender {
	// 复制切片，隔离调用方后续对参数切片的修改
	targets := make([]xlogger.Appender, 0, len(appenders))
	for _, a := range appenders {
		if a != nil {
			targets = append(targets, a)
		}
	}

	return func(level xlevel.Level, message string) error {
		var errs []error
		for _, a := range targets {
			if err := a(level, message); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}
