package xlevel

import "errors"

// ErrUndefinedLevel 级别名称或排名不在固定的五个级别之内。
//
// 这是调用方的编程错误，会同步返回给调用点，而非可恢复的运行时状态。
var ErrUndefinedLevel = errors.New("xlevel: undefined level")
