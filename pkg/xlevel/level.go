package xlevel

import (
	"fmt"
	"strings"
)

// Level 日志级别，整数值即严重度排名，值越大越严重。
type Level int

// 五个固定级别，排名在进程生命周期内不变。
const (
	Debug Level = iota
	Info
	Warn
	Error
	Fatal
)

// levelNames 排名到规范名称的映射表，下标即排名。
//
// 注册表为静态不可变数组，不暴露任何可变的全局状态。
var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// Levels 按排名升序返回全部级别。
//
// 每次调用返回新的切片，调用方可安全修改。
func Levels() []Level {
	return []Level{Debug, Info, Warn, Error, Fatal}
}

// Valid 排名是否落在固定注册表范围内。
func (l Level) Valid() bool {
	return l >= Debug && l <= Fatal
}

// String 返回级别的规范大写名称。
//
// 范围外的排名返回 "LEVEL(<n>)" 形式，便于诊断输出。
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// Parse 按名称解析级别。
//
// 大小写不敏感，输入自动 TrimSpace。未知名称返回 [ErrUndefinedLevel]，
// 此时级别返回值为 Info，调用方不应使用。
func Parse(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	default:
		return Info, fmt.Errorf("%w: %q", ErrUndefinedLevel, s)
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口。
//
// 范围外的排名视为编程错误，返回 [ErrUndefinedLevel]。
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: rank %d", ErrUndefinedLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口。
//
// 支持从配置文件直接反序列化日志级别。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
