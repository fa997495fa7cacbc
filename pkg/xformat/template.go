package xformat

import "strings"

// 行模板默认值。
const (
	// DefaultPattern 默认行模板。
	DefaultPattern = "%date %level %message\n"

	// DefaultDateLayout 默认时间戳格式。
	DefaultDateLayout = "2006-01-02 15:04:05"
)

// ApplyTemplate 把行模板中的 %date、%level、%message 标记替换为
// 时间戳、级别名与消息文本。
//
// 标记是整词标记：后面紧跟字母、数字或下划线时视为更长的普通文本
// 原样保留（"%dated" 不是 "%date"）。标记按固定顺序替换：%date、
// %level，最后 %message。消息文本最后插入且替换不回扫已插入的
// 文本，因此消息中出现的 % 或标记字样不会被误认为模板标记。
func ApplyTemplate(pattern, date, level, message string) string {
	s := replaceToken(pattern, "%date", date)
	s = replaceToken(s, "%level", level)
	s = replaceToken(s, "%message", message)
	return s
}

// replaceToken 整词替换标记的全部出现。
func replaceToken(s, token, repl string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, token)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := i + len(token)
		if end < len(s) && isWordByte(s[end]) {
			// 标记是更长一段文本的前缀，整段保留
			b.WriteString(s[:end])
			s = s[end:]
			continue
		}
		b.WriteString(s[:i])
		b.WriteString(repl)
		s = s[end:]
	}
}

func isWordByte(c byte) bool {
	return c == '_' ||
		c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}
