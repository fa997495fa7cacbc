package xformat

import (
	"fmt"
	"strings"

	"github.com/omeyang/logkit/pkg/xserial"
)

// Format 按自定义替换规则格式化模板。
//
// 从左到右扫描 %-指令："%s" 立即消费参数并替换，"%%" 保持字面百分号，
// 其余指令保留并把对应参数延后到最终的一次 fmt.Sprintf。指令在重写后
// 的模板中保持稠密连续，延后参数按原始顺序对位。
//
// 参数不足时沿用 fmt 的 %!verb(MISSING) 约定；纯 %s 模板的多余参数
// 被忽略。
func Format(template string, args ...any) string {
	var out strings.Builder
	var deferred []any
	argi := 0
	hasDeferred := false

	i := 0
	for i < len(template) {
		c := template[i]
		if c != '%' {
			out.WriteByte(c)
			i++
			continue
		}

		// 结尾孤立的 %，按字面量处理
		if i+1 >= len(template) {
			out.WriteString("%%")
			break
		}

		switch {
		case template[i+1] == '%':
			out.WriteString("%%")
			i += 2

		case template[i+1] == 's':
			// 恰好两字符的 %s：扫描期立即消费并替换，不进入延后阶段。
			// 替换文本中的 % 转义为 %%，保证不会被最终阶段二次解释。
			var text string
			if argi < len(args) {
				text = xserial.Scalar(args[argi])
				argi++
			} else {
				text = "%!s(MISSING)"
			}
			out.WriteString(strings.ReplaceAll(text, "%", "%%"))
			i += 2

		default:
			end := directiveEnd(template, i)
			if end < 0 {
				// 没有动词收尾的残缺指令，按字面量输出
				out.WriteString(strings.ReplaceAll(template[i:], "%", "%%"))
				i = len(template)
				break
			}
			dir := template[i : end+1]
			out.WriteString(dir)
			hasDeferred = true
			// '*' 宽度/精度额外消费一个参数
			consume := 1 + strings.Count(dir, "*")
			for n := 0; n < consume && argi < len(args); n++ {
				deferred = append(deferred, args[argi])
				argi++
			}
			i = end + 1
		}
	}

	if !hasDeferred {
		// 扫描输出即最终文本，仅需还原转义的百分号
		return strings.ReplaceAll(out.String(), "%%", "%")
	}

	deferred = append(deferred, args[argi:]...)
	return fmt.Sprintf(out.String(), deferred...)
}

// directiveEnd 返回从 start 处 % 开始的指令的动词下标。
//
// 扫描旗标、宽度、精度（含 '*'），首个字母即动词；遇到非法字符或
// 到达结尾仍无动词时返回 -1。
func directiveEnd(s string, start int) int {
	for j := start + 1; j < len(s); j++ {
		c := s[j]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			return j
		case c == '+' || c == '-' || c == '#' || c == ' ' ||
			c >= '0' && c <= '9' || c == '.' || c == '*':
			// 旗标、宽度、精度，继续扫描
		default:
			return -1
		}
	}
	return -1
}
