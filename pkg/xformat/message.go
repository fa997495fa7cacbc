package xformat

import "github.com/omeyang/logkit/pkg/xserial"

// Message 把 Logger 接受的任意消息形态收敛为最终文本。
//
// 形态规则：
//   - 字符串且无额外参数：原样使用，不做替换
//   - 字符串且有参数：经 [Format] 替换
//   - 零参回调（func() string / func() any）：调用后对返回值递归
//     应用本规则——调用方在级别未启用时跳过整个 Message 调用即可
//     完全避免回调执行
//   - 其余任意值：经 [xserial.Serialize] 转换
func Message(msg any, args ...any) string {
	switch m := msg.(type) {
	case string:
		if len(args) == 0 {
			return m
		}
		return Format(m, args...)

	case func() string:
		if m == nil {
			return xserial.Serialize(nil)
		}
		return Message(m(), args...)

	case func() any:
		if m == nil {
			return xserial.Serialize(nil)
		}
		return Message(m(), args...)

	default:
		return xserial.Serialize(msg)
	}
}
