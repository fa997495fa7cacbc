package xserial

import (
	"fmt"
	"reflect"
)

// Scalar 按 "%s 替换规则"转换单个参数。
//
// 字符串不加引号原样通过；[]byte 视为文本；复合值经 [Serialize]
// 展开（环安全，永不失败）；其余值走默认文本转换。
func Scalar(v any) string {
	if v == nil {
		return "nil"
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		// 转换失败时落到下方的按 Kind 分派，与 Serialize 同策略
		if text, ok := overrideText(v, s.String); ok {
			return text
		}
	case error:
		if text, ok := overrideText(v, s.Error); ok {
			return text
		}
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		// 默认转换对自引用结构不终止，复合值交给环安全的 Serialize
		return Serialize(v)
	default:
		return fmt.Sprint(v)
	}
}
