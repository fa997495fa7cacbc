package xserial

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// refKey 复合值的身份键，用于已访问集合。
//
// 以数据指针加 Kind 组合标识，避免 slice 数据指针与指向首元素的
// 指针在数值上碰撞时互相误判。
type refKey struct {
	ptr  uintptr
	kind reflect.Kind
}

// Serialize 将任意值渲染为确定性的文本表示。
//
// 永不失败：无法识别的值走默认文本转换。每次调用持有独立的
// 已访问集合，可在并发场景下安全重入。
func Serialize(v any) string {
	return render(v, make(map[refKey]bool))
}

// render 递归渲染单个值，调用树共享同一个已访问集合。
func render(v any, visited map[refKey]bool) string {
	if v == nil {
		return "nil"
	}

	// 自定义字符串转换能力优先，且该能力的输出绝不被递归展开。
	// 转换失败（typed-nil 接收者或方法 panic）时退回默认渲染。
	switch s := v.(type) {
	case fmt.Stringer:
		if text, ok := overrideText(v, s.String); ok {
			return text
		}
	case error:
		if text, ok := overrideText(v, s.Error); ok {
			return text
		}
	}

	return renderValue(reflect.ValueOf(v), visited)
}

// overrideText 执行自定义字符串转换，隔离失败路径。
//
// typed-nil 指针的方法多为指针接收者，调用即解引用空指针，直接
// 渲染为 nil；方法 panic 被吸收并返回 ok=false，调用方退回默认
// 转换——序列化永不失败，也不把 panic 泄漏到日志调用点。
func overrideText(v any, call func() string) (text string, ok bool) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "nil", true
	}
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	return call(), true
}

func renderValue(rv reflect.Value, visited map[refKey]bool) string {
	switch rv.Kind() {
	case reflect.String:
		// 引号加转义，使输出与周围模板文本在视觉上可区分
		return strconv.Quote(rv.String())

	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
		key := refKey{ptr: rv.Pointer(), kind: reflect.Pointer}
		if visited[key] {
			return visitedText(rv)
		}
		visited[key] = true
		return render(rv.Elem().Interface(), visited)

	case reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return render(rv.Elem().Interface(), visited)

	case reflect.Slice:
		if rv.IsNil() {
			return "nil"
		}
		key := refKey{ptr: rv.Pointer(), kind: reflect.Slice}
		if visited[key] {
			return visitedText(rv)
		}
		visited[key] = true
		return renderSeq(rv, visited)

	case reflect.Array:
		// 数组是值类型，没有可共享的身份，不参与访问集合
		return renderSeq(rv, visited)

	case reflect.Map:
		if rv.IsNil() {
			return "nil"
		}
		key := refKey{ptr: rv.Pointer(), kind: reflect.Map}
		if visited[key] {
			return visitedText(rv)
		}
		visited[key] = true
		return renderMap(rv, visited)

	case reflect.Struct:
		return renderStruct(rv, visited)

	default:
		return scalarText(rv)
	}
}

// renderSeq 渲染序列：全部元素按下标顺序构成数组部分。
func renderSeq(rv reflect.Value, visited map[refKey]bool) string {
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts = append(parts, render(rv.Index(i).Interface(), visited))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// renderMap 渲染关联结构：先检出从 1 开始的连续整数键数组前缀，
// 其余键渲染为 "key = value" 并按字典序排序。
func renderMap(rv reflect.Value, visited map[refKey]bool) string {
	intKeys := make(map[int64]reflect.Value)
	var rest []reflect.Value

	for _, k := range rv.MapKeys() {
		n, ok := intOf(k)
		if !ok {
			rest = append(rest, k)
			continue
		}
		if _, dup := intKeys[n]; dup {
			// map[any]any 中 int(1) 与 int64(1) 是不同的键，后到者归入普通键
			rest = append(rest, k)
			continue
		}
		intKeys[n] = k
	}

	// 数组前缀：1..n 的连续段，按下标顺序、无键标签
	var arrayParts []string
	for n := int64(1); ; n++ {
		k, ok := intKeys[n]
		if !ok {
			break
		}
		arrayParts = append(arrayParts, render(rv.MapIndex(k).Interface(), visited))
		delete(intKeys, n)
	}

	// 断档之后的整数键并入普通键
	for _, k := range intKeys {
		rest = append(rest, k)
	}

	// 先按渲染后的键排序再渲染值：访问集合的标记顺序由此变得确定，
	// 共享子结构的"谁展开谁折叠"在两次运行间保持一致
	type entry struct {
		keyText string
		key     reflect.Value
	}
	entries := make([]entry, 0, len(rest))
	for _, k := range rest {
		entries = append(entries, entry{keyText: renderKey(k, visited), key: k})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].keyText < entries[j].keyText })

	pairs := make([]string, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, e.keyText+" = "+render(rv.MapIndex(e.key).Interface(), visited))
	}
	sort.Strings(pairs)

	switch {
	case len(arrayParts) > 0 && len(pairs) > 0:
		return "{" + strings.Join(arrayParts, ", ") + ", " + strings.Join(pairs, ", ") + "}"
	case len(arrayParts) > 0:
		return "{" + strings.Join(arrayParts, ", ") + "}"
	default:
		return "{" + strings.Join(pairs, ", ") + "}"
	}
}

// renderStruct 渲染结构体：导出字段作为 "name = value" 键值对。
func renderStruct(rv reflect.Value, visited map[refKey]bool) string {
	t := rv.Type()
	var pairs []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		pairs = append(pairs, f.Name+" = "+render(rv.Field(i).Interface(), visited))
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}

// renderKey 渲染键：形如标识符的字符串键裸写（foo = ...），
// 其余键走常规渲染。
func renderKey(k reflect.Value, visited map[refKey]bool) string {
	kv := k
	if kv.Kind() == reflect.Interface && !kv.IsNil() {
		kv = kv.Elem()
	}
	if kv.Kind() == reflect.String && isIdent(kv.String()) {
		return kv.String()
	}
	return render(k.Interface(), visited)
}

// intOf 提取整数键的值；非整数类型或超出 int64 范围返回 false。
func intOf(k reflect.Value) (int64, bool) {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return k.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := k.Uint()
		if u > uint64(1<<63-1) {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

// isIdent 键是否可以裸写（字母或下划线开头，仅含字母、数字、下划线）。
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// scalarText 非复合标量的默认文本转换。
func scalarText(rv reflect.Value) string {
	return fmt.Sprint(rv.Interface())
}

// visitedText 已访问复合值的非展开形式。
//
// 不含内存地址，保证独立构造的同构数据两次渲染输出字节级相同。
func visitedText(rv reflect.Value) string {
	return rv.Type().String()
}
