// Package xserial 将任意 Go 值渲染为确定性的、环安全的文本表示。
//
// [Serialize] 是纯函数：无副作用、不会失败、同一结构两次渲染产生
// 字节级相同的输出。渲染规则：
//
//   - 实现 fmt.Stringer 的值完全委托给 String()，不做递归展开
//   - 字符串渲染为带引号的转义字面量（strconv.Quote）
//   - 其他标量走默认文本转换
//   - 复合值（map/slice/array/struct）渲染为 "{ ... }"：
//     从 1 开始连续整数键构成无标签的数组前缀，其余键渲染为
//     "key = value"，渲染后的键值对按字典序排序后以逗号连接
//   - 引用环：每次顶层调用持有独立的已访问集合，同一复合值在
//     一棵调用树中只展开一次，再次出现时渲染为非展开形式
//
// 排序规则的存在是因为 Go 的 map 迭代顺序是随机的；没有排序就无法
// 满足"两次运行输出字节级相同"的约束。
//
// [Scalar] 是 "%s 替换规则"的转换入口：字符串不加引号原样通过，
// 复合值经 Serialize 展开，其余值走默认文本转换。
package xserial
