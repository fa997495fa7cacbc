// Package xformat 提供日志消息的两套独立格式化算法。
//
// # 参数替换（Format）
//
// 自定义的替换格式，与标准 printf 的区别只在 "%s"：
//
//   - 恰好两字符的 "%s" 在扫描期立即消费下一个参数，经 [xserial.Scalar]
//     安全转换后就地替换（替换文本中的 % 会被转义，不会被二次解释）
//   - 其余 %-指令（宽度/精度/类型动词）原样保留，对应参数延后，
//     扫描结束后对剩余指令与剩余参数执行一次标准定位格式化
//   - 不存在非 %s 指令时，扫描输出即最终文本，没有第二遍
//
// 这让调用方可以用 "%s" 记录任意值而不受严格的数值/宽度格式规则
// 约束，同时保留经典的 %d/%f 风格指令。
//
// # 行模板（ApplyTemplate）
//
// 把 %date、%level、%message 三个整词标记替换为时间戳、级别名与
// 消息文本。标记是纯文本标记，不是 printf 指令，不消费定位参数。
//
// # 消息形态（Message）
//
// Logger 接受的消息形态在此收敛：纯字符串（无参数时原样使用）、
// 零参延迟回调（级别未启用时整个构造被跳过）、任意值
// （经 [xserial.Serialize] 转换）。
package xformat
