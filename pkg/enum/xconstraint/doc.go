// Package xconstraint 是数据生成提供方共用的枚举约束注册表。
//
// 每个领域参数（性别、语言区域、端口范围、IPv4 用途、计量单位……）
// 都对应一个封闭的 [xenum.Enumeration]，在包初始化阶段构建并校验，
// 之后只读。任何表定义错误都会在包初始化时 panic，进程无法启动。
//
// # 使用
//
// 提供方通过稳定的符号键引用成员：
//
//	v, err := xconstraint.Algorithm().ValueOf("SHA256") // "sha256"
//	ok, err := xconstraint.PortInRange("WELL_KNOWN", 80) // true
//	scheme, port := xconstraint.DSNType().MustValueOf("POSTGRES").Unpack()
//
// 键不存在时返回 [xenum.ErrUnknownMember]，由调用方转换为自己的领域错误，
// 注册表不会替调用方选择默认值。
//
// # 重叠范围
//
// IPv4Purpose 与 PortRange 的范围按外部分配机构的划分原样保存，
// 其中存在刻意的嵌套与重叠（如 192.0.0.0/24 内的单地址保留块）。
// [IPv4Purposes] 返回一个地址命中的全部用途，不做消歧。
// 只有 PortRange 的 WELL_KNOWN / REGISTERED / EPHEMERAL 三段构成无缝划分。
//
// # 版本契约
//
// 键和值都是提供方可见的公共契约。[Fingerprint] 汇总全部表的内容摘要，
// 任何键、顺序、值或别名的变化都会改变它。
//
// # 线程安全
//
// 所有表在 init 阶段构建完毕且不再修改，可被任意 goroutine 无锁并发读取。
package xconstraint
