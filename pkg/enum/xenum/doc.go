// Package xenum 提供封闭、不可变、按键唯一的枚举集合。
//
// # 核心概念
//
// 一个 [Enumeration] 是一组有序的 [Member]，每个成员由符号键和值组成。
// 值可以是以下几类之一：
//
//   - 标量：string 等可比较类型
//   - 数值范围：[Range]，两端闭区间，位宽由类型参数决定（uint16 端口、uint32 IPv4）
//   - 复合元组：[Pair]，两个字段只能通过 [Pair.Unpack] 一起读取
//   - 不透明标识：[Tag]，由 [NewTagged] 自动分配，只支持相等比较
//
// # 构建期校验
//
// [New] 在构建时完成全部校验，任何表定义错误都返回 [ErrMalformedEnumeration]：
//
//   - 名称为空、无成员、键为空或重复
//   - 标量值为空、范围 low > high、范围越出 [WithBounds] 声明的边界
//   - 复合元组缺少字段
//   - 别名指向未知键，或别名值与目标值不相等
//   - 启用 [WithUniqueValues] 时出现未声明为别名的重复值
//
// 注册表在包初始化阶段使用 [MustNew]，表定义错误会让进程在 main 之前终止。
//
// # 查询
//
//	algo := xenum.MustNew("Algorithm", []xenum.Member[string]{
//	    xenum.NewMember("MD5", "md5"),
//	    xenum.NewMember("SHA256", "sha256"),
//	})
//	v, err := algo.ValueOf("SHA256") // "sha256", nil
//	_, err = algo.ValueOf("SHA3")    // errors.Is(err, xenum.ErrUnknownMember)
//
// 重叠或嵌套的范围是合法的。[Range.Contains] 只回答"是否在区间内"，
// 一个值同时落入多个范围时由调用方决定含义。
//
// # 线程安全
//
// 构建完成后 Enumeration 不再修改，所有方法可并发调用。
// 返回切片的方法每次都返回新分配的副本。
package xenum
