package xenum

// Member 是枚举中的一个 (键, 值) 对。
type Member[V comparable] struct {
	key   string
	value V
}

// NewMember 创建成员。
func NewMember[V comparable](key string, value V) Member[V] {
	return Member[V]{key: key, value: value}
}

// Key 返回成员的符号键。
func (m Member[V]) Key() string {
	return m.key
}

// Value 返回成员绑定的值。
func (m Member[V]) Value() V {
	return m.value
}

// Kind 区分枚举值的形态。
type Kind uint8

const (
	// KindScalar 标量值（字符串等）。
	KindScalar Kind = iota + 1
	// KindRange 数值闭区间。
	KindRange
	// KindCompound 复合元组。
	KindCompound
	// KindTag 不透明标识。
	KindTag
)

// String 返回 Kind 的名称。
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindRange:
		return "range"
	case KindCompound:
		return "compound"
	case KindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// kindOf 根据值类型推断 Kind。
// Tag 与 Range 也实现 validator，因此 case 顺序不可调换。
func kindOf[V comparable]() Kind {
	var zero V
	switch any(zero).(type) {
	case Tag:
		return KindTag
	case spanner:
		return KindRange
	case validator:
		return KindCompound
	default:
		return KindScalar
	}
}
