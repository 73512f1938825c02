package xenum

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Enumeration 是封闭、不可变、按键唯一的成员集合，保留声明顺序。
type Enumeration[V comparable] struct {
	name        string
	kind        Kind
	members     []Member[V]
	index       map[string]int
	aliases     map[string]string // alias key -> target key
	fingerprint uint64
}

// =============================================================================
// 构建
// =============================================================================

// New 构建并校验枚举。
//
// 任何表定义错误都返回包装了 [ErrMalformedEnumeration] 的错误，
// 此时不会返回部分构建的枚举。
func New[V comparable](name string, members []Member[V], opts ...Option) (*Enumeration[V], error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	if name == "" {
		return nil, malformed(name, "empty name")
	}
	if len(members) == 0 {
		return nil, malformed(name, "no members")
	}

	e := &Enumeration[V]{
		name:    name,
		kind:    kindOf[V](),
		members: slices.Clone(members),
		index:   make(map[string]int, len(members)),
	}
	if s.hasBounds && e.kind != KindRange {
		return nil, malformed(name, "bounds declared on %s enumeration", e.kind)
	}

	for i, m := range e.members {
		if m.key == "" {
			return nil, malformed(name, "member #%d has empty key", i)
		}
		if _, dup := e.index[m.key]; dup {
			return nil, malformed(name, "duplicate key %s", m.key)
		}
		if err := checkValue(m.value, s); err != nil {
			return nil, malformed(name, "member %s: %v", m.key, err)
		}
		e.index[m.key] = i
	}

	if err := e.bindAliases(s.aliases); err != nil {
		return nil, err
	}
	if s.unique {
		if err := e.checkUnique(); err != nil {
			return nil, err
		}
	}

	e.fingerprint = e.computeFingerprint()
	return e, nil
}

// MustNew 与 New 相同，但失败时 panic。
// 用于包级变量初始化，表定义错误应阻止进程启动。
func MustNew[V comparable](name string, members []Member[V], opts ...Option) *Enumeration[V] {
	e, err := New(name, members, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// NewTagged 构建不透明标识枚举，按声明顺序为每个键自动分配 [Tag]。
func NewTagged(name string, keys []string, opts ...Option) (*Enumeration[Tag], error) {
	members := make([]Member[Tag], len(keys))
	for i, key := range keys {
		members[i] = NewMember(key, Tag{owner: name, key: key, ord: i + 1})
	}
	return New(name, members, opts...)
}

// MustNewTagged 与 NewTagged 相同，但失败时 panic。
func MustNewTagged(name string, keys []string, opts ...Option) *Enumeration[Tag] {
	e, err := NewTagged(name, keys, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// checkValue 校验单个成员值。
func checkValue[V comparable](v V, s *settings) error {
	if c, ok := any(v).(validator); ok {
		if err := c.validate(); err != nil {
			return err
		}
	} else {
		var zero V
		if v == zero {
			return errors.New("empty value")
		}
	}
	if s.hasBounds {
		if sp, ok := any(v).(spanner); ok {
			low, high := sp.span()
			if low < s.lower || high > s.upper {
				return fmt.Errorf("range [%d, %d] outside bounds [%d, %d]", low, high, s.lower, s.upper)
			}
		}
	}
	return nil
}

// bindAliases 校验别名声明：两端均存在、不自指、值相等。
func (e *Enumeration[V]) bindAliases(aliases []alias) error {
	if len(aliases) == 0 {
		return nil
	}
	e.aliases = make(map[string]string, len(aliases))
	for _, a := range aliases {
		ai, ok := e.index[a.key]
		if !ok {
			return malformed(e.name, "alias %s is not a member", a.key)
		}
		ti, ok := e.index[a.target]
		if !ok {
			return malformed(e.name, "alias %s targets unknown member %s", a.key, a.target)
		}
		if a.key == a.target {
			return malformed(e.name, "alias %s targets itself", a.key)
		}
		if _, dup := e.aliases[a.key]; dup {
			return malformed(e.name, "alias %s declared twice", a.key)
		}
		if _, chained := e.aliases[a.target]; chained {
			return malformed(e.name, "alias %s targets another alias %s", a.key, a.target)
		}
		if e.members[ai].value != e.members[ti].value {
			return malformed(e.name, "alias %s = %v does not match %s = %v",
				a.key, e.members[ai].value, a.target, e.members[ti].value)
		}
		e.aliases[a.key] = a.target
	}
	targets := e.aliasTargets()
	for key := range e.aliases {
		if _, isTarget := targets[key]; isTarget {
			return malformed(e.name, "alias %s is also an alias target", key)
		}
	}
	return nil
}

func (e *Enumeration[V]) aliasTargets() map[string]struct{} {
	targets := make(map[string]struct{}, len(e.aliases))
	for _, t := range e.aliases {
		targets[t] = struct{}{}
	}
	return targets
}

// checkUnique 要求非别名成员的值互不相同。
func (e *Enumeration[V]) checkUnique() error {
	seen := make(map[V]string, len(e.members))
	for _, m := range e.members {
		if _, isAlias := e.aliases[m.key]; isAlias {
			continue
		}
		if prev, dup := seen[m.value]; dup {
			return malformed(e.name, "members %s and %s share value %v without an alias declaration", prev, m.key, m.value)
		}
		seen[m.value] = m.key
	}
	return nil
}

// computeFingerprint 计算内容摘要，键、顺序、值、别名的任何变化都会改变结果。
func (e *Enumeration[V]) computeFingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(e.name)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(e.kind.String())
	for _, m := range e.members {
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(m.key)
		_, _ = d.WriteString("=")
		_, _ = d.WriteString(fmt.Sprint(m.value))
		if target, ok := e.aliases[m.key]; ok {
			_, _ = d.WriteString("->")
			_, _ = d.WriteString(target)
		}
	}
	return d.Sum64()
}

// =============================================================================
// 查询
// =============================================================================

// Name 返回枚举名称。
func (e *Enumeration[V]) Name() string {
	return e.name
}

// Kind 返回值形态。
func (e *Enumeration[V]) Kind() Kind {
	return e.kind
}

// Len 返回成员数量（含别名成员）。
func (e *Enumeration[V]) Len() int {
	return len(e.members)
}

// Members 按声明顺序返回所有成员的副本。
func (e *Enumeration[V]) Members() []Member[V] {
	return slices.Clone(e.members)
}

// All 按声明顺序迭代 (键, 值)，可重复迭代。
func (e *Enumeration[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, m := range e.members {
			if !yield(m.key, m.value) {
				return
			}
		}
	}
}

// Keys 按声明顺序返回所有键。
func (e *Enumeration[V]) Keys() []string {
	keys := make([]string, len(e.members))
	for i, m := range e.members {
		keys[i] = m.key
	}
	return keys
}

// Values 按声明顺序返回所有值，别名成员的值会重复出现。
// 每次调用返回新分配的切片。
func (e *Enumeration[V]) Values() []V {
	values := make([]V, len(e.members))
	for i, m := range e.members {
		values[i] = m.value
	}
	return values
}

// ValueOf 返回 key 绑定的值。key 不属于该枚举时返回 [ErrUnknownMember]。
func (e *Enumeration[V]) ValueOf(key string) (V, error) {
	i, ok := e.index[key]
	if !ok {
		var zero V
		return zero, unknownMember(e.name, key)
	}
	return e.members[i].value, nil
}

// MustValueOf 与 ValueOf 相同，但 key 未知时 panic。
func (e *Enumeration[V]) MustValueOf(key string) V {
	v, err := e.ValueOf(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup 返回 key 绑定的值及是否存在。
func (e *Enumeration[V]) Lookup(key string) (V, bool) {
	i, ok := e.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.members[i].value, true
}

// Has 报告 key 是否属于该枚举。
func (e *Enumeration[V]) Has(key string) bool {
	_, ok := e.index[key]
	return ok
}

// Member 返回 key 对应的成员。
func (e *Enumeration[V]) Member(key string) (Member[V], error) {
	i, ok := e.index[key]
	if !ok {
		return Member[V]{}, unknownMember(e.name, key)
	}
	return e.members[i], nil
}

// KeysOf 按声明顺序返回绑定到 v 的所有键，不存在时返回 nil。
// 别名使多个键对应同一个值，选择哪一个由调用方决定。
func (e *Enumeration[V]) KeysOf(v V) []string {
	var keys []string
	for _, m := range e.members {
		if m.value == v {
			keys = append(keys, m.key)
		}
	}
	return keys
}

// AliasOf 返回别名成员 key 的目标键。key 不是别名时返回 false。
func (e *Enumeration[V]) AliasOf(key string) (string, bool) {
	target, ok := e.aliases[key]
	return target, ok
}

// Fingerprint 返回枚举内容的 64 位摘要。
// 摘要变化意味着提供方可见的契约发生了变化。
func (e *Enumeration[V]) Fingerprint() uint64 {
	return e.fingerprint
}

// Contains 报告范围成员 key 是否包含 x。
func Contains[T Unsigned](e *Enumeration[Range[T]], key string, x T) (bool, error) {
	r, err := e.ValueOf(key)
	if err != nil {
		return false, err
	}
	return r.Contains(x), nil
}
