package xenum

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Entry 是类型擦除后的成员视图，用于通用工具（渲染、诊断）。
type Entry struct {
	Key     string `json:"key" yaml:"key"`
	Value   any    `json:"value" yaml:"value"`
	AliasOf string `json:"alias_of,omitempty" yaml:"alias_of,omitempty"`
}

// Descriptor 是与值类型无关的枚举只读视图。
// 所有 *Enumeration[V] 都实现此接口。
type Descriptor interface {
	Name() string
	Kind() Kind
	Len() int
	Keys() []string
	Has(key string) bool
	// Entries 按声明顺序返回全部成员，每次调用返回新切片。
	Entries() []Entry
	// ValueAny 返回 key 绑定的值，未知时返回 [ErrUnknownMember]。
	ValueAny(key string) (any, error)
	Fingerprint() uint64
}

// Entries 实现 [Descriptor]。
func (e *Enumeration[V]) Entries() []Entry {
	entries := make([]Entry, len(e.members))
	for i, m := range e.members {
		entries[i] = Entry{Key: m.key, Value: m.value, AliasOf: e.aliases[m.key]}
	}
	return entries
}

// ValueAny 实现 [Descriptor]。
func (e *Enumeration[V]) ValueAny(key string) (any, error) {
	v, err := e.ValueOf(key)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// InRange 对类型擦除的范围枚举做包含判断。
// d 不是范围枚举时返回 [ErrNotRange]。
func InRange(d Descriptor, key string, x uint64) (bool, error) {
	if d.Kind() != KindRange {
		return false, fmt.Errorf("%w: %s is %s", ErrNotRange, d.Name(), d.Kind())
	}
	v, err := d.ValueAny(key)
	if err != nil {
		return false, err
	}
	sp, ok := v.(spanner)
	if !ok {
		return false, fmt.Errorf("%w: %s.%s", ErrNotRange, d.Name(), key)
	}
	low, high := sp.span()
	return low <= x && x <= high, nil
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog 是按名称索引的一组枚举，保留注册顺序。
type Catalog struct {
	items []Descriptor
	index map[string]int
}

// NewCatalog 构建目录。名称为空或重复时返回 [ErrMalformedEnumeration]。
func NewCatalog(items ...Descriptor) (*Catalog, error) {
	c := &Catalog{
		items: slices.Clone(items),
		index: make(map[string]int, len(items)),
	}
	for i, d := range c.items {
		if d == nil {
			return nil, fmt.Errorf("%w: catalog entry #%d is nil", ErrMalformedEnumeration, i)
		}
		if _, dup := c.index[d.Name()]; dup {
			return nil, malformed(d.Name(), "registered twice in catalog")
		}
		c.index[d.Name()] = i
	}
	return c, nil
}

// MustNewCatalog 与 NewCatalog 相同，但失败时 panic。
func MustNewCatalog(items ...Descriptor) *Catalog {
	c, err := NewCatalog(items...)
	if err != nil {
		panic(err)
	}
	return c
}

// Names 按注册顺序返回所有枚举名称。
func (c *Catalog) Names() []string {
	names := make([]string, len(c.items))
	for i, d := range c.items {
		names[i] = d.Name()
	}
	return names
}

// All 按注册顺序返回所有枚举。
func (c *Catalog) All() []Descriptor {
	return slices.Clone(c.items)
}

// Len 返回枚举数量。
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get 按名称返回枚举，不存在时返回 [ErrUnknownEnumeration]。
func (c *Catalog) Get(name string) (Descriptor, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnumeration, name)
	}
	return c.items[i], nil
}

// Fingerprint 汇总所有枚举的摘要，注册顺序参与计算。
func (c *Catalog) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, item := range c.items {
		fp := item.Fingerprint()
		for i := range buf {
			buf[i] = byte(fp >> (8 * i))
		}
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
