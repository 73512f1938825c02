package xenum

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Unsigned 范围端点允许的整数类型。
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// validator 由需要构建期自校验的值类型实现。
type validator interface {
	validate() error
}

// spanner 由范围类型实现，用于边界校验和类型擦除后的包含判断。
type spanner interface {
	span() (low, high uint64)
}

// =============================================================================
// Range
// =============================================================================

// Range 表示闭区间 [low, high]。
//
// low == high 的退化范围表示单个合法值。
type Range[T Unsigned] struct {
	low  T
	high T
}

// NewRange 创建范围。端点合法性在 [New] 构建枚举时校验。
func NewRange[T Unsigned](low, high T) Range[T] {
	return Range[T]{low: low, high: high}
}

// Bounds 返回范围的下界和上界。
func (r Range[T]) Bounds() (low, high T) {
	return r.low, r.high
}

// Contains 报告 low <= x <= high。
func (r Range[T]) Contains(x T) bool {
	return r.low <= x && x <= r.high
}

// IsDegenerate 报告范围是否只包含单个值。
func (r Range[T]) IsDegenerate() bool {
	return r.low == r.high
}

// Size 返回范围包含的值个数。
// 覆盖整个 uint64 值域的范围会溢出为 0。
func (r Range[T]) Size() uint64 {
	return uint64(r.high-r.low) + 1
}

// String 返回 "[low, high]" 形式。
func (r Range[T]) String() string {
	return "[" + strconv.FormatUint(uint64(r.low), 10) + ", " + strconv.FormatUint(uint64(r.high), 10) + "]"
}

// MarshalJSON 序列化为 [low, high]。
func (r Range[T]) MarshalJSON() ([]byte, error) {
	return []byte("[" + strconv.FormatUint(uint64(r.low), 10) + "," + strconv.FormatUint(uint64(r.high), 10) + "]"), nil
}

// MarshalYAML 序列化为两元素序列。
func (r Range[T]) MarshalYAML() (any, error) {
	return []uint64{uint64(r.low), uint64(r.high)}, nil
}

func (r Range[T]) validate() error {
	if r.low > r.high {
		return fmt.Errorf("range %s has low > high", r)
	}
	return nil
}

func (r Range[T]) span() (low, high uint64) {
	return uint64(r.low), uint64(r.high)
}

// =============================================================================
// Pair
// =============================================================================

// Pair 是两个字段必须一起读取的复合值，例如单位名称与符号、协议与默认端口。
type Pair[A, B comparable] struct {
	first  A
	second B
}

// NewPair 创建复合值。
func NewPair[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

// Unpack 同时返回两个字段。
func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

// String 返回 "(a, b)" 形式。
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// MarshalJSON 序列化为 [a, b]。
func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.first, p.second})
}

// MarshalYAML 序列化为两元素序列。
func (p Pair[A, B]) MarshalYAML() (any, error) {
	return []any{p.first, p.second}, nil
}

func (p Pair[A, B]) validate() error {
	var (
		zeroA A
		zeroB B
	)
	if p.first == zeroA || p.second == zeroB {
		return fmt.Errorf("compound value %s is missing a component", p)
	}
	return nil
}

// =============================================================================
// Tag
// =============================================================================

// Tag 是自动分配的不透明标识。
//
// Tag 只支持相等比较（可用于 switch），不暴露任何序号。
// 序号随成员增删或重排而变化，不应被持久化。
type Tag struct {
	owner string
	key   string
	ord   int
}

// String 返回成员键。
func (t Tag) String() string {
	return t.key
}

// IsZero 报告是否为零值 Tag。
func (t Tag) IsZero() bool {
	return t == Tag{}
}

// MarshalJSON 序列化为成员键。
func (t Tag) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.key)), nil
}

// MarshalYAML 序列化为成员键。
func (t Tag) MarshalYAML() (any, error) {
	return t.key, nil
}

func (t Tag) validate() error {
	if t.key == "" || t.owner == "" {
		return errors.New("tag is not assigned")
	}
	return nil
}
