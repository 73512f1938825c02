package xenum

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMember 请求的键不属于该枚举（调用方契约错误）。
	ErrUnknownMember = errors.New("xenum: unknown member")

	// ErrMalformedEnumeration 枚举表定义非法，仅在构建期返回。
	ErrMalformedEnumeration = errors.New("xenum: malformed enumeration")

	// ErrUnknownEnumeration 目录中不存在该名称的枚举。
	ErrUnknownEnumeration = errors.New("xenum: unknown enumeration")

	// ErrNotRange 对非范围枚举执行了范围包含判断。
	ErrNotRange = errors.New("xenum: not a range enumeration")
)

// malformed 构造带枚举名的构建期错误。
func malformed(name, format string, args ...any) error {
	return fmt.Errorf("%w: %q: %s", ErrMalformedEnumeration, name, fmt.Sprintf(format, args...))
}

// unknownMember 构造带枚举名和键的查询错误。
func unknownMember(name, key string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownMember, name, key)
}
