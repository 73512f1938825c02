package xconstraint

import (
	"crypto/md5"  //nolint:gosec // 表中声明的算法，非安全用途
	"crypto/sha1" //nolint:gosec // 同上
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"github.com/omeyang/xfake/pkg/enum/xenum"
)

// ErrUnsupportedAlgorithm Algorithm 成员没有对应的哈希实现。
var ErrUnsupportedAlgorithm = errors.New("xconstraint: unsupported hash algorithm")

var algorithm = scalars("Algorithm",
	scalar("MD5", "md5"),
	scalar("SHA1", "sha1"),
	scalar("SHA224", "sha224"),
	scalar("SHA256", "sha256"),
	scalar("SHA384", "sha384"),
	scalar("SHA512", "sha512"),
	scalar("BLAKE2B", "blake2b"),
	scalar("BLAKE2S", "blake2s"),
)

// Algorithm 返回哈希算法枚举。
func Algorithm() *xenum.Enumeration[string] { return algorithm }

// NewHash 返回 Algorithm 成员 key 对应的哈希实例。
// BLAKE2B 为 512 位摘要，BLAKE2S 为 256 位摘要，均不带密钥。
func NewHash(key string) (hash.Hash, error) {
	name, err := algorithm.ValueOf(key)
	if err != nil {
		return nil, err
	}
	switch name {
	case "md5":
		return md5.New(), nil //nolint:gosec // 同上
	case "sha1":
		return sha1.New(), nil //nolint:gosec // 同上
	case "sha224":
		return sha256.New224(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha384":
		return sha512.New384(), nil
	case "sha512":
		return sha512.New(), nil
	case "blake2b":
		return blake2b.New512(nil)
	case "blake2s":
		return blake2s.New256(nil)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
}
