package xenum

// alias 声明 key 与 target 携带相同的值。
type alias struct {
	key    string
	target string
}

// settings 是 New 的构建选项。
type settings struct {
	aliases   []alias
	unique    bool
	hasBounds bool
	lower     uint64
	upper     uint64
}

// Option 定义枚举构建选项。
type Option func(*settings)

// WithAlias 声明成员 key 是成员 target 的别名。
//
// 两者都是独立成员，构建时断言它们的值相等；
// 任一方被修改导致不相等时，构建失败。
func WithAlias(key, target string) Option {
	return func(s *settings) {
		s.aliases = append(s.aliases, alias{key: key, target: target})
	}
}

// WithUniqueValues 要求除已声明的别名外，所有成员的值互不相同。
func WithUniqueValues() Option {
	return func(s *settings) {
		s.unique = true
	}
}

// WithBounds 要求每个范围成员都落在 [lower, upper] 内。
// 仅适用于 [Range] 枚举，用于其他枚举时构建失败。
func WithBounds(lower, upper uint64) Option {
	return func(s *settings) {
		s.hasBounds = true
		s.lower = lower
		s.upper = upper
	}
}
