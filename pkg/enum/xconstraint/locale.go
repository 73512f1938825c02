package xconstraint

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/omeyang/xfake/pkg/enum/xenum"
)

// locale 受支持的语言区域。DEFAULT 是 EN 的别名，构建时断言两者值相等。
var locale = mustLocales(xenum.MustNew("Locale", []xenum.Member[string]{
	scalar("AR_DZ", "ar-dz"),
	scalar("CS", "cs"),
	scalar("DA", "da"),
	scalar("DE", "de"),
	scalar("DE_AT", "de-at"),
	scalar("DE_CH", "de-ch"),
	scalar("EL", "el"),
	scalar("EN", "en"),
	scalar("EN_AU", "en-au"),
	scalar("EN_CA", "en-ca"),
	scalar("EN_GB", "en-gb"),
	scalar("ES", "es"),
	scalar("ES_MX", "es-mx"),
	scalar("ET", "et"),
	scalar("FA", "fa"),
	scalar("FI", "fi"),
	scalar("FR", "fr"),
	scalar("HU", "hu"),
	scalar("HR", "hr"),
	scalar("IS", "is"),
	scalar("IT", "it"),
	scalar("JA", "ja"),
	scalar("KK", "kk"),
	scalar("KO", "ko"),
	scalar("NL", "nl"),
	scalar("NL_BE", "nl-be"),
	scalar("NO", "no"),
	scalar("PL", "pl"),
	scalar("PT", "pt"),
	scalar("PT_BR", "pt-br"),
	scalar("RU", "ru"),
	scalar("SK", "sk"),
	scalar("SV", "sv"),
	scalar("TR", "tr"),
	scalar("UK", "uk"),
	scalar("ZH", "zh"),
	scalar("DEFAULT", "en"),
}, xenum.WithAlias("DEFAULT", "EN"), xenum.WithUniqueValues()))

// mustLocales 断言每个语言区域代码都是合法的 BCP 47 标签。
func mustLocales(e *xenum.Enumeration[string]) *xenum.Enumeration[string] {
	for key, code := range e.All() {
		if _, err := language.Parse(code); err != nil {
			panic(fmt.Errorf("%w: %q: member %s: %w", xenum.ErrMalformedEnumeration, e.Name(), key, err))
		}
	}
	return e
}

// Locale 返回语言区域枚举。
func Locale() *xenum.Enumeration[string] { return locale }

// LocaleCodes 按声明顺序返回全部语言区域代码。
//
// 别名成员 DEFAULT 的值会再次出现，因此 "en" 出现两次。
// 每次调用返回新分配的切片，修改它不影响注册表。
func LocaleCodes() []string {
	return locale.Values()
}

// LocaleTag 返回语言区域成员 key 对应的 BCP 47 标签。
func LocaleTag(key string) (language.Tag, error) {
	code, err := locale.ValueOf(key)
	if err != nil {
		return language.Und, err
	}
	return language.Parse(code)
}
