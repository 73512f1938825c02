package xconstraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/omeyang/xfake/pkg/enum/xconstraint"
	"github.com/omeyang/xfake/pkg/enum/xenum"
)

func TestLocale_DefaultAliasesEN(t *testing.T) {
	l := xconstraint.Locale()
	assert.Equal(t, "en", l.MustValueOf("EN"))
	assert.Equal(t, l.MustValueOf("EN"), l.MustValueOf("DEFAULT"))

	target, ok := l.AliasOf("DEFAULT")
	assert.True(t, ok)
	assert.Equal(t, "EN", target)
}

func TestLocaleCodes(t *testing.T) {
	codes := xconstraint.LocaleCodes()
	require.Len(t, codes, 37)

	assert.Equal(t, "ar-dz", codes[0])
	assert.Equal(t, "zh", codes[35])
	assert.Equal(t, "en", codes[36])

	count := 0
	for _, c := range codes {
		if c == "en" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestLocaleCodes_Independent(t *testing.T) {
	first := xconstraint.LocaleCodes()
	first[0] = "xx"
	first[1] = "yy"

	second := xconstraint.LocaleCodes()
	assert.Equal(t, "ar-dz", second[0])
	assert.Len(t, second, 37)
	assert.Equal(t, "cs", second[1])
}

func TestLocaleCodes_MatchesMembers(t *testing.T) {
	codes := xconstraint.LocaleCodes()
	members := xconstraint.Locale().Members()
	require.Len(t, codes, len(members))
	for i, m := range members {
		assert.Equal(t, m.Value(), codes[i], m.Key())
	}
}

func TestLocaleTag(t *testing.T) {
	tests := []struct {
		key  string
		want language.Tag
	}{
		{"EN", language.English},
		{"DEFAULT", language.English},
		{"PT_BR", language.BrazilianPortuguese},
		{"ZH", language.Chinese},
		{"DE_CH", language.MustParse("de-CH")},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tag, err := xconstraint.LocaleTag(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag)
		})
	}

	_, err := xconstraint.LocaleTag("KLINGON")
	assert.ErrorIs(t, err, xenum.ErrUnknownMember)
}

func TestLocale_AllCodesAreBCP47(t *testing.T) {
	for key, code := range xconstraint.Locale().All() {
		_, err := language.Parse(code)
		assert.NoError(t, err, key)
	}
}
