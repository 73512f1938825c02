package xconstraint_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xfake/pkg/enum/xconstraint"
	"github.com/omeyang/xfake/pkg/enum/xenum"
)

func TestNewHash_Sizes(t *testing.T) {
	want := map[string]int{
		"MD5":     16,
		"SHA1":    20,
		"SHA224":  28,
		"SHA256":  32,
		"SHA384":  48,
		"SHA512":  64,
		"BLAKE2B": 64,
		"BLAKE2S": 32,
	}
	require.Len(t, want, xconstraint.Algorithm().Len())

	for _, key := range xconstraint.Algorithm().Keys() {
		t.Run(key, func(t *testing.T) {
			h, err := xconstraint.NewHash(key)
			require.NoError(t, err)
			assert.Equal(t, want[key], h.Size())
		})
	}
}

func TestNewHash_Digest(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"MD5", "d41d8cd98f00b204e9800998ecf8427e"},
		{"SHA256", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h, err := xconstraint.NewHash(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(h.Sum(nil)))
		})
	}
}

func TestNewHash_Unknown(t *testing.T) {
	_, err := xconstraint.NewHash("SHA3")
	assert.ErrorIs(t, err, xenum.ErrUnknownMember)
}
