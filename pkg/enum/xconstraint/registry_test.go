package xconstraint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xfake/pkg/enum/xconstraint"
	"github.com/omeyang/xfake/pkg/enum/xenum"
)

// =============================================================================
// 目录
// =============================================================================

func TestCatalog_Counts(t *testing.T) {
	want := map[string]int{
		"IPv4Purpose":      21,
		"DurationUnit":     7,
		"Locale":           37,
		"PortRange":        4,
		"Gender":           2,
		"TitleType":        2,
		"CardType":         3,
		"Algorithm":        8,
		"TLDType":          5,
		"FileType":         8,
		"MimeType":         6,
		"MetricPrefixSign": 2,
		"CountryCode":      5,
		"ISBNFormat":       2,
		"EANFormat":        2,
		"MeasureUnit":      22,
		"NumType":          4,
		"VideoFile":        2,
		"AudioFile":        2,
		"ImageFile":        3,
		"DocumentFile":     4,
		"CompressedFile":   2,
		"URLScheme":        6,
		"TimezoneRegion":   10,
		"DSNType":          7,
		"TimestampFormat":  3,
		"EmojyCategory":    10,
	}

	c := xconstraint.Catalog()
	require.Equal(t, len(want), c.Len())

	for _, d := range c.All() {
		t.Run(d.Name(), func(t *testing.T) {
			n, ok := want[d.Name()]
			require.True(t, ok, "unexpected enumeration %s", d.Name())
			assert.Equal(t, n, d.Len())
		})
	}
}

func TestCatalog_KeysDistinct(t *testing.T) {
	for _, d := range xconstraint.Catalog().All() {
		t.Run(d.Name(), func(t *testing.T) {
			seen := make(map[string]struct{}, d.Len())
			for _, k := range d.Keys() {
				_, dup := seen[k]
				assert.False(t, dup, "duplicate key %s", k)
				seen[k] = struct{}{}
			}
		})
	}
}

func TestCatalog_RoundTrip(t *testing.T) {
	for _, d := range xconstraint.Catalog().All() {
		t.Run(d.Name(), func(t *testing.T) {
			for _, entry := range d.Entries() {
				for range 2 {
					v, err := d.ValueAny(entry.Key)
					require.NoError(t, err)
					assert.Equal(t, entry.Value, v)
				}
			}
		})
	}
}

func TestCatalog_Kinds(t *testing.T) {
	tests := []struct {
		name string
		want xenum.Kind
	}{
		{"IPv4Purpose", xenum.KindRange},
		{"PortRange", xenum.KindRange},
		{"MeasureUnit", xenum.KindCompound},
		{"DSNType", xenum.KindCompound},
		{"TimestampFormat", xenum.KindTag},
		{"Locale", xenum.KindScalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := xconstraint.Enumeration(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Kind())
		})
	}
}

func TestEnumeration_Unknown(t *testing.T) {
	_, err := xconstraint.Enumeration("Colour")
	assert.ErrorIs(t, err, xenum.ErrUnknownEnumeration)
}

func TestFingerprint_Stable(t *testing.T) {
	assert.Equal(t, xconstraint.Fingerprint(), xconstraint.Fingerprint())
	assert.NotZero(t, xconstraint.Fingerprint())
}

// =============================================================================
// 字面场景
// =============================================================================

func TestLiteralScenarios(t *testing.T) {
	v, err := xconstraint.Algorithm().ValueOf("SHA256")
	require.NoError(t, err)
	assert.Equal(t, "sha256", v)

	v, err = xconstraint.CardType().ValueOf("VISA")
	require.NoError(t, err)
	assert.Equal(t, "Visa", v)

	d, err := xconstraint.DSNType().ValueOf("POSTGRES")
	require.NoError(t, err)
	assert.Equal(t, xenum.NewPair("postgres", uint16(5432)), d)

	ok, err := xconstraint.PortInRange("WELL_KNOWN", 80)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = xconstraint.PortInRange("WELL_KNOWN", 1024)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGender(t *testing.T) {
	assert.Equal(t, []string{"MALE", "FEMALE"}, xconstraint.Gender().Keys())
	assert.Equal(t, []string{"male", "female"}, xconstraint.Gender().Values())
}

func TestUnknownMember(t *testing.T) {
	_, err := xconstraint.Gender().ValueOf("OTHER")
	assert.ErrorIs(t, err, xenum.ErrUnknownMember)

	_, err = xconstraint.PortInRange("PRIVILEGED", 80)
	assert.ErrorIs(t, err, xenum.ErrUnknownMember)
}

// =============================================================================
// 范围
// =============================================================================

func TestPortRange_Partition(t *testing.T) {
	pr := xconstraint.PortRange()

	all := pr.MustValueOf("ALL")
	low, high := all.Bounds()
	assert.Equal(t, uint16(1), low)
	assert.Equal(t, uint16(65535), high)

	parts := []xenum.Range[uint16]{
		pr.MustValueOf("WELL_KNOWN"),
		pr.MustValueOf("REGISTERED"),
		pr.MustValueOf("EPHEMERAL"),
	}
	assert.Equal(t, xenum.NewRange[uint16](1, 1023), parts[0])
	assert.Equal(t, xenum.NewRange[uint16](1024, 49151), parts[1])
	assert.Equal(t, xenum.NewRange[uint16](49152, 65535), parts[2])

	var total uint64
	for i, p := range parts {
		total += p.Size()
		if i > 0 {
			_, prevHigh := parts[i-1].Bounds()
			curLow, _ := p.Bounds()
			assert.Equal(t, prevHigh+1, curLow, "gap or overlap before part %d", i)
		}
	}
	assert.Equal(t, all.Size(), total)

	for port := 1; port <= math.MaxUint16; port++ {
		hits := 0
		for _, p := range parts {
			if p.Contains(uint16(port)) {
				hits++
			}
		}
		if hits != 1 {
			t.Fatalf("port %d is in %d partitions, want 1", port, hits)
		}
	}
}

func TestIPv4Purpose_Bounds(t *testing.T) {
	for key, r := range xconstraint.IPv4Purpose().All() {
		low, high := r.Bounds()
		assert.LessOrEqual(t, low, high, key)
		assert.LessOrEqual(t, uint64(high), uint64(math.MaxUint32), key)
	}
}

func TestIPv4Purpose_Degenerate(t *testing.T) {
	e := xconstraint.IPv4Purpose()
	for _, key := range []string{"LIMITED_BROADCAST", "IPV4_DUMMY_ADDRESS", "TURN_RELAY_ANYCAST", "PORT_CONTROL_PROTOCOL_ANYCAST"} {
		assert.True(t, e.MustValueOf(key).IsDegenerate(), key)
	}
	assert.False(t, e.MustValueOf("RESERVED").IsDegenerate())
}

func TestIPv4Purpose_NestingPreserved(t *testing.T) {
	e := xconstraint.IPv4Purpose()
	outer := e.MustValueOf("IETF_PROTOCOL_ASSIGNMENTS")

	for _, key := range []string{"IPV4_DUMMY_ADDRESS", "TURN_RELAY_ANYCAST", "PORT_CONTROL_PROTOCOL_ANYCAST", "IPV4_SERVICE_CONTINUITY_PREFIX"} {
		low, high := e.MustValueOf(key).Bounds()
		assert.True(t, outer.Contains(low) && outer.Contains(high), "%s should nest inside IETF_PROTOCOL_ASSIGNMENTS", key)
	}

	broadcast, _ := e.MustValueOf("LIMITED_BROADCAST").Bounds()
	assert.True(t, e.MustValueOf("RESERVED").Contains(broadcast))
}

// =============================================================================
// 复合值
// =============================================================================

func TestCompoundArity(t *testing.T) {
	for key, u := range xconstraint.MeasureUnit().All() {
		name, symbol := u.Unpack()
		assert.NotEmpty(t, name, key)
		assert.NotEmpty(t, symbol, key)
	}
	for key, d := range xconstraint.DSNType().All() {
		scheme, port := d.Unpack()
		assert.NotEmpty(t, scheme, key)
		assert.GreaterOrEqual(t, port, uint16(1), key)
	}
}

func TestMeasureUnit_FluxAliasesPower(t *testing.T) {
	mu := xconstraint.MeasureUnit()
	assert.Equal(t, mu.MustValueOf("POWER"), mu.MustValueOf("FLUX"))

	target, ok := mu.AliasOf("FLUX")
	assert.True(t, ok)
	assert.Equal(t, "POWER", target)

	name, symbol := mu.MustValueOf("TEMPERATURE").Unpack()
	assert.Equal(t, "Celsius", name)
	assert.Equal(t, "°C", symbol)
}

func TestDSNType_Ports(t *testing.T) {
	want := map[string]uint16{
		"POSTGRES":  5432,
		"MYSQL":     3306,
		"MONGODB":   27017,
		"REDIS":     6379,
		"COUCHBASE": 8092,
		"MEMCACHED": 11211,
		"RABBITMQ":  5672,
	}
	for key, port := range want {
		_, got := xconstraint.DSNType().MustValueOf(key).Unpack()
		assert.Equal(t, port, got, key)
	}
}

// =============================================================================
// 不透明标识与别名
// =============================================================================

func TestTimestampFormat(t *testing.T) {
	tf := xconstraint.TimestampFormat()
	assert.Equal(t, []string{"POSIX", "ISO_8601", "RFC_3339"}, tf.Keys())
	assert.Equal(t, xconstraint.TimestampPOSIX, tf.MustValueOf("POSIX"))
	assert.NotEqual(t, xconstraint.TimestampPOSIX, xconstraint.TimestampISO8601)
	assert.NotEqual(t, xconstraint.TimestampISO8601, xconstraint.TimestampRFC3339)
	assert.Equal(t, "RFC_3339", xconstraint.TimestampRFC3339.String())
}

func TestEmojyCategory_Default(t *testing.T) {
	ec := xconstraint.EmojyCategory()
	assert.Equal(t, ec.MustValueOf("SMILEYS_AND_EMOTION"), ec.MustValueOf("DEFAULT"))
	assert.Equal(t, []string{"DEFAULT", "SMILEYS_AND_EMOTION"}, ec.KeysOf("smileys_and_emotion"))
}

func TestCompressedFile_GzipExtension(t *testing.T) {
	assert.Equal(t, "gz", xconstraint.CompressedFile().MustValueOf("GZIP"))
}
