package xconstraint

import "github.com/omeyang/xfake/pkg/enum/xenum"

var durationUnit = scalars("DurationUnit",
	scalar("WEEKS", "weeks"),
	scalar("DAYS", "days"),
	scalar("HOURS", "hours"),
	scalar("MINUTES", "minutes"),
	scalar("SECONDS", "seconds"),
	scalar("MILLISECONDS", "milliseconds"),
	scalar("MICROSECONDS", "microseconds"),
)

var timezoneRegion = scalars("TimezoneRegion",
	scalar("AFRICA", "Africa"),
	scalar("AMERICA", "America"),
	scalar("ANTARCTICA", "Antarctica"),
	scalar("ARCTIC", "Arctic"),
	scalar("ASIA", "Asia"),
	scalar("ATLANTIC", "Atlantic"),
	scalar("AUSTRALIA", "Australia"),
	scalar("EUROPE", "Europe"),
	scalar("INDIAN", "Indian"),
	scalar("PACIFIC", "Pacific"),
)

// timestampFormat 时间戳格式，值为自动分配的不透明标识。
var timestampFormat = xenum.MustNewTagged("TimestampFormat", []string{
	"POSIX",
	"ISO_8601",
	"RFC_3339",
})

// TimestampFormat 的成员，用于 switch 匹配。
var (
	TimestampPOSIX   = timestampFormat.MustValueOf("POSIX")
	TimestampISO8601 = timestampFormat.MustValueOf("ISO_8601")
	TimestampRFC3339 = timestampFormat.MustValueOf("RFC_3339")
)

// DurationUnit 返回时长单位枚举。
func DurationUnit() *xenum.Enumeration[string] { return durationUnit }

// TimezoneRegion 返回时区区域枚举。
func TimezoneRegion() *xenum.Enumeration[string] { return timezoneRegion }

// TimestampFormat 返回时间戳格式枚举。
func TimestampFormat() *xenum.Enumeration[xenum.Tag] { return timestampFormat }
