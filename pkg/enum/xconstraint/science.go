package xconstraint

import "github.com/omeyang/xfake/pkg/enum/xenum"

var metricPrefixSign = scalars("MetricPrefixSign",
	scalar("POSITIVE", "positive"),
	scalar("NEGATIVE", "negative"),
)

// measureUnit 计量单位（名称, 符号）。FLUX 与 POWER 同为 watt，声明为别名。
var measureUnit = xenum.MustNew("MeasureUnit", []xenum.Member[xenum.Pair[string, string]]{
	unit("MASS", "gram", "gr"),
	unit("INFORMATION", "byte", "b"),
	unit("THERMODYNAMIC_TEMPERATURE", "kelvin", "K"),
	unit("AMOUNT_OF_SUBSTANCE", "mole", "mol"),
	unit("ANGLE", "radian", "r"),
	unit("SOLID_ANGLE", "steradian", "㏛"),
	unit("FREQUENCY", "hertz", "Hz"),
	unit("FORCE", "newton", "N"),
	unit("PRESSURE", "pascal", "P"),
	unit("ENERGY", "joule", "J"),
	unit("POWER", "watt", "W"),
	unit("FLUX", "watt", "W"),
	unit("ELECTRIC_CHARGE", "coulomb", "C"),
	unit("VOLTAGE", "volt", "V"),
	unit("ELECTRIC_CAPACITANCE", "farad", "F"),
	unit("ELECTRIC_RESISTANCE", "ohm", "Ω"),
	unit("ELECTRICAL_CONDUCTANCE", "siemens", "S"),
	unit("MAGNETIC_FLUX", "weber", "Wb"),
	unit("MAGNETIC_FLUX_DENSITY", "tesla", "T"),
	unit("INDUCTANCE", "henry", "H"),
	unit("TEMPERATURE", "Celsius", "°C"),
	unit("RADIOACTIVITY", "becquerel", "Bq"),
}, xenum.WithAlias("FLUX", "POWER"), xenum.WithUniqueValues())

var numType = scalars("NumType",
	scalar("FLOAT", "floats"),
	scalar("INTEGER", "integers"),
	scalar("COMPLEX", "complexes"),
	scalar("DECIMAL", "decimals"),
)

// MetricPrefixSign 返回公制前缀符号方向枚举。
func MetricPrefixSign() *xenum.Enumeration[string] { return metricPrefixSign }

// MeasureUnit 返回计量单位枚举，值为 (名称, 符号)。
func MeasureUnit() *xenum.Enumeration[xenum.Pair[string, string]] { return measureUnit }

// NumType 返回数值类型枚举。
func NumType() *xenum.Enumeration[string] { return numType }
