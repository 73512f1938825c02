package xconstraint

import "github.com/omeyang/xfake/pkg/enum/xenum"

var countryCode = scalars("CountryCode",
	scalar("A2", "a2"),
	scalar("A3", "a3"),
	scalar("NUMERIC", "numeric"),
	scalar("IOC", "ioc"),
	scalar("FIFA", "fifa"),
)

var isbnFormat = scalars("ISBNFormat",
	scalar("ISBN13", "isbn-13"),
	scalar("ISBN10", "isbn-10"),
)

var eanFormat = scalars("EANFormat",
	scalar("EAN8", "ean-8"),
	scalar("EAN13", "ean-13"),
)

// CountryCode 返回国家代码体系枚举。
func CountryCode() *xenum.Enumeration[string] { return countryCode }

// ISBNFormat 返回 ISBN 格式枚举。
func ISBNFormat() *xenum.Enumeration[string] { return isbnFormat }

// EANFormat 返回 EAN 格式枚举。
func EANFormat() *xenum.Enumeration[string] { return eanFormat }
