package xconstraint

import "github.com/omeyang/xfake/pkg/enum/xenum"

// catalog 按声明顺序登记全部枚举。
var catalog = xenum.MustNewCatalog(
	ipv4Purpose,
	durationUnit,
	locale,
	portRange,
	gender,
	titleType,
	cardType,
	algorithm,
	tldType,
	fileType,
	mimeType,
	metricPrefixSign,
	countryCode,
	isbnFormat,
	eanFormat,
	measureUnit,
	numType,
	videoFile,
	audioFile,
	imageFile,
	documentFile,
	compressedFile,
	urlScheme,
	timezoneRegion,
	dsnType,
	timestampFormat,
	emojyCategory,
)

// Catalog 返回全部枚举的目录。
func Catalog() *xenum.Catalog {
	return catalog
}

// Enumeration 按名称返回枚举，不存在时返回 [xenum.ErrUnknownEnumeration]。
func Enumeration(name string) (xenum.Descriptor, error) {
	return catalog.Get(name)
}

// Fingerprint 返回整个注册表的内容摘要。
func Fingerprint() uint64 {
	return catalog.Fingerprint()
}

// =============================================================================
// 表声明辅助函数
// =============================================================================

func scalar(key, value string) xenum.Member[string] {
	return xenum.NewMember(key, value)
}

func ipv4(key string, low, high uint32) xenum.Member[xenum.Range[uint32]] {
	return xenum.NewMember(key, xenum.NewRange(low, high))
}

func ports(key string, low, high uint16) xenum.Member[xenum.Range[uint16]] {
	return xenum.NewMember(key, xenum.NewRange(low, high))
}

func unit(key, name, symbol string) xenum.Member[xenum.Pair[string, string]] {
	return xenum.NewMember(key, xenum.NewPair(name, symbol))
}

func dsn(key, scheme string, port uint16) xenum.Member[xenum.Pair[string, uint16]] {
	return xenum.NewMember(key, xenum.NewPair(scheme, port))
}

// scalars 构建值互不相同的字符串枚举。
func scalars(name string, members ...xenum.Member[string]) *xenum.Enumeration[string] {
	return xenum.MustNew(name, members, xenum.WithUniqueValues())
}
