package xconstraint

import "github.com/omeyang/xfake/pkg/enum/xenum"

// ipv4Purpose 特殊用途 IPv4 地址块（IANA IPv4 Special-Purpose Address Registry），
// 以 uint32 表示地址。块之间存在刻意的嵌套，例如 192.0.0.0/24 内的
// 192.0.0.8、192.0.0.9、192.0.0.10 和 192.0.0.0/29。
var ipv4Purpose = xenum.MustNew("IPv4Purpose", []xenum.Member[xenum.Range[uint32]]{
	ipv4("THIS_NETWORK", 0, 16_777_215),
	ipv4("AMT", 3_224_682_752, 3_224_683_007),
	ipv4("LOOBACK", 2_130_706_432, 2_147_483_647),
	ipv4("AS112_V4", 3_223_307_264, 3_223_307_519),
	ipv4("LINK_LOCAL", 2_851_995_648, 2_852_061_183),
	ipv4("TEST_NET_1", 3_221_225_984, 3_221_226_239),
	ipv4("TEST_NET_2", 3_325_256_704, 3_325_256_959),
	ipv4("TEST_NET_3", 3_405_803_776, 3_405_804_031),
	ipv4("BENCHMARKING", 3_323_068_416, 3_323_199_487),
	ipv4("PRIVATE_USE_1", 167_772_160, 184_549_375),
	ipv4("PRIVATE_USE_2", 2_886_729_728, 2_887_778_303),
	ipv4("PRIVATE_USE_3", 3_232_235_520, 3_232_301_055),
	ipv4("RESERVED", 4_026_531_840, 4_294_967_295),
	ipv4("SHARE_ADDRESS_SPACE", 1_681_915_904, 1_686_110_207),
	ipv4("LIMITED_BROADCAST", 4_294_967_295, 4_294_967_295),
	ipv4("IPV4_DUMMY_ADDRESS", 3_221_225_480, 3_221_225_480),
	ipv4("TURN_RELAY_ANYCAST", 3_221_225_482, 3_221_225_482),
	ipv4("IETF_PROTOCOL_ASSIGNMENTS", 3_221_225_472, 3_221_225_727),
	ipv4("PORT_CONTROL_PROTOCOL_ANYCAST", 3_221_225_481, 3_221_225_481),
	ipv4("IPV4_SERVICE_CONTINUITY_PREFIX", 3_221_225_472, 3_221_225_479),
	ipv4("DIRECT_DELEGATION_AS112_SERVICE", 3_232_706_560, 3_232_706_815),
}, xenum.WithUniqueValues())

// portRange 端口范围。ALL 覆盖全部端口；WELL_KNOWN、REGISTERED、EPHEMERAL
// 三段无缝划分 ALL。
var portRange = xenum.MustNew("PortRange", []xenum.Member[xenum.Range[uint16]]{
	ports("ALL", 1, 65535),
	ports("WELL_KNOWN", 1, 1023),
	ports("EPHEMERAL", 49152, 65535),
	ports("REGISTERED", 1024, 49151),
}, xenum.WithBounds(1, 65535), xenum.WithUniqueValues())

var urlScheme = scalars("URLScheme",
	scalar("WS", "ws"),
	scalar("WSS", "wss"),
	scalar("FTP", "ftp"),
	scalar("SFTP", "sftp"),
	scalar("HTTP", "http"),
	scalar("HTTPS", "https"),
)

var tldType = scalars("TLDType",
	scalar("CCTLD", "cctld"),
	scalar("GTLD", "gtld"),
	scalar("GEOTLD", "geotld"),
	scalar("UTLD", "utld"),
	scalar("STLD", "stld"),
)

// dsnType 数据源协议及其默认端口。
var dsnType = xenum.MustNew("DSNType", []xenum.Member[xenum.Pair[string, uint16]]{
	dsn("POSTGRES", "postgres", 5432),
	dsn("MYSQL", "mysql", 3306),
	dsn("MONGODB", "mongodb", 27017),
	dsn("REDIS", "redis", 6379),
	dsn("COUCHBASE", "couchbase", 8092),
	dsn("MEMCACHED", "memcached", 11211),
	dsn("RABBITMQ", "rabbitmq", 5672),
}, xenum.WithUniqueValues())

// IPv4Purpose 返回特殊用途 IPv4 地址块枚举。
func IPv4Purpose() *xenum.Enumeration[xenum.Range[uint32]] { return ipv4Purpose }

// PortRange 返回端口范围枚举。
func PortRange() *xenum.Enumeration[xenum.Range[uint16]] { return portRange }

// URLScheme 返回 URL 协议枚举。
func URLScheme() *xenum.Enumeration[string] { return urlScheme }

// TLDType 返回顶级域名类型枚举。
func TLDType() *xenum.Enumeration[string] { return tldType }

// DSNType 返回数据源协议枚举，值为 (协议名, 默认端口)。
func DSNType() *xenum.Enumeration[xenum.Pair[string, uint16]] { return dsnType }

// PortInRange 报告 port 是否落在 PortRange 成员 key 内。
func PortInRange(key string, port uint16) (bool, error) {
	return xenum.Contains(portRange, key, port)
}
