package xconstraint

import (
	"encoding/binary"
	"net/netip"

	"go4.org/netipx"
)

// addrFromUint32 从 uint32（网络字节序）构造 IPv4 地址。
func addrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// addrToUint32 将 IPv4（含 IPv4-mapped IPv6）地址转换为 uint32。
// 其他地址返回 (0, false)。
func addrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// IPv4Range 将 IPv4Purpose 成员 key 转换为 [netipx.IPRange]。
func IPv4Range(key string) (netipx.IPRange, error) {
	r, err := ipv4Purpose.ValueOf(key)
	if err != nil {
		return netipx.IPRange{}, err
	}
	low, high := r.Bounds()
	return netipx.IPRangeFrom(addrFromUint32(low), addrFromUint32(high)), nil
}

// IPv4Prefixes 将 IPv4Purpose 成员 key 分解为最少数量的 CIDR 前缀。
//
//	p, _ := xconstraint.IPv4Prefixes("PRIVATE_USE_1") // [10.0.0.0/8]
func IPv4Prefixes(key string) ([]netip.Prefix, error) {
	r, err := IPv4Range(key)
	if err != nil {
		return nil, err
	}
	return r.Prefixes(), nil
}

// IPv4Contains 报告 addr 是否落在 IPv4Purpose 成员 key 内。
// 非 IPv4 地址返回 false。
func IPv4Contains(key string, addr netip.Addr) (bool, error) {
	r, err := ipv4Purpose.ValueOf(key)
	if err != nil {
		return false, err
	}
	v, ok := addrToUint32(addr)
	if !ok {
		return false, nil
	}
	return r.Contains(v), nil
}

// IPv4Purposes 按声明顺序返回包含 addr 的全部 IPv4Purpose 键。
//
// 嵌套的地址块会同时命中，例如 192.0.0.8 同时属于 IPV4_DUMMY_ADDRESS
// 与 IETF_PROTOCOL_ASSIGNMENTS；选择哪一个由调用方决定。
// 非 IPv4 地址或不属于任何特殊块时返回 nil。
func IPv4Purposes(addr netip.Addr) []string {
	v, ok := addrToUint32(addr)
	if !ok {
		return nil
	}
	var keys []string
	for key, r := range ipv4Purpose.All() {
		if r.Contains(v) {
			keys = append(keys, key)
		}
	}
	return keys
}
