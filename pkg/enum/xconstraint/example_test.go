package xconstraint_test

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/omeyang/xfake/pkg/enum/xconstraint"
	"github.com/omeyang/xfake/pkg/enum/xenum"
)

func ExampleLocaleCodes() {
	codes := xconstraint.LocaleCodes()
	fmt.Println(len(codes), codes[0], codes[len(codes)-1])
	// Output:
	// 37 ar-dz en
}

func ExamplePortInRange() {
	in, _ := xconstraint.PortInRange("WELL_KNOWN", 80)
	out, _ := xconstraint.PortInRange("WELL_KNOWN", 1024)
	fmt.Println(in, out)
	// Output:
	// true false
}

func ExampleIPv4Purposes() {
	fmt.Println(xconstraint.IPv4Purposes(netip.MustParseAddr("192.0.0.8")))
	// Output:
	// [IPV4_DUMMY_ADDRESS IETF_PROTOCOL_ASSIGNMENTS]
}

func ExampleDSNType() {
	scheme, port := xconstraint.DSNType().MustValueOf("POSTGRES").Unpack()
	fmt.Printf("%s://localhost:%d\n", scheme, port)
	// Output:
	// postgres://localhost:5432
}

func ExampleTimestampFormat() {
	format := xconstraint.TimestampFormat().MustValueOf("ISO_8601")
	switch format {
	case xconstraint.TimestampPOSIX:
		fmt.Println("unix seconds")
	case xconstraint.TimestampISO8601, xconstraint.TimestampRFC3339:
		fmt.Println("textual")
	}
	// Output:
	// textual
}

func ExampleAlgorithm() {
	_, err := xconstraint.Algorithm().ValueOf("SHA3")
	if errors.Is(err, xenum.ErrUnknownMember) {
		fmt.Println("unsupported:", err)
	}
	// Output:
	// unsupported: xenum: unknown member: Algorithm.SHA3
}
