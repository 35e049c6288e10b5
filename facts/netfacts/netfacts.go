// Package netfacts reports network interface addresses and the host's
// external IP address.
package netfacts

import (
	"context"
	"fmt"
	"net/netip"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/jeffrom/hostfacts/facts"
)

var netInterfaces = psnet.InterfacesWithContext

func Interfaces() facts.Provider { return facts.NewProvider("interfaces", gatherInterfaces) }

// gatherInterfaces reports the global addresses of every interface that is up
// and isn't loopback.
func gatherInterfaces(ctx context.Context) (facts.Facts, error) {
	ifaces, err := netInterfaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("netfacts: interfaces: %w", err)
	}

	var res facts.Facts
	for _, iface := range ifaces {
		if !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
			continue
		}
		for _, a := range iface.Addrs {
			addr, ok := parseAddr(a.Addr)
			if !ok || addr.IsLoopback() || addr.IsLinkLocalUnicast() {
				continue
			}
			family := "IPv6"
			if addr.Is4() {
				family = "IPv4"
			}
			res = res.Append(fmt.Sprintf("%s address for %s", family, iface.Name), addr.String())
		}
	}
	return res, nil
}

// parseAddr accepts both bare addresses and the CIDR form gopsutil usually
// returns.
func parseAddr(s string) (netip.Addr, bool) {
	if pfx, err := netip.ParsePrefix(s); err == nil {
		return pfx.Addr().Unmap(), true
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
