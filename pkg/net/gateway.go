package network

import (
	"fmt"
	"net"

	"github.com/jackpal/gateway"

	"github.com/igd-tools/igdprobe/pkg/log"
)

// ResolveGateway returns the IPv4 address of the host's default gateway.
// The routing-table lookup is platform specific and lives entirely in the
// gateway package; everything downstream consumes only the address
// string.
func ResolveGateway() (string, error) {
	ip, err := gateway.DiscoverGateway()
	if err != nil {
		return "", fmt.Errorf("unable to determine default gateway: %w", err)
	}
	if ip.To4() == nil {
		return "", fmt.Errorf("default gateway %s is not an ipv4 address", ip)
	}

	log.Logger().Debug().
		Str("gateway", ip.String()).
		Msg("resolved default gateway")

	return ip.String(), nil
}

// ValidateAddress checks that a user-supplied gateway override is an
// IPv4 address.
func ValidateAddress(addr string) error {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("invalid gateway address: %q is not an ipv4 address", addr)
	}
	return nil
}
