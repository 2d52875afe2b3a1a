// Package upnp probes a single UPnP Internet Gateway Device: SSDP
// discovery of its description document, service and action
// introspection, and invocation of read-only actions.
package upnp

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultSSDPPort is the port gateways listen on for SSDP.
	DefaultSSDPPort = 1900

	// DefaultTimeout bounds every network operation in a probe run.
	DefaultTimeout = 5 * time.Second

	searchTarget = "upnp:rootdevice"
)

// Discoverer sends a single unicast M-SEARCH datagram to a known gateway
// address and waits for exactly one reply. This deliberately skips the
// 239.255.255.250 multicast group: the target is a single known host, and
// the contract only holds for gateways that answer unicast search on the
// SSDP port.
type Discoverer struct {
	Port    int
	Timeout time.Duration
}

func (d *Discoverer) port() int {
	if d.Port == 0 {
		return DefaultSSDPPort
	}
	return d.Port
}

func (d *Discoverer) timeout() time.Duration {
	if d.Timeout == 0 {
		return DefaultTimeout
	}
	return d.Timeout
}

// Discover returns the description document URL advertised by the gateway
// at gatewayAddr. The UDP socket is closed before Discover returns, on
// every path.
func (d *Discoverer) Discover(ctx context.Context, gatewayAddr string) (string, error) {
	var (
		log  = zerolog.Ctx(ctx)
		addr = net.JoinHostPort(gatewayAddr, strconv.Itoa(d.port()))
	)

	conn, err := net.Dial("udp4", addr)
	if err != nil {
		return "", fmt.Errorf("unable to open udp socket to %s: %w", addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(d.timeout())
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("unable to set deadline on udp socket: %w", err)
	}

	payload := searchPayload(gatewayAddr, d.port())
	if _, err := conn.Write([]byte(payload)); err != nil {
		return "", fmt.Errorf("unable to send discovery request to %s: %w", addr, err)
	}

	log.Debug().
		Str("gateway", addr).
		Msg("sent unicast M-SEARCH")

	buf := make([]byte, 65535)
	n, err := conn.Read(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return "", fmt.Errorf("%w: %s", ErrNoResponse, addr)
		}
		return "", fmt.Errorf("unable to read discovery reply from %s: %w", addr, err)
	}

	location, err := parseLocation(string(buf[:n]))
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("location", location).
		Msg("got discovery reply")

	return location, nil
}

func searchPayload(host string, port int) string {
	tmplt := `M-SEARCH * HTTP/1.1
ST: %s
MX: 2
MAN: "ssdp:discover"
HOST: %s:%d

`
	payload := fmt.Sprintf(tmplt, searchTarget, host, port)
	return strings.ReplaceAll(payload, "\n", "\r\n")
}

// parseLocation extracts the LOCATION header value from a discovery
// reply. Header name matching is case-insensitive; the value is
// everything after the first whitespace following the header name.
func parseLocation(reply string) (string, error) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(strings.ToLower(line), "location:") {
			continue
		}
		idx := strings.IndexAny(line, " \t")
		if idx < 0 {
			break
		}
		return strings.TrimSpace(line[idx+1:]), nil
	}
	return "", ErrMissingLocation
}
