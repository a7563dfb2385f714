package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/hamed0406/envprobe/internal/domain"
)

// DNS failure classes.
const (
	ClassInvalidName = "INVALID_NAME"
	ClassNXDomain    = "NXDOMAIN"
	ClassNoAddress   = "NO_A_RECORD"
	ClassServFail    = "SERVFAIL_or_TIMEOUT"
)

// resolve extracts the host of target and looks it up, returning every
// address with IPv4 first. Literal IPs are returned without a lookup.
// There is no deadline beyond ctx.
func resolve(ctx context.Context, r Resolver, target string) (string, []net.IP, error) {
	host := extractHost(target)
	if host == "" {
		return "", nil, fmt.Errorf("%w [%s]: no host in %q", domain.ErrNameResolution, ClassInvalidName, target)
	}
	if ip := net.ParseIP(host); ip != nil {
		return host, []net.IP{ip}, nil
	}

	ips, err := r.LookupIP(ctx, "ip", host)
	if err != nil {
		return host, nil, fmt.Errorf("%w [%s]: %v", domain.ErrNameResolution, classifyDNSError(err), err)
	}
	if len(ips) == 0 {
		return host, nil, fmt.Errorf("%w [%s]: no addresses for %s", domain.ErrNameResolution, ClassNoAddress, host)
	}
	return host, preferIPv4(ips), nil
}

func classifyDNSError(err error) string {
	var de *net.DNSError
	if errors.As(err, &de) {
		switch {
		case de.IsNotFound:
			return ClassNXDomain
		case de.IsTemporary || de.Timeout():
			return ClassServFail
		}
	}
	return ClassServFail
}

// preferIPv4 orders ips with IPv4 addresses first, keeping the resolver's
// order within each family.
func preferIPv4(ips []net.IP) []net.IP {
	out := make([]net.IP, 0, len(ips))
	for _, ip := range ips {
		if ip.To4() != nil {
			out = append(out, ip)
		}
	}
	for _, ip := range ips {
		if ip.To4() == nil {
			out = append(out, ip)
		}
	}
	return out
}

// extractHost pulls the hostname from a URL string.
func extractHost(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Hostname()
}
