package probe

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/hamed0406/envprobe/internal/domain"
)

// ConnectivityChecker resolves and fetches an endpoint, timing the two
// phases separately. It makes a single attempt and never retries.
type ConnectivityChecker struct {
	Resolver  Resolver
	Transport *http.Transport
}

func NewConnectivityChecker() *ConnectivityChecker {
	return &ConnectivityChecker{
		Resolver:  net.DefaultResolver,
		Transport: http.DefaultTransport.(*http.Transport),
	}
}

func (c *ConnectivityChecker) Probe(ctx context.Context, name, target string, timeoutSeconds int) domain.Outcome {
	ep := domain.Endpoint{Name: name, URL: target}

	start := time.Now()
	host, ips, err := resolve(ctx, c.resolver(), target)
	dnsElapsed := time.Since(start)
	if err != nil {
		return domain.DNSFailure{Endpoint: ep, Err: err, DNSElapsed: dnsElapsed}
	}

	start = time.Now()
	err = fetch(ctx, c.transport(), target, host, ips, Timeout(timeoutSeconds))
	loadElapsed := time.Since(start)
	if err != nil {
		return domain.FetchFailure{Endpoint: ep, Err: err, DNSElapsed: dnsElapsed}
	}
	return domain.Success{Endpoint: ep, DNSElapsed: dnsElapsed, LoadElapsed: loadElapsed}
}

// Timeout converts the configured seconds to a client timeout. Zero or
// less disables enforcement.
func Timeout(seconds int) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func (c *ConnectivityChecker) resolver() Resolver {
	if c.Resolver == nil {
		return net.DefaultResolver
	}
	return c.Resolver
}

func (c *ConnectivityChecker) transport() *http.Transport {
	if c.Transport == nil {
		return http.DefaultTransport.(*http.Transport)
	}
	return c.Transport
}
