package probe

import (
	"context"
	"net"

	"github.com/hamed0406/envprobe/internal/domain"
)

// Prober checks a single endpoint and always produces exactly one outcome.
type Prober interface {
	Probe(ctx context.Context, name, target string, timeoutSeconds int) domain.Outcome
}

// Resolver is the subset of *net.Resolver the prober needs.
type Resolver interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}
