package probe

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/envprobe/internal/domain"
)

// fetch GETs target once. Connections to host dial the already resolved
// ips in order so the fetch does not pay for a second lookup. A zero
// timeout means none.
func fetch(ctx context.Context, base *http.Transport, target, host string, ips []net.IP, timeout time.Duration) error {
	tr := base.Clone()
	defer tr.CloseIdleConnections()
	tr.DialContext = pinnedDial(&net.Dialer{}, host, ips)

	client := &http.Client{Transport: tr, Timeout: timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	// body is irrelevant; reachability only
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: HTTP Error %s", domain.ErrFetch, resp.Status)
	}
	return nil
}

// pinnedDial tries each of ips for host until one connects. With a
// deadline on ctx, the remaining time is split evenly over the addresses
// left, so one blackholed address cannot use up the whole budget. Other
// hosts (redirect targets) are dialed normally.
func pinnedDial(d *net.Dialer, host string, ips []net.IP) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		h, port, err := net.SplitHostPort(addr)
		if err != nil || !strings.EqualFold(h, host) || len(ips) == 0 {
			return d.DialContext(ctx, network, addr)
		}

		var lastErr error
		for i, ip := range ips {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			conn, err := dialOne(ctx, d, network, net.JoinHostPort(ip.String(), port), len(ips)-i)
			if err == nil {
				return conn, nil
			}
			lastErr = err
		}
		return nil, lastErr
	}
}

func dialOne(ctx context.Context, d *net.Dialer, network, addr string, left int) (net.Conn, error) {
	if deadline, ok := ctx.Deadline(); ok && left > 1 {
		share := time.Until(deadline) / time.Duration(left)
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, share)
		defer cancel()
	}
	return d.DialContext(ctx, network, addr)
}
