package httpapi

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/envprobe/internal/domain"
	"github.com/hamed0406/envprobe/internal/endpoints"
	"github.com/hamed0406/envprobe/internal/probe"
	"github.com/hamed0406/envprobe/internal/report"
)

// ---- test helpers ----

type fakeBuilder struct {
	mu    sync.Mutex
	calls int
	got   report.Settings
}

func (f *fakeBuilder) Build(_ context.Context, s report.Settings) *report.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.got = s
	return &report.Report{Sections: []domain.Section{{
		Kind:  domain.KindTime,
		Title: "Time Test",
		Lines: []domain.Line{domain.Info("call")},
	}}}
}

type nxResolver struct{}

func (nxResolver) LookupIP(_ context.Context, _, host string) ([]net.IP, error) {
	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

// ---- tests ----

func TestReport_AnyPathRebuildsReport(t *testing.T) {
	b := &fakeBuilder{}
	settings := report.Settings{Regions: []string{"cn"}, TimeoutSeconds: 3}
	ts := httptest.NewServer(NewServer(zap.NewNop(), b, settings).Router())
	defer ts.Close()

	for _, path := range []string{"/", "/status", "/a/b?c=d"} {
		resp, body := get(t, ts.URL+path)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: want 200, got %d", path, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: want text/html, got %q", path, ct)
		}
		if !strings.HasPrefix(body, report.RefreshMeta) {
			t.Fatalf("%s: missing refresh directive: %q", path, body)
		}
		if !strings.Contains(body, "----------Time Test----------<br>") {
			t.Fatalf("%s: missing section: %q", path, body)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.calls != 3 {
		t.Fatalf("want a fresh build per request, got %d", b.calls)
	}
	if b.got.TimeoutSeconds != 3 || len(b.got.Regions) != 1 {
		t.Fatalf("settings not passed through: %+v", b.got)
	}
}

func TestReport_UnknownRegionStill200(t *testing.T) {
	reg := endpoints.NewRegistry(endpoints.NewSet(
		domain.Endpoint{Name: "A", URL: "http://unresolvable.invalid"},
	), nil)
	runner := probe.NewRunner(zap.NewNop(), &probe.ConnectivityChecker{Resolver: nxResolver{}})
	agg := report.NewAggregator(zap.NewNop(), reg, runner, nil)
	settings := report.Settings{
		Enabled: map[domain.ProbeKind]bool{domain.KindNetwork: true},
		Regions: []string{"xx"},
	}
	ts := httptest.NewServer(NewServer(zap.NewNop(), agg, settings).Router())
	defer ts.Close()

	resp, body := get(t, ts.URL)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Region xx") {
		t.Fatalf("want advisory in body: %q", body)
	}
	if !strings.Contains(body, "Error resolving DNS for A: http://unresolvable.invalid") {
		t.Fatalf("want DNS failure line in body: %q", body)
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := NewServer(zap.NewNop(), &fakeBuilder{}, report.Settings{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, _ := get(t, "http://"+ln.Addr().String()+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
