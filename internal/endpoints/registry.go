package endpoints

import (
	"sort"
	"strings"

	"github.com/hamed0406/envprobe/internal/domain"
)

// Registry holds the base endpoints and the region overlays. It is not
// modified after construction and is safe to share between requests.
type Registry struct {
	base     Set
	overlays map[string]Set
}

func NewRegistry(base Set, overlays map[string]Set) *Registry {
	r := &Registry{base: base.Clone(), overlays: make(map[string]Set, len(overlays))}
	for k, v := range overlays {
		r.overlays[NormalizeRegion(k)] = v.Clone()
	}
	return r
}

// Default returns the endpoints a Go build node usually depends on.
func Default() *Registry {
	base := NewSet(
		domain.Endpoint{Name: "Go", URL: "https://go.dev"},
		domain.Endpoint{Name: "Go Proxy", URL: "https://proxy.golang.org"},
		domain.Endpoint{Name: "Go Checksum DB", URL: "https://sum.golang.org/lookup/golang.org/x/text@v0.3.0"},
		domain.Endpoint{Name: "Go Packages", URL: "https://pkg.go.dev"},
		domain.Endpoint{Name: "GitHub", URL: "https://github.com"},
	)
	overlays := map[string]Set{
		"cn": NewSet(
			domain.Endpoint{Name: "Go Proxy(goproxy.cn)", URL: "https://goproxy.cn"},
			domain.Endpoint{Name: "Go Proxy(aliyun)", URL: "https://mirrors.aliyun.com/goproxy/"},
			domain.Endpoint{Name: "Go(cn)", URL: "https://golang.google.cn"},
		),
	}
	return NewRegistry(base, overlays)
}

// Base returns a copy of the default endpoint set.
func (r *Registry) Base() Set { return r.base.Clone() }

// OverlayFor returns the overlay for region, or an empty Set and false when
// the region is unknown.
func (r *Registry) OverlayFor(region string) (Set, bool) {
	o, ok := r.overlays[NormalizeRegion(region)]
	if !ok {
		return Set{}, false
	}
	return o.Clone(), true
}

// Regions lists the known region keys, sorted.
func (r *Registry) Regions() []string {
	out := make([]string, 0, len(r.overlays))
	for k := range r.overlays {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func NormalizeRegion(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
