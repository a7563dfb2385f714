package endpoints

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/envprobe/internal/domain"
)

// fileDoc maps the endpoints YAML document:
//
//	base:
//	  - name: Internal Registry
//	    url: https://registry.internal
//	regions:
//	  eu:
//	    - name: Go Proxy(eu)
//	      url: https://goproxy.eu.internal
type fileDoc struct {
	Base    []domain.Endpoint            `yaml:"base"`
	Regions map[string][]domain.Endpoint `yaml:"regions"`
}

// LoadFile reads an endpoints file and merges it over the registry r.
func LoadFile(r *Registry, path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(r, data)
}

// Parse merges an endpoints YAML document over the registry r.
func Parse(r *Registry, data []byte) (*Registry, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse endpoints: %w", err)
	}
	if err := validate("base", doc.Base); err != nil {
		return nil, err
	}

	base := Merge(r.base, NewSet(doc.Base...))
	overlays := make(map[string]Set, len(r.overlays)+len(doc.Regions))
	for k, v := range r.overlays {
		overlays[k] = v
	}
	for region, eps := range doc.Regions {
		key := NormalizeRegion(region)
		if key == "" {
			return nil, fmt.Errorf("endpoints: empty region key")
		}
		if err := validate("regions."+key, eps); err != nil {
			return nil, err
		}
		overlays[key] = Merge(overlays[key], NewSet(eps...))
	}
	return NewRegistry(base, overlays), nil
}

func validate(where string, eps []domain.Endpoint) error {
	for i, e := range eps {
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.URL) == "" {
			return fmt.Errorf("endpoints: %s[%d]: name and url are required", where, i)
		}
	}
	return nil
}
