package endpoints

import "github.com/hamed0406/envprobe/internal/domain"

// Set is an ordered, name-unique collection of endpoints. Iteration follows
// insertion order; re-inserting a name replaces its URL in place.
type Set struct {
	items []domain.Endpoint
	index map[string]int
}

// NewSet builds a Set from endpoints, applying Put to each in turn.
func NewSet(eps ...domain.Endpoint) Set {
	var s Set
	for _, e := range eps {
		s.Put(e.Name, e.URL)
	}
	return s
}

func (s *Set) Put(name, url string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[name]; ok {
		s.items[i].URL = url
		return
	}
	s.index[name] = len(s.items)
	s.items = append(s.items, domain.Endpoint{Name: name, URL: url})
}

func (s Set) Get(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.items[i].URL, true
}

func (s Set) Len() int { return len(s.items) }

// Endpoints returns a copy of the endpoints in iteration order.
func (s Set) Endpoints() []domain.Endpoint {
	out := make([]domain.Endpoint, len(s.items))
	copy(out, s.items)
	return out
}

func (s Set) Clone() Set {
	return NewSet(s.items...)
}

// Merge returns a new Set holding base followed by each overlay in turn.
// On a name collision the last overlay applied wins.
func Merge(base Set, overlays ...Set) Set {
	out := base.Clone()
	for _, o := range overlays {
		for _, e := range o.items {
			out.Put(e.Name, e.URL)
		}
	}
	return out
}
