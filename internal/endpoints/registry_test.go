package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamed0406/envprobe/internal/domain"
)

func ep(name, url string) domain.Endpoint { return domain.Endpoint{Name: name, URL: url} }

func TestSet_PutOverwritesInPlace(t *testing.T) {
	s := NewSet(ep("A", "http://a"), ep("B", "http://b"))
	s.Put("A", "http://a2")

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []domain.Endpoint{ep("A", "http://a2"), ep("B", "http://b")}, s.Endpoints())
}

func TestMerge_EmptyOverlayIsNoOp(t *testing.T) {
	base := Default().Base()
	merged := Merge(base, Set{})
	assert.Equal(t, base.Endpoints(), merged.Endpoints())
}

func TestMerge_LastOverlayWins(t *testing.T) {
	base := NewSet(ep("A", "http://a"))
	o1 := NewSet(ep("B", "http://b1"), ep("A", "http://a1"))
	o2 := NewSet(ep("B", "http://b2"))

	merged := Merge(base, o1, o2)

	assert.Equal(t, []domain.Endpoint{ep("A", "http://a1"), ep("B", "http://b2")}, merged.Endpoints())
	// inputs untouched
	u, _ := base.Get("A")
	assert.Equal(t, "http://a", u)
	assert.Equal(t, 1, base.Len())
}

func TestRegistry_OverlayFor(t *testing.T) {
	r := Default()

	cn, ok := r.OverlayFor(" CN ")
	require.True(t, ok)
	assert.Positive(t, cn.Len())

	xx, ok := r.OverlayFor("xx")
	assert.False(t, ok)
	assert.Equal(t, 0, xx.Len())
}

func TestRegistry_Regions(t *testing.T) {
	assert.Equal(t, []string{"cn"}, Default().Regions())

	r := NewRegistry(NewSet(), map[string]Set{
		" EU ": NewSet(ep("E", "http://e")),
		"cn":   NewSet(),
		"AP":   NewSet(),
	})
	assert.Equal(t, []string{"ap", "cn", "eu"}, r.Regions())
}

func TestRegistry_BaseIsACopy(t *testing.T) {
	r := Default()
	b := r.Base()
	b.Put("Extra", "http://extra")

	_, found := r.Base().Get("Extra")
	assert.False(t, found)
}

func TestParse_ExtendsDefaults(t *testing.T) {
	doc := []byte(`
base:
  - name: Internal
    url: https://registry.internal
  - name: GitHub
    url: https://github.example
regions:
  EU:
    - name: Go Proxy(eu)
      url: https://goproxy.eu.internal
  cn:
    - name: Extra(cn)
      url: https://extra.cn
`)
	r, err := Parse(Default(), doc)
	require.NoError(t, err)

	base := r.Base()
	u, ok := base.Get("GitHub")
	require.True(t, ok)
	assert.Equal(t, "https://github.example", u)
	_, ok = base.Get("Internal")
	assert.True(t, ok)

	eu, ok := r.OverlayFor("eu")
	require.True(t, ok)
	assert.Equal(t, 1, eu.Len())

	cn, _ := r.OverlayFor("cn")
	_, ok = cn.Get("Go(cn)")
	assert.True(t, ok, "defaults for cn are kept")
	_, ok = cn.Get("Extra(cn)")
	assert.True(t, ok)
}

func TestParse_RejectsIncompleteEntries(t *testing.T) {
	_, err := Parse(Default(), []byte("base:\n  - name: NoURL\n"))
	require.Error(t, err)

	_, err = Parse(Default(), []byte("base: [\n"))
	require.Error(t, err)
}
