package monocle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryTokensAreMonotonic(t *testing.T) {
	reg := NewRegistry()
	a, b := &GameObject{}, &GameObject{}

	ta := reg.Register(a)
	tb := reg.Register(b)
	assert.NotEqual(t, NoObject, ta)
	assert.Greater(t, tb, ta)
	assert.Equal(t, ta, a.Token)

	reg.Unregister(ta)
	c := &GameObject{}
	assert.Greater(t, reg.Register(c), tb, "tokens are never reused")
}

func TestRegistryRegisterTwice(t *testing.T) {
	reg := NewRegistry()
	obj := &GameObject{}
	tok := reg.Register(obj)
	assert.Equal(t, tok, reg.Register(obj))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryLookupDoesNotEvict(t *testing.T) {
	reg := NewRegistry()
	obj := &GameObject{}
	tok := reg.Register(obj)

	for range 3 {
		got, ok := reg.Lookup(tok)
		require.True(t, ok)
		assert.Same(t, obj, got)
	}

	reg.Unregister(tok)
	_, ok := reg.Lookup(tok)
	assert.False(t, ok)
	reg.Unregister(tok) // unknown tokens are ignored
	assert.Zero(t, reg.Len())
}

func TestRegistryObjectsInTokenOrder(t *testing.T) {
	reg := NewRegistry()
	var objs []*GameObject
	for range 50 {
		o := &GameObject{}
		reg.Register(o)
		objs = append(objs, o)
	}
	reg.Unregister(objs[10].Token)

	got := reg.Objects()
	require.Len(t, got, 49)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Token, got[i].Token)
	}
}

func TestRegistryConcurrentRegister(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				reg.Register(&GameObject{})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, reg.Len())
	seen := make(map[Token]bool)
	for _, o := range reg.Objects() {
		assert.False(t, seen[o.Token])
		seen[o.Token] = true
	}
}
