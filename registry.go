package monocle

import (
	"cmp"
	"slices"
	"sync"
)

// Token identifies a registered game object across the engine boundary.
// The zero Token means "no object" and is never assigned.
type Token uint32

// NoObject is the token carried by global (per-frame) events.
const NoObject Token = 0

// Registry maps tokens to live game objects. Entries are added by Register
// and removed only by Unregister; lookups never evict. Safe for concurrent
// use.
type Registry struct {
	mu      sync.RWMutex
	objects map[Token]*GameObject
	next    Token
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{objects: make(map[Token]*GameObject)}
}

// Register assigns obj a fresh token, records it, and returns the token.
// Tokens increase monotonically and are never reused. Registering an object
// that already holds a live token returns that token.
func (r *Registry) Register(obj *GameObject) Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	if obj.Token != NoObject {
		if cur, ok := r.objects[obj.Token]; ok && cur == obj {
			return obj.Token
		}
	}
	r.next++
	obj.Token = r.next
	r.objects[obj.Token] = obj
	return obj.Token
}

// Unregister removes tok. Unknown tokens are ignored.
func (r *Registry) Unregister(tok Token) {
	r.mu.Lock()
	delete(r.objects, tok)
	r.mu.Unlock()
}

// Lookup returns the object registered under tok.
func (r *Registry) Lookup(tok Token) (*GameObject, bool) {
	r.mu.RLock()
	obj, ok := r.objects[tok]
	r.mu.RUnlock()
	return obj, ok
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

// Objects returns the registered objects in token (creation) order.
func (r *Registry) Objects() []*GameObject {
	r.mu.RLock()
	out := make([]*GameObject, 0, len(r.objects))
	for _, obj := range r.objects {
		out = append(out, obj)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, func(a, b *GameObject) int {
		return cmp.Compare(a.Token, b.Token)
	})
	return out
}
