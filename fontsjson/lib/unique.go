package lib

import "strconv"

// KeySet tracks the keys handed out during one manifest build.
// It is not safe for concurrent use; each build owns its own set.
type KeySet struct {
	used map[string]struct{}
}

// NewKeySet creates an empty KeySet
func NewKeySet() *KeySet {
	return &KeySet{used: make(map[string]struct{})}
}

// Resolve returns candidate if it is unused, otherwise candidate followed by
// the smallest counter (starting at 1) that makes it unused. The returned key
// is recorded as used.
func (ks *KeySet) Resolve(candidate string) string {
	key := candidate
	for n := 1; ks.Has(key); n++ {
		key = candidate + strconv.Itoa(n)
	}
	ks.used[key] = struct{}{}
	return key
}

// Has reports whether key was already handed out
func (ks *KeySet) Has(key string) bool {
	_, ok := ks.used[key]
	return ok
}

// Len returns the number of keys handed out so far
func (ks *KeySet) Len() int {
	return len(ks.used)
}
