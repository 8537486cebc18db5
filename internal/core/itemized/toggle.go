package itemized

import "sort"

// ExpandedSet is the set of invoice numbers whose per-line detail is shown.
// The caller owns it between requests; nothing in this package keeps one.
type ExpandedSet map[string]struct{}

// NewExpandedSet builds a set from keys, ignoring duplicates.
func NewExpandedSet(keys ...string) ExpandedSet {
	s := make(ExpandedSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key is expanded. A nil set has no keys.
func (s ExpandedSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the members in sorted order.
func (s ExpandedSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Toggle returns a copy of s with key added if it was absent or removed if it
// was present. s itself is left untouched.
func Toggle(s ExpandedSet, key string) ExpandedSet {
	next := make(ExpandedSet, len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}
	if s.Has(key) {
		delete(next, key)
	} else {
		next[key] = struct{}{}
	}
	return next
}
