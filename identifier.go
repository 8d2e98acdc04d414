package lambda

import "fmt"

// Identifier is an interned textual name, used for variables, symbols and
// function names.
type Identifier string

// IdentifierSet is a set of Identifiers, used for free-variable analysis.
type IdentifierSet map[Identifier]struct{}

func newIdentifierSet(ids ...Identifier) IdentifierSet {
	s := make(IdentifierSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member of the set.
func (s IdentifierSet) Contains(id Identifier) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set containing every member of s and other.
func (s IdentifierSet) Union(other IdentifierSet) IdentifierSet {
	out := make(IdentifierSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Without returns a new set containing every member of s except id.
func (s IdentifierSet) Without(id Identifier) IdentifierSet {
	if !s.Contains(id) {
		return s
	}
	out := make(IdentifierSet, len(s))
	for k := range s {
		if k != id {
			out[k] = struct{}{}
		}
	}
	return out
}

// fresh returns an Identifier not in avoid, deterministically derived from
// seed: seed itself if it's already free, else seed with an incrementing
// numeric suffix. This is the policy described in spec §4.1 — the exact
// scheme is unobservable except transiently during capture-avoiding rename.
func fresh(seed Identifier, avoid IdentifierSet) Identifier {
	if !avoid.Contains(seed) {
		return seed
	}
	for i := 0; ; i++ {
		candidate := Identifier(fmt.Sprintf("%s%d", seed, i))
		if !avoid.Contains(candidate) {
			return candidate
		}
	}
}
