package ecs

import (
	"reflect"
	"sort"
	"strings"
)

// Signature is the canonical, sorted set of component types an entity
// carries. Two entities with the same components in any insertion order
// produce equal signatures, and signatures sort identically on every
// platform because the sort key is the type's string name rather than its
// reflect.Type pointer identity.
type Signature struct {
	types []reflect.Type
	key   string
}

func newSignature(types []reflect.Type) Signature {
	cp := append([]reflect.Type(nil), types...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].String() < cp[j].String() })
	names := make([]string, len(cp))
	for i, t := range cp {
		names[i] = t.String()
	}
	return Signature{types: cp, key: strings.Join(names, "|")}
}

// Key returns the signature's canonical string form, suitable as a map key
// or for use as the archetype-ordering sort key.
func (s Signature) Key() string { return s.key }

// Len returns the number of distinct component types in the signature.
func (s Signature) Len() int { return len(s.types) }

// Has reports whether t is a member of the signature.
func (s Signature) Has(t reflect.Type) bool {
	for _, existing := range s.types {
		if existing == t {
			return true
		}
	}
	return false
}

// Types returns the signature's component types in canonical order. The
// returned slice must not be mutated by the caller.
func (s Signature) Types() []reflect.Type { return s.types }

// with returns the signature formed by adding t, or s unchanged if t is
// already present.
func (s Signature) with(t reflect.Type) Signature {
	if s.Has(t) {
		return s
	}
	return newSignature(append(append([]reflect.Type(nil), s.types...), t))
}

// without returns the signature formed by removing t, or s unchanged if t is
// not present.
func (s Signature) without(t reflect.Type) Signature {
	if !s.Has(t) {
		return s
	}
	out := make([]reflect.Type, 0, len(s.types)-1)
	for _, existing := range s.types {
		if existing != t {
			out = append(out, existing)
		}
	}
	return newSignature(out)
}

// supersetOf reports whether s contains every type in want.
func (s Signature) supersetOf(want []reflect.Type) bool {
	for _, t := range want {
		if !s.Has(t) {
			return false
		}
	}
	return true
}
