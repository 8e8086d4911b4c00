package ecs

import "reflect"

// SetResource installs or replaces the world's singleton value of type T.
// Resources are scheduler-visible but not entity-attached: the metrics
// registry, the weave adjudicator state, and the physics world handle are
// all resources in this sense.
func SetResource[T any](w *World, value T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	w.resources[t] = value
}

// Resource returns the world's singleton T and true, or the zero value and
// false if none was set.
func Resource[T any](w *World) (T, bool) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()
	v, ok := w.resources[t]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// MustResource returns the world's singleton T, panicking if it was never
// set. Intended for resources a system cannot meaningfully proceed without
// (e.g. the type registry itself would be, were it not supplied at
// construction) — a genuine programmer error, not a gameplay failure.
func MustResource[T any](w *World) T {
	v, ok := Resource[T](w)
	if !ok {
		var zero T
		panic("ecs: required resource " + reflect.TypeOf(zero).String() + " not set")
	}
	return v
}
