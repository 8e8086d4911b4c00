package ecs

import "reflect"

// Query1 iterates every entity carrying a T component, in archetype-
// canonical order and row-insertion order within each archetype, and calls
// fn with the entity and a pointer to its component for in-place mutation.
// Once archetypes are warm (no new signature is created), Query1 allocates
// nothing beyond the closure invocation itself.
func Query1[T any](w *World, fn func(Entity, *T)) {
	want := reflect.TypeOf((*T)(nil)).Elem()
	for _, a := range w.orderedArchetypes() {
		if a.Len() == 0 || !a.signature.Has(want) {
			continue
		}
		col := a.columns[want].(*typedColumn[T])
		for i, e := range a.entities {
			fn(e, &col.data[i])
		}
	}
}

// Query2 iterates every entity carrying both an A and a B component.
func Query2[A, B any](w *World, fn func(Entity, *A, *B)) {
	wantA := reflect.TypeOf((*A)(nil)).Elem()
	wantB := reflect.TypeOf((*B)(nil)).Elem()
	need := []reflect.Type{wantA, wantB}
	for _, a := range w.orderedArchetypes() {
		if a.Len() == 0 || !a.signature.supersetOf(need) {
			continue
		}
		colA := a.columns[wantA].(*typedColumn[A])
		colB := a.columns[wantB].(*typedColumn[B])
		for i, e := range a.entities {
			fn(e, &colA.data[i], &colB.data[i])
		}
	}
}

// Query3 iterates every entity carrying an A, a B, and a C component.
func Query3[A, B, C any](w *World, fn func(Entity, *A, *B, *C)) {
	wantA := reflect.TypeOf((*A)(nil)).Elem()
	wantB := reflect.TypeOf((*B)(nil)).Elem()
	wantC := reflect.TypeOf((*C)(nil)).Elem()
	need := []reflect.Type{wantA, wantB, wantC}
	for _, a := range w.orderedArchetypes() {
		if a.Len() == 0 || !a.signature.supersetOf(need) {
			continue
		}
		colA := a.columns[wantA].(*typedColumn[A])
		colB := a.columns[wantB].(*typedColumn[B])
		colC := a.columns[wantC].(*typedColumn[C])
		for i, e := range a.entities {
			fn(e, &colA.data[i], &colB.data[i], &colC.data[i])
		}
	}
}

// Count returns the number of entities carrying a T component, without
// allocating an intermediate slice.
func Count[T any](w *World) int {
	want := reflect.TypeOf((*T)(nil)).Elem()
	n := 0
	for _, a := range w.orderedArchetypes() {
		if a.signature.Has(want) {
			n += a.Len()
		}
	}
	return n
}
