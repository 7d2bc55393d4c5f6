// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Optic represents a composable reference into part of a larger value.
// Optic[S, T, A, B] focuses targets of type A inside a source of type S;
// replacing each A with a B rebuilds the source as a T.
//
// The function receives a capability m and a visitor k for the focus, and
// returns a visitor for the whole source. The capability chosen at the
// call site decides what the application computes: reading the first
// target, replacing every target, accumulating over all targets, or
// scheduling each target concurrently. The reference itself never knows.
//
// One representation covers every shape: a lens visits exactly one target,
// a traversal zero or more, an isomorphism converts the whole value, a
// getter is read-only. Shapes differ only in which capability operations
// they exercise, so composing any two references yields a reference of the
// weakest common shape with no per-pair code.
type Optic[S, T, A, B any] func(m Mapping, k func(A) Effect) func(S) Effect

// Simple is a reference that cannot change the type of the whole or the
// part, the common case of viewing and updating in place.
type Simple[S, A any] = Optic[S, S, A, A]

// Compose applies inner within each target of outer.
//
// Composition is plain function composition of the partially applied
// visitor transformers, so associativity and identity come for free:
// Compose(Compose(a, b), c) and Compose(a, Compose(b, c)) produce
// references with identical behavior, and [Identity] is a two-sided unit.
func Compose[S, T, A, B, X, Y any](outer Optic[S, T, A, B], inner Optic[A, B, X, Y]) Optic[S, T, X, Y] {
	return func(m Mapping, k func(X) Effect) func(S) Effect {
		return outer(m, inner(m, k))
	}
}

// Identity is the trivial reference: the whole source is the one target.
// It is the unit of [Compose] on both sides.
func Identity[S any]() Simple[S, S] {
	return func(_ Mapping, k func(S) Effect) func(S) Effect {
		return k
	}
}
