// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// View reads the target of a single-target reference.
//
// Applied to a multi-target reference, View returns the first target in
// visitation order; building with the opticdebug tag turns that misuse
// into a panic. A reference with no targets fails with the empty-target
// condition; use [Preview] when absence is expected.
func View[S, T, A, B any](o Optic[S, T, A, B], s S) A {
	h := firstHit(o, s)
	if h.n == 0 {
		failOp("View on reference with no targets")
	}
	if debugChecks && h.n > 1 {
		failOp("View on reference with multiple targets")
	}
	return h.v.(A)
}

// Preview reads the first target of a reference, reporting presence.
// Returns (zero, false) when the reference visits nothing in s.
func Preview[S, T, A, B any](o Optic[S, T, A, B], s S) (A, bool) {
	h := firstHit(o, s)
	if h.n == 0 {
		var zero A
		return zero, false
	}
	return h.v.(A), true
}

func firstHit[S, T, A, B any](o Optic[S, T, A, B], s S) hit {
	e := o(firstMapping{}, func(a A) Effect {
		return hit{v: a, n: 1}
	})(s)
	return e.(hit)
}
