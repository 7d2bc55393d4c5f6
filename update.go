// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Modify applies f to every target of the reference and rebuilds the
// source. Positions the reference does not visit are left unchanged; a
// reference with no targets returns the source as is.
func Modify[S, T, A, B any](o Optic[S, T, A, B], f func(A) B, s S) T {
	e := o(overMapping{}, func(a A) Effect {
		return f(a)
	})(s)
	return e.(T)
}

// Set writes b to every target of the reference and rebuilds the source.
// Multi-target references receive the same b at every visited position.
func Set[S, T, A, B any](o Optic[S, T, A, B], b B, s S) T {
	return Modify(o, func(A) B { return b }, s)
}
