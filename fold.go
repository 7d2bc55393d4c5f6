// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// FoldMap measures every target with f and combines the measures through
// merge in visitation order, starting from empty. merge must be
// associative; it is not required to be commutative, and the combination
// is always left-to-right.
func FoldMap[S, T, A, B, R any](o Optic[S, T, A, B], empty R, merge func(R, R) R, f func(A) R, s S) R {
	m := foldMapping{
		empty: func() Effect { return empty },
		merge: func(x, y Effect) Effect { return merge(x.(R), y.(R)) },
	}
	e := o(m, func(a A) Effect {
		return f(a)
	})(s)
	return e.(R)
}

// Collect gathers every target of the reference into a slice, in
// visitation order. A reference with no targets yields a nil slice.
func Collect[S, T, A, B any](o Optic[S, T, A, B], s S) []A {
	return FoldMap(o, nil, func(x, y []A) []A {
		return append(x, y...)
	}, func(a A) []A {
		return []A{a}
	}, s)
}
