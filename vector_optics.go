// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Head focuses element 0 of a vector. Applying it to an empty vector
// fails with the empty-vector condition.
func Head[A any]() Simple[Vector[A], A] {
	return Lens(func(v Vector[A]) A {
		if v.Len() == 0 {
			failOp("Head on empty vector")
		}
		return v.At(0)
	}, func(v Vector[A], x A) Vector[A] {
		return v.WithAt(0, x)
	})
}

// Last focuses the final element of a vector. Applying it to an empty
// vector fails with the empty-vector condition.
func Last[A any]() Simple[Vector[A], A] {
	return Lens(func(v Vector[A]) A {
		if v.Len() == 0 {
			failOp("Last on empty vector")
		}
		return v.At(v.Len() - 1)
	}, func(v Vector[A], x A) Vector[A] {
		return v.WithAt(v.Len()-1, x)
	})
}

// Tail focuses everything but the first element as a sub-vector.
// Writing prepends the original first element to the replacement, so the
// replacement may have any length. Applying it to an empty vector fails
// with the empty-vector condition.
func Tail[A any]() Simple[Vector[A], Vector[A]] {
	return Lens(func(v Vector[A]) Vector[A] {
		if v.Len() == 0 {
			failOp("Tail on empty vector")
		}
		return v.Slice(1, v.Len()-1)
	}, func(v Vector[A], t Vector[A]) Vector[A] {
		return t.Prepend(v.At(0))
	})
}

// Init focuses everything but the last element as a sub-vector. Writing
// appends the original last element to the replacement. Applying it to
// an empty vector fails with the empty-vector condition.
func Init[A any]() Simple[Vector[A], Vector[A]] {
	return Lens(func(v Vector[A]) Vector[A] {
		if v.Len() == 0 {
			failOp("Init on empty vector")
		}
		return v.Slice(0, v.Len()-1)
	}, func(v Vector[A], t Vector[A]) Vector[A] {
		return t.Append(v.At(v.Len() - 1))
	})
}

// Sliced focuses the contiguous window of count elements starting at
// position start. A window reaching outside the vector fails loudly.
//
// The lens laws hold only when the replacement window has exactly count
// elements. The library does not check this in normal builds; a
// different length silently shifts everything after the window. Building
// with the opticdebug tag turns the length mismatch into a panic.
func Sliced[A any](start, count int) Simple[Vector[A], Vector[A]] {
	return Lens(func(v Vector[A]) Vector[A] {
		if start < 0 || count < 0 || start+count > v.Len() {
			failOp("Sliced window out of range")
		}
		return v.Slice(start, count)
	}, func(v Vector[A], w Vector[A]) Vector[A] {
		if debugChecks && w.Len() != count {
			failOp("Sliced replacement length differs from window")
		}
		return slices.Concat(v[:start], w, v[start+count:])
	})
}

// Ordinal focuses the element at position i, reporting i as the key.
// A position outside the vector fails loudly.
func Ordinal[A any](i int) SimpleIndexed[int, Vector[A], A] {
	return IndexedLens(func(v Vector[A]) (int, A) {
		if i < 0 || i >= v.Len() {
			failOp("Ordinal position out of range")
		}
		return i, v.At(i)
	}, func(v Vector[A], x A) Vector[A] {
		return v.WithAt(i, x)
	})
}

// Ordinals focuses the elements at the given positions, reporting each
// position as its key. Positions are visited in first-occurrence order:
// duplicates collapse to a single visit and positions outside the vector
// are dropped. Elements at unvisited positions are left unchanged.
func Ordinals[A any](positions ...int) SimpleIndexed[int, Vector[A], A] {
	ps := slices.Clone(positions)
	return func(m Mapping, k func(int, A) Effect) func(Vector[A]) Effect {
		return func(v Vector[A]) Effect {
			sq := mustSequence(m, "Ordinals")
			seen := bitset.New(uint(v.Len()))
			acc := sq.Pure(v)
			for _, p := range ps {
				if p < 0 || p >= v.Len() || seen.Test(uint(p)) {
					continue
				}
				seen.Set(uint(p))
				acc = sq.Seq(sq.Map(acc, func(cur Effect) Effect {
					return func(e Effect) Effect {
						return cur.(Vector[A]).WithAt(p, e.(A))
					}
				}), k(p, v.At(p)))
			}
			return acc
		}
	}
}

// Each focuses every element in position order, reporting each position
// as its key. Unlike [Ordinals] it rebuilds the whole vector from the
// replacements, so the element type may change.
func Each[A, B any]() IndexedOptic[int, Vector[A], Vector[B], A, B] {
	return func(m Mapping, k func(int, A) Effect) func(Vector[A]) Effect {
		return func(v Vector[A]) Effect {
			sq := mustSequence(m, "Each")
			acc := sq.Pure(make(Vector[B], 0, v.Len()))
			for i, x := range v {
				acc = sq.Seq(sq.Map(acc, func(cur Effect) Effect {
					return func(e Effect) Effect {
						return append(cur.(Vector[B]), e.(B))
					}
				}), k(i, x))
			}
			return acc
		}
	}
}

// AsVector converts between a plain slice and a vector: viewing builds a
// vector from the slice, writing flattens the replacement vector back.
// Both directions copy, so neither side aliases the other.
func AsVector[A, B any]() Optic[[]A, []B, Vector[A], Vector[B]] {
	return Iso(func(s []A) Vector[A] {
		return NewVector(s...)
	}, func(v Vector[B]) []B {
		return v.Items()
	})
}

// Reversed views a vector in the opposite element order. Reversal is its
// own inverse, so writing reverses the replacement back.
func Reversed[A any]() Simple[Vector[A], Vector[A]] {
	return Iso(Vector[A].Reverse, Vector[A].Reverse)
}

// Forced views a vector as a compact copy of itself. The two sides hold
// the same elements; the conversion only drops spare capacity.
func Forced[A any]() Simple[Vector[A], Vector[A]] {
	return Iso(Vector[A].Clip, Vector[A].Clip)
}
