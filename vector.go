// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Vector is a contiguous 0-based sequence with update-by-copy semantics:
// every writing method returns a new vector and leaves the receiver
// untouched. It is the worked container for the reference library; its
// references live in [Head], [Last], [Tail], [Init], [Sliced],
// [Ordinal], [Ordinals], [Each], [AsVector], [Reversed] and [Forced].
type Vector[A any] []A

// NewVector builds a vector from items in order. The items are copied.
func NewVector[A any](items ...A) Vector[A] {
	n := make(Vector[A], len(items))
	copy(n, items)
	return n
}

// Len reports the number of elements.
func (v Vector[A]) Len() int { return len(v) }

// At reads the element at position i.
func (v Vector[A]) At(i int) A {
	if i < 0 || i >= len(v) {
		failOp("At position out of range")
	}
	return v[i]
}

// WithAt returns a copy of v with the element at position i replaced.
func (v Vector[A]) WithAt(i int, x A) Vector[A] {
	if i < 0 || i >= len(v) {
		failOp("WithAt position out of range")
	}
	n := make(Vector[A], len(v))
	copy(n, v)
	n[i] = x
	return n
}

// Slice copies out the window of count elements starting at position
// start.
func (v Vector[A]) Slice(start, count int) Vector[A] {
	if start < 0 || count < 0 || start+count > len(v) {
		failOp("Slice window out of range")
	}
	n := make(Vector[A], count)
	copy(n, v[start:])
	return n
}

// Append returns a copy of v with x added after the last element.
func (v Vector[A]) Append(x A) Vector[A] {
	n := make(Vector[A], len(v)+1)
	copy(n, v)
	n[len(v)] = x
	return n
}

// Prepend returns a copy of v with x added before the first element.
func (v Vector[A]) Prepend(x A) Vector[A] {
	n := make(Vector[A], len(v)+1)
	n[0] = x
	copy(n[1:], v)
	return n
}

// Reverse returns a copy of v with the element order reversed.
func (v Vector[A]) Reverse() Vector[A] {
	n := make(Vector[A], len(v))
	for i, x := range v {
		n[len(v)-1-i] = x
	}
	return n
}

// Clip returns a compact copy of v holding exactly its elements, with no
// spare capacity.
func (v Vector[A]) Clip() Vector[A] {
	n := make(Vector[A], len(v))
	copy(n, v)
	return n
}

// Items flattens the vector to a plain slice. The elements are copied.
func (v Vector[A]) Items() []A {
	n := make([]A, len(v))
	copy(n, v)
	return n
}

// VectorOf gathers every target of the reference into a new vector, in
// visitation order.
func VectorOf[S, T, A, B any](o Optic[S, T, A, B], s S) Vector[A] {
	return Vector[A](Collect(o, s))
}
