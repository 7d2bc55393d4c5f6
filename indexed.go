// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// IndexedOptic is a reference that hands each visited target to the
// visitor together with a key describing the target's location, such as
// the position of an element or the argument of a function point. The
// key rides a side channel; dropping it with [NoKey] recovers
// an ordinary [Optic], and every plain operation has a keyed counterpart
// ([ModifyWithKey], [FoldWithKey], [UpdateWithKey], ...).
type IndexedOptic[I, S, T, A, B any] func(m Mapping, k func(I, A) Effect) func(S) Effect

// SimpleIndexed is a keyed reference that cannot change the type of the
// whole or the part.
type SimpleIndexed[I, S, A any] = IndexedOptic[I, S, S, A, A]

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// IndexedLens builds a single-target keyed reference. get extracts the
// key and the focus from the source; put rebuilds the source around a
// replacement focus. The lens laws apply as with [Lens].
func IndexedLens[I, S, T, A, B any](get func(S) (I, A), put func(S, B) T) IndexedOptic[I, S, T, A, B] {
	return func(m Mapping, k func(I, A) Effect) func(S) Effect {
		return func(s S) Effect {
			i, a := get(s)
			return m.Map(k(i, a), func(e Effect) Effect {
				return put(s, e.(B))
			})
		}
	}
}

// NoKey forgets the key channel of a keyed reference, yielding a plain
// reference with identical targets and rebuild behavior.
func NoKey[I, S, T, A, B any](io IndexedOptic[I, S, T, A, B]) Optic[S, T, A, B] {
	return func(m Mapping, k func(A) Effect) func(S) Effect {
		return io(m, func(_ I, a A) Effect {
			return k(a)
		})
	}
}

// ComposeIndexed applies a plain reference within each target of a keyed
// reference. The outer key survives: each final target is reported under
// the key of the outer target it came from.
func ComposeIndexed[I, S, T, A, B, X, Y any](outer IndexedOptic[I, S, T, A, B], inner Optic[A, B, X, Y]) IndexedOptic[I, S, T, X, Y] {
	return func(m Mapping, k func(I, X) Effect) func(S) Effect {
		return outer(m, func(i I, a A) Effect {
			return inner(m, func(x X) Effect {
				return k(i, x)
			})(a)
		})
	}
}

// ComposeInner applies a keyed reference within each target of a plain
// reference, keeping the inner key. Composing two keyed references keeps
// the inner key by default: ComposeInner(NoKey(outer), inner). Use
// [PairKeys] to keep both.
func ComposeInner[I, S, T, A, B, X, Y any](outer Optic[S, T, A, B], inner IndexedOptic[I, A, B, X, Y]) IndexedOptic[I, S, T, X, Y] {
	return func(m Mapping, k func(I, X) Effect) func(S) Effect {
		return outer(m, inner(m, k))
	}
}

// PairKeys composes two keyed references, reporting each final target
// under the pair of the outer and inner keys.
func PairKeys[I, J, S, T, A, B, X, Y any](outer IndexedOptic[I, S, T, A, B], inner IndexedOptic[J, A, B, X, Y]) IndexedOptic[Pair[I, J], S, T, X, Y] {
	return func(m Mapping, k func(Pair[I, J], X) Effect) func(S) Effect {
		return outer(m, func(i I, a A) Effect {
			return inner(m, func(j J, x X) Effect {
				return k(Pair[I, J]{Fst: i, Snd: j}, x)
			})(a)
		})
	}
}

// ViewWithKey reads the target of a single-target keyed reference along
// with its key. The fallback and failure behavior match [View]: first
// target in visitation order, empty-target panic on zero targets, and a
// multi-target panic under the opticdebug tag.
func ViewWithKey[I, S, T, A, B any](io IndexedOptic[I, S, T, A, B], s S) (I, A) {
	e := io(firstMapping{}, func(i I, a A) Effect {
		return hit{v: Pair[I, A]{Fst: i, Snd: a}, n: 1}
	})(s)
	h := e.(hit)
	if h.n == 0 {
		failOp("ViewWithKey on reference with no targets")
	}
	if debugChecks && h.n > 1 {
		failOp("ViewWithKey on reference with multiple targets")
	}
	p := h.v.(Pair[I, A])
	return p.Fst, p.Snd
}

// CollectWithKey gathers every target of a keyed reference with its key,
// in visitation order.
func CollectWithKey[I, S, T, A, B any](io IndexedOptic[I, S, T, A, B], s S) []Pair[I, A] {
	m := foldMapping{
		empty: func() Effect { return []Pair[I, A](nil) },
		merge: func(x, y Effect) Effect {
			return append(x.([]Pair[I, A]), y.([]Pair[I, A])...)
		},
	}
	e := io(m, func(i I, a A) Effect {
		return []Pair[I, A]{{Fst: i, Snd: a}}
	})(s)
	return e.([]Pair[I, A])
}

// ModifyWithKey applies f to every target of a keyed reference, passing
// each target's key alongside its value, and rebuilds the source.
func ModifyWithKey[I, S, T, A, B any](io IndexedOptic[I, S, T, A, B], f func(I, A) B, s S) T {
	e := io(overMapping{}, func(i I, a A) Effect {
		return f(i, a)
	})(s)
	return e.(T)
}

// UpdateWithKey applies f to the target of a single-target keyed
// reference and returns the produced value alongside the rebuilt source,
// so the caller observes what was written without a second pass. Zero
// targets fail with the empty-target condition; on a multi-target
// reference the first produced value is returned, and the opticdebug tag
// turns that misuse into a panic.
func UpdateWithKey[I, S, T, A, B any](io IndexedOptic[I, S, T, A, B], f func(I, A) B, s S) (B, T) {
	m := pairMapping{
		empty: func() Effect { return noSummary{} },
		merge: firstSummary("UpdateWithKey"),
	}
	e := io(m, func(i I, a A) Effect {
		b := f(i, a)
		return duo{sum: b, val: b}
	})(s)
	d := e.(duo)
	if _, none := d.sum.(noSummary); none {
		failOp("UpdateWithKey on reference with no targets")
	}
	return d.sum.(B), d.val.(T)
}

// FoldWithKey applies f to every target of a keyed reference, where f
// returns a summary alongside the replacement value, and returns the
// summaries combined through merge in visitation order together with the
// rebuilt source. merge must be associative with empty as its identity.
//
// Update and summarize happen in one visit: a keyed counter or a
// collect-while-replacing needs no second traversal.
func FoldWithKey[I, S, T, A, B, W any](io IndexedOptic[I, S, T, A, B], empty W, merge func(W, W) W, f func(I, A) (W, B), s S) (W, T) {
	m := pairMapping{
		empty: func() Effect { return empty },
		merge: func(x, y Effect) Effect { return merge(x.(W), y.(W)) },
	}
	e := io(m, func(i I, a A) Effect {
		w, b := f(i, a)
		return duo{sum: w, val: b}
	})(s)
	d := e.(duo)
	return d.sum.(W), d.val.(T)
}
