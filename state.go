// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Context is a mutable holder of a current value, the collaborator for
// the In family of operations. Implementations decide where the value
// lives, whether a plain field or a slot in some larger store.
//
// Each In operation calls Current exactly once, then Replace exactly
// once with the rebuilt value, and returns only the operation's result.
type Context[S any] interface {
	Current() S
	Replace(S)
}

// Cell is the trivial Context: it holds the value in a field.
type Cell[S any] struct {
	Value S
}

// NewCell returns a Cell holding v.
func NewCell[S any](v S) *Cell[S] {
	return &Cell[S]{Value: v}
}

func (c *Cell[S]) Current() S  { return c.Value }
func (c *Cell[S]) Replace(v S) { c.Value = v }

// ModifyWithKeyIn applies f to every target of the keyed reference
// within ctx's current value and stores the rebuilt value back.
func ModifyWithKeyIn[I, S, A, B any](ctx Context[S], io IndexedOptic[I, S, S, A, B], f func(I, A) B) {
	ctx.Replace(ModifyWithKey(io, f, ctx.Current()))
}

// UpdateWithKeyIn applies f to the target of a single-target keyed
// reference within ctx's current value, stores the rebuilt value back,
// and returns the produced value. Failure behavior matches
// [UpdateWithKey].
func UpdateWithKeyIn[I, S, A, B any](ctx Context[S], io IndexedOptic[I, S, S, A, B], f func(I, A) B) B {
	b, t := UpdateWithKey(io, f, ctx.Current())
	ctx.Replace(t)
	return b
}

// FoldWithKeyIn applies f to every target of the keyed reference within
// ctx's current value, stores the rebuilt value back, and returns the
// combined summary. Summary combination matches [FoldWithKey].
func FoldWithKeyIn[I, S, A, B, W any](ctx Context[S], io IndexedOptic[I, S, S, A, B], empty W, merge func(W, W) W, f func(I, A) (W, B)) W {
	w, t := FoldWithKey(io, empty, merge, f, ctx.Current())
	ctx.Replace(t)
	return w
}
