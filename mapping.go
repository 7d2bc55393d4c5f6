// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Effect represents a type-erased capability value flowing through a
// reference application. Each derived operation chooses a concrete
// capability, and the capability decides what an Effect carries: the
// rebuilt value for [Modify], an accumulator for [FoldMap], the first
// visited target for [View], a pending task for [ParWith]. Concrete
// types are recovered via type assertions at the capability boundary.
type Effect = any

// Mapping is the capability every reference application needs: lifting a
// pure value into the capability and transforming the carried value.
// Single-target shapes (lenses, isomorphisms, getters) use nothing else.
//
// Map must apply f to the carried value for value-like capabilities and
// ignore f for accumulating ones; Pure must lift v without observing it.
type Mapping interface {
	Pure(v Effect) Effect
	Map(e Effect, f func(Effect) Effect) Effect
}

// Sequencing extends Mapping with left-to-right effect combination, the
// extra power multi-target shapes require. Seq receives a function-carrying
// effect ff and an argument-carrying effect fa and must combine them
// preserving visitation order.
//
// A multi-target reference applied with a capability that does not
// implement Sequencing fails with the shape-mismatch condition.
type Sequencing interface {
	Mapping
	Seq(ff, fa Effect) Effect
}

// failOp panics with a descriptive message naming the violated condition.
// Extracted as a noinline function so that derived operations remain
// inlineable.
//
//go:noinline
func failOp(msg string) {
	panic("optic: " + msg)
}

// mustSequence asserts the Sequencing capability on m, failing with the
// shape-mismatch condition when m cannot combine multiple targets.
func mustSequence(m Mapping, op string) Sequencing {
	sq, ok := m.(Sequencing)
	if !ok {
		failOp(op + " requires a Sequencing capability")
	}
	return sq
}

// overMapping is the value capability: effects carry the rebuilt value
// itself. It drives [Set], [Modify], and the withKey update family.
type overMapping struct{}

func (overMapping) Pure(v Effect) Effect                       { return v }
func (overMapping) Map(e Effect, f func(Effect) Effect) Effect { return f(e) }
func (overMapping) Seq(ff, fa Effect) Effect                   { return ff.(func(Effect) Effect)(fa) }

// hit carries the first visited target and the total number of targets
// seen, so single-target operations can detect both zero and (under the
// opticdebug build tag) multiple matches.
type hit struct {
	v Effect
	n int
}

// firstMapping is the first-target capability behind [View] and [Preview]:
// Map ignores rebuild functions, Seq keeps the leftmost hit and accumulates
// the match count.
type firstMapping struct{}

func (firstMapping) Pure(Effect) Effect                         { return hit{} }
func (firstMapping) Map(e Effect, _ func(Effect) Effect) Effect { return e }

func (firstMapping) Seq(ff, fa Effect) Effect {
	l, r := ff.(hit), fa.(hit)
	if l.n == 0 {
		return r
	}
	return hit{v: l.v, n: l.n + r.n}
}

// foldMapping is the accumulation capability behind [FoldMap] and
// [Collect]: Pure lifts the neutral element, Map ignores rebuild
// functions, Seq merges accumulators left-to-right.
type foldMapping struct {
	empty func() Effect
	merge func(x, y Effect) Effect
}

func (c foldMapping) Pure(Effect) Effect                         { return c.empty() }
func (c foldMapping) Map(e Effect, _ func(Effect) Effect) Effect { return e }
func (c foldMapping) Seq(ff, fa Effect) Effect                   { return c.merge(ff, fa) }

// duo pairs a per-target summary with the value channel of the rebuild.
// It is the effect shape of pairMapping.
type duo struct {
	sum Effect
	val Effect
}

// pairMapping is the summary-and-update capability behind [UpdateWithKey]
// and [FoldWithKey]: the value half behaves exactly like overMapping while
// the summary half accumulates through merge in visitation order.
type pairMapping struct {
	empty func() Effect
	merge func(x, y Effect) Effect
}

func (c pairMapping) Pure(v Effect) Effect { return duo{sum: c.empty(), val: v} }

func (c pairMapping) Map(e Effect, f func(Effect) Effect) Effect {
	d := e.(duo)
	return duo{sum: d.sum, val: f(d.val)}
}

func (c pairMapping) Seq(ff, fa Effect) Effect {
	l, r := ff.(duo), fa.(duo)
	return duo{
		sum: c.merge(l.sum, r.sum),
		val: l.val.(func(Effect) Effect)(r.val),
	}
}

// noSummary marks the absence of any per-target summary, distinguishing
// "zero targets" from a summary that happens to be a zero value.
type noSummary struct{}

// firstSummary is the merge rule for single-target summary extraction:
// the first produced summary wins, later ones indicate (and under
// opticdebug report) a multi-target reference.
func firstSummary(op string) func(x, y Effect) Effect {
	return func(x, y Effect) Effect {
		if _, none := x.(noSummary); none {
			return y
		}
		if debugChecks {
			if _, none := y.(noSummary); !none {
				failOp(op + " on reference with multiple targets")
			}
		}
		return x
	}
}
