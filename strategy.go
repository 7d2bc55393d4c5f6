// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

import "golang.org/x/sync/errgroup"

// Strategy is an externally supplied evaluation-forcing policy. The
// library never inspects a strategy: it only threads values through it,
// sequentially or concurrently. Strategies handed to the concurrent
// operations must be safe to invoke concurrently on disjoint values.
//
// There is no cancellation or timeout: a strategy that never returns
// hangs the operation that invoked it.
type Strategy[A any] func(A) A

// EvalWith applies st to every target of the reference in visitation
// order, one after the other, and rebuilds the source.
func EvalWith[S, A any](o Simple[S, A], st Strategy[A]) Strategy[S] {
	return func(s S) S {
		return Modify(o, st, s)
	}
}

// ParWith applies st to every target of the reference concurrently: each
// target becomes an independent task and the rebuilt source is returned
// once every task has finished. Each result lands at the position its
// target came from regardless of completion order, so the rebuilt value
// equals the [EvalWith] result.
func ParWith[S, A any](o Simple[S, A], st Strategy[A]) Strategy[S] {
	return parWith(o, st, 0)
}

// ParWithLimit is [ParWith] with at most n strategy invocations running
// at once. n <= 0 means no limit.
func ParWithLimit[S, A any](o Simple[S, A], st Strategy[A], n int) Strategy[S] {
	return parWith(o, st, n)
}

func parWith[S, A any](o Simple[S, A], st Strategy[A], limit int) Strategy[S] {
	return func(s S) S {
		var leaves, joins errgroup.Group
		if limit > 0 {
			leaves.SetLimit(limit)
		}
		m := parMapping{leaves: &leaves, joins: &joins}
		e := o(m, func(a A) Effect {
			t := &task{done: make(chan struct{})}
			leaves.Go(func() error {
				t.v = st(a)
				close(t.done)
				return nil
			})
			return t
		})(s)
		root := e.(*task)
		_ = leaves.Wait()
		_ = joins.Wait()
		return root.v.(S)
	}
}

// After returns a reference that forces the entire source with st before
// delegating to o. The shape of o is preserved.
func After[S, T, A, B any](st Strategy[S], o Optic[S, T, A, B]) Optic[S, T, A, B] {
	return func(m Mapping, k func(A) Effect) func(S) Effect {
		inner := o(m, k)
		return func(s S) Effect {
			return inner(st(s))
		}
	}
}

// Throughout returns a reference that forces the entire source with st
// concurrently with delegating to o, and waits for both before
// returning. It differs from [After] only in scheduling overlap, not in
// the logical result.
func Throughout[S, T, A, B any](st Strategy[S], o Optic[S, T, A, B]) Optic[S, T, A, B] {
	return func(m Mapping, k func(A) Effect) func(S) Effect {
		inner := o(m, k)
		return func(s S) Effect {
			var g errgroup.Group
			g.Go(func() error {
				st(s)
				return nil
			})
			e := inner(s)
			_ = g.Wait()
			return e
		}
	}
}

// task is a single-assignment future: v is valid once done is closed.
type task struct {
	done chan struct{}
	v    Effect
}

// parMapping is the concurrent capability behind [ParWith]: effects are
// tasks, and every Map and Seq node becomes a goroutine on the joins
// group that waits for its inputs. The joins group is never limited, so
// a bounded leaves group cannot deadlock the combination chain.
type parMapping struct {
	leaves *errgroup.Group
	joins  *errgroup.Group
}

func (p parMapping) Pure(v Effect) Effect {
	t := &task{done: make(chan struct{}), v: v}
	close(t.done)
	return t
}

func (p parMapping) Map(e Effect, f func(Effect) Effect) Effect {
	in := e.(*task)
	out := &task{done: make(chan struct{})}
	p.joins.Go(func() error {
		<-in.done
		out.v = f(in.v)
		close(out.done)
		return nil
	})
	return out
}

func (p parMapping) Seq(ff, fa Effect) Effect {
	l, r := ff.(*task), fa.(*task)
	out := &task{done: make(chan struct{})}
	p.joins.Go(func() error {
		<-l.done
		<-r.done
		out.v = l.v.(func(Effect) Effect)(r.v)
		close(out.done)
		return nil
	})
	return out
}
