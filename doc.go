// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package optic provides composable functional references into immutable
// values in Go: lenses, traversals, keyed variants and isomorphisms under
// one representation and one composition operator.
//
// The core type [Optic] represents a reference as a visitor transformer
// parameterized by an abstract capability. The capability chosen at the
// call site decides what applying the reference computes; the reference
// itself only knows which parts of the source it visits and how to put
// them back. Updates never mutate: every writing operation returns a new
// value.
//
// # Design Philosophy
//
// optic provides:
//   - One representation for every reference shape, from single-target
//     lenses to zero-or-more-target traversals
//   - Composition as plain function composition, so associativity and
//     identity need no per-shape code
//   - Derived operations written once against the capability, available
//     for every container instance
//
// # Capability Architecture
//
// Applying a reference threads type-erased [Effect] values through a
// capability supplied by the derived operation. Concrete types are
// recovered via type assertions at the capability boundary; the public
// surface stays fully typed.
//
//   - [Effect]: Type alias for any, marking type-erased capability values
//   - [Mapping]: Lift a pure value and transform the carried value; all
//     a single-target shape needs
//   - [Sequencing]: Adds left-to-right effect combination for
//     multi-target shapes
//
// A multi-target reference applied with a capability that cannot
// sequence fails with the shape-mismatch condition. Every panic in the
// package carries an "optic:" prefix naming the violated condition.
//
// # Core Operations
//
// Building and composing:
//
//   - [Lens]: Reference from a getter and an updater
//   - [Iso]: Reference from an invertible conversion pair
//   - [Getter]: Read-only reference from a projection
//   - [Compose]: Apply one reference within each target of another
//   - [Identity]: The whole source as the one target; unit of Compose
//   - [Simple]: Alias for references that preserve types
//
// Derived operations:
//
//   - [View]: Read the single target (first target in the multi-target
//     fallback; empty-target panic on zero)
//   - [Preview]: Comma-ok read of the first target
//   - [Set]: Replace every target
//   - [Modify]: Apply a function to every target
//   - [FoldMap]: Combine a measure of every target, in visitation order
//   - [Collect]: Gather every target into a slice
//
// # Keyed References
//
// A keyed reference hands each visited target to the visitor together
// with a key describing its location. Composition keeps the inner key by
// default; pairing is opt-in.
//
//   - [IndexedOptic]: Reference with a key side channel
//   - [SimpleIndexed]: Type-preserving alias
//   - [IndexedLens]: Keyed reference from a getter and an updater
//   - [NoKey]: Forget the key channel
//   - [ComposeIndexed]: Keyed outside, plain inside; keeps the outer key
//   - [ComposeInner]: Plain outside, keyed inside; keeps the inner key
//   - [PairKeys]: Keep both keys as a [Pair]
//   - [ViewWithKey], [CollectWithKey]: Keyed reads
//   - [ModifyWithKey]: Keyed update
//   - [UpdateWithKey]: Single-target keyed update returning the produced
//     value alongside the rebuilt source
//   - [FoldWithKey]: Keyed update producing a combined summary alongside
//     the rebuilt source
//
// # State Contexts
//
// The In operations run a keyed update against a value held in a
// [Context] instead of threading it explicitly: read once, rebuild,
// write once, return only the result.
//
//   - [Context]: Current and Replace over a held value
//   - [Cell], [NewCell]: Trivial field-backed Context
//   - [ModifyWithKeyIn], [UpdateWithKeyIn], [FoldWithKeyIn]
//
// # Key Containers
//
// [Contains] turns any container with set semantics into a boolean
// keyed reference: viewing reads membership, writing true inserts and
// false deletes. Containers join through the [KeySet] capability.
//
//   - [KeySet]: Membership, insert and delete over an immutable container
//   - [SparseKeys]: Unsigned integer keys over a bit set
//   - [OrderedKeys]: Ordered keys over a copy-on-write B-tree
//   - [HashedKeys]: Comparable keys over a native map
//   - [ByteKeys]: Byte string keys over an immutable radix tree
//   - [ResultAt]: Reference into a total function at one argument point
//
// # Vectors
//
// [Vector] is a contiguous update-by-copy sequence, the worked container
// for the library.
//
//   - [NewVector], [Vector.Len], [Vector.At], [Vector.WithAt],
//     [Vector.Slice], [Vector.Append], [Vector.Prepend],
//     [Vector.Reverse], [Vector.Clip], [Vector.Items]
//   - [Head], [Last]: Boundary element lenses; panic on empty
//   - [Tail], [Init]: All-but-boundary lenses rebuilding around the
//     original boundary element; panic on empty
//   - [Sliced]: Contiguous window lens; lawful only for exact-length
//     replacements (see its documentation)
//   - [Ordinal]: Keyed element lens; panics out of range
//   - [Ordinals]: Keyed traversal over chosen positions, first-occurrence
//     order, deduplicated, out-of-range dropped
//   - [Each]: Keyed traversal over every element; element type may change
//   - [AsVector]: Slice and vector conversion
//   - [Reversed]: Self-inverse element order reversal
//   - [Forced]: Compaction; semantically identity
//   - [VectorOf]: Gather every target of any reference into a vector
//
// # Evaluation Strategies
//
// A [Strategy] is an opaque externally supplied forcing policy. The
// adapter applies one to the targets of a reference, sequentially or
// concurrently; results always land at their original positions
// regardless of completion order.
//
//   - [EvalWith]: Sequential application
//   - [ParWith]: One concurrent task per target, fire then wait
//   - [ParWithLimit]: Bounded concurrent leaves
//   - [After]: Force the whole source, then delegate
//   - [Throughout]: Force the whole source concurrently with delegation
//
// There is no cancellation or timeout: a strategy that never returns
// hangs the operation that invoked it.
//
// # Example
//
//	type account struct {
//		owner   string
//		balance int
//	}
//
//	balance := optic.Lens(
//		func(a account) int { return a.balance },
//		func(a account, b int) account { a.balance = b; return a },
//	)
//	first := optic.Compose(optic.Head[account](), balance)
//
//	accounts := optic.NewVector(
//		account{owner: "ada", balance: 10},
//		account{owner: "ben", balance: 20},
//	)
//	funded := optic.Set(first, 100, accounts)
//	// optic.View(first, funded) == 100, accounts is unchanged
package optic
