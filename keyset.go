// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

import (
	"maps"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/btree"
	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// SparseKeys is the [KeySet] instance for unsigned integer keys over a
// bit set. Insert and Delete clone the set before mutating, so the
// original stays valid. The empty container is bitset.New(0).
type SparseKeys struct{}

func (SparseKeys) Contains(c *bitset.BitSet, k uint) bool { return c.Test(k) }

func (SparseKeys) Insert(c *bitset.BitSet, k uint) *bitset.BitSet {
	return c.Clone().Set(k)
}

func (SparseKeys) Delete(c *bitset.BitSet, k uint) *bitset.BitSet {
	return c.Clone().Clear(k)
}

// OrderedKeys is the [KeySet] instance for ordered keys over a B-tree.
// Clone is copy-on-write, so Insert and Delete cost one lazy clone plus
// the touched path. The empty container is btree.NewOrderedG or
// btree.NewG with the key ordering.
type OrderedKeys[K any] struct{}

func (OrderedKeys[K]) Contains(c *btree.BTreeG[K], k K) bool { return c.Has(k) }

func (OrderedKeys[K]) Insert(c *btree.BTreeG[K], k K) *btree.BTreeG[K] {
	n := c.Clone()
	n.ReplaceOrInsert(k)
	return n
}

func (OrderedKeys[K]) Delete(c *btree.BTreeG[K], k K) *btree.BTreeG[K] {
	n := c.Clone()
	n.Delete(k)
	return n
}

// HashedKeys is the [KeySet] instance for comparable keys over a native
// map used as a set. Insert and Delete copy the map. The empty container
// is a nil map.
type HashedKeys[K comparable] struct{}

func (HashedKeys[K]) Contains(c map[K]struct{}, k K) bool {
	_, ok := c[k]
	return ok
}

func (HashedKeys[K]) Insert(c map[K]struct{}, k K) map[K]struct{} {
	n := maps.Clone(c)
	if n == nil {
		n = make(map[K]struct{}, 1)
	}
	n[k] = struct{}{}
	return n
}

func (HashedKeys[K]) Delete(c map[K]struct{}, k K) map[K]struct{} {
	n := maps.Clone(c)
	delete(n, k)
	return n
}

// ByteKeys is the [KeySet] instance for byte string keys over an
// immutable radix tree. The tree is persistent already: Insert and
// Delete return a new root sharing unchanged nodes with the original.
// The empty container is iradix.New.
type ByteKeys struct{}

func (ByteKeys) Contains(c *iradix.Tree[struct{}], k []byte) bool {
	_, ok := c.Get(k)
	return ok
}

func (ByteKeys) Insert(c *iradix.Tree[struct{}], k []byte) *iradix.Tree[struct{}] {
	n, _, _ := c.Insert(k, struct{}{})
	return n
}

func (ByteKeys) Delete(c *iradix.Tree[struct{}], k []byte) *iradix.Tree[struct{}] {
	n, _, _ := c.Delete(k)
	return n
}
