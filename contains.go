// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// KeySet is the capability a key container offers to [Contains]: pure
// membership plus insert and delete that leave the original container
// untouched and return the updated one. Instances are free to share
// structure between the original and the result.
//
// [SparseKeys], [OrderedKeys], [HashedKeys] and [ByteKeys] cover the
// common container families; any type with set semantics can join by
// implementing these three methods.
type KeySet[C, K any] interface {
	Contains(c C, k K) bool
	Insert(c C, k K) C
	Delete(c C, k K) C
}

// Contains builds a keyed reference into a key container, focusing the
// presence of key as a boolean. Viewing reads membership; writing true
// inserts the key and writing false deletes it, so toggling membership
// composes like any other reference. The reference reports key itself as
// the key of its single target.
func Contains[C, K any](ks KeySet[C, K], key K) SimpleIndexed[K, C, bool] {
	return IndexedLens(func(c C) (K, bool) {
		return key, ks.Contains(c, key)
	}, func(c C, present bool) C {
		if present {
			return ks.Insert(c, key)
		}
		return ks.Delete(c, key)
	})
}
