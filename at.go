// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// ResultAt builds a keyed reference into a function at one argument
// point: the target of f is f(key). Viewing applies the function;
// writing v produces a function that returns v at key and delegates to f
// everywhere else. Repeated writes stack one wrapper per write, so
// lookup cost grows with the number of overridden points.
func ResultAt[K comparable, V any](key K) SimpleIndexed[K, func(K) V, V] {
	return IndexedLens(func(f func(K) V) (K, V) {
		return key, f(key)
	}, func(f func(K) V, v V) func(K) V {
		return func(k K) V {
			if k == key {
				return v
			}
			return f(k)
		}
	})
}
