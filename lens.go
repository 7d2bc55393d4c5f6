// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic

// Lens builds a single-target reference from a getter and an updater.
// get extracts the focus from the source; put rebuilds the source around
// a replacement focus. The caller is responsible for the lens laws:
// put-then-get returns what was put, get-then-put changes nothing, and a
// second put overwrites the first.
func Lens[S, T, A, B any](get func(S) A, put func(S, B) T) Optic[S, T, A, B] {
	return func(m Mapping, k func(A) Effect) func(S) Effect {
		return func(s S) Effect {
			return m.Map(k(get(s)), func(e Effect) Effect {
				return put(s, e.(B))
			})
		}
	}
}

// Iso builds a reference from an invertible pair of total conversions.
// Viewing applies fwd; updating ignores the old focus and applies bwd to
// the replacement, which makes an isomorphism a lens whose put forgets
// the source. The caller is responsible for fwd and bwd being mutually
// inverse.
func Iso[S, T, A, B any](fwd func(S) A, bwd func(B) T) Optic[S, T, A, B] {
	return func(m Mapping, k func(A) Effect) func(S) Effect {
		return func(s S) Effect {
			return m.Map(k(fwd(s)), func(e Effect) Effect {
				return bwd(e.(B))
			})
		}
	}
}

// Getter builds a read-only reference from a projection. Viewing and
// collecting work as with a lens; any updating operation fails with the
// read-only condition, since a projection cannot rebuild its source.
func Getter[S, A any](get func(S) A) Simple[S, A] {
	return func(m Mapping, k func(A) Effect) func(S) Effect {
		return func(s S) Effect {
			return m.Map(k(get(s)), func(Effect) Effect {
				failOp("update through read-only Getter")
				return nil
			})
		}
	}
}
