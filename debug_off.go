// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !opticdebug

package optic

// debugChecks gates the assertions that catch single-target operations
// applied to references with more than one target, and the Sliced
// replacement-length check. Build with -tags opticdebug to enable them.
const debugChecks = false
