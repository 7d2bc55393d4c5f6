// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build opticdebug

package optic

// debugChecks is enabled by the opticdebug build tag.
const debugChecks = true
