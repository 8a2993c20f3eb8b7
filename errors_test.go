// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"testing"

	"github.com/ckring-go/ckring"
)

func TestErrWouldBlockPredicates(t *testing.T) {
	if !ring.IsWouldBlock(ring.ErrWouldBlock) {
		t.Fatal("IsWouldBlock(ErrWouldBlock): got false, want true")
	}
	if !ring.IsSemantic(ring.ErrWouldBlock) {
		t.Fatal("IsSemantic(ErrWouldBlock): got false, want true")
	}
	if !ring.IsNonFailure(ring.ErrWouldBlock) {
		t.Fatal("IsNonFailure(ErrWouldBlock): got false, want true")
	}
	if !ring.IsNonFailure(nil) {
		t.Fatal("IsNonFailure(nil): got false, want true")
	}
}
