// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "unsafe"

// Entry is the set of types a ring may hold: pointer-sized, trivially
// copyable handles. This replaces the original's void* entry with a
// generic parameter so the slot array is typed directly, with no
// pointer-to-pointer aliasing shim.
//
// Any uintptr-like type (indices, handles, tagged integers) or
// unsafe.Pointer-like type (object references) qualifies. Both have the
// same machine-word size and representation, so a Ring[T] never needs to
// box or indirect through an interface to store T.
//
// Entry values are stored in a [Buffer]'s slots as plain typed fields, not
// bit-cast through uintptr: that reinterpretation would hide a live
// unsafe.Pointer from the garbage collector and risk the pointee being
// collected before a consumer reads it back out.
type Entry interface {
	~uintptr | ~unsafe.Pointer
}

// cacheLineSize is the platform cache-line tunable. 64 bytes covers every
// mainstream target (amd64, arm64, riscv64); callers on exotic targets with
// larger lines lose false-sharing avoidance but not correctness.
const cacheLineSize = 64

// pad occupies one full cache line. Placed immediately after head and
// after tail so that, under any valid allocation alignment, a store to
// one counter cannot invalidate the cache line containing the other.
type pad [cacheLineSize]byte

// padShort pads a structure that already contains one machine word down
// to a full cache line.
type padShort [cacheLineSize - 8]byte
