// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// options configures ring creation. The ring's producer side is always
// single — multi-producer disciplines are out of scope (see spec
// Non-goals) — so the only axis left to configure is the consumer side.
type options struct {
	singleConsumer bool
	capacity       int
}

// Builder creates rings with fluent configuration, mirroring the
// teacher library's builder, trimmed to the two disciplines this
// package implements.
//
// Example:
//
//	q := ring.BuildSPSC[uintptr](ring.New(1024).SingleConsumer())
//	q := ring.BuildSPMC[uintptr](ring.New(1024))
type Builder struct {
	opts options
}

// New creates a ring builder with the given capacity.
// Capacity rounds up to the next power of two. Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	return &Builder{opts: options{capacity: capacity}}
}

// SingleConsumer declares that only one goroutine will dequeue, selecting
// the SPSC discipline. Without it, [BuildSPMC] is the intended builder
// target; calling [BuildSPSC] on a builder missing this panics, and vice
// versa.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// BuildSPSC creates an SPSC ring with compile-time type safety.
// Panics if the builder is not configured with SingleConsumer().
func BuildSPSC[T Entry](b *Builder) *SPSC[T] {
	if !b.opts.singleConsumer {
		panic("ring: BuildSPSC requires SingleConsumer()")
	}
	return NewSPSC[T](b.opts.capacity)
}

// BuildSPMC creates an SPMC ring with compile-time type safety.
// Panics if the builder is configured with SingleConsumer().
func BuildSPMC[T Entry](b *Builder) *SPMC[T] {
	if b.opts.singleConsumer {
		panic("ring: BuildSPMC requires no SingleConsumer()")
	}
	return NewSPMC[T](b.opts.capacity)
}
