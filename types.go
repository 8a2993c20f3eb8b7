// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Queue is the combined producer-consumer interface implemented by both
// [SPSC] and [SPMC]. It lets generic code (a pipeline stage, a test
// helper) accept either discipline's ring without caring which one it
// got.
//
// Queue deliberately excludes [SPMC.TryDequeue]: SPSC has no equivalent
// single-attempt operation, so it is not part of the shared contract.
type Queue[T Entry] interface {
	Enqueuer[T]
	Dequeuer[T]
	Cap() int
	Size() int
}

// Enqueuer is the interface for enqueueing elements, implemented by both
// [SPSC] and [SPMC].
//
// Thread safety: exactly one goroutine may call Enqueue, for either
// discipline — the producer side is always single. Calling it from more
// than one goroutine concurrently is undefined behavior. For a
// type-enforced single-producer handle instead of this interface, see
// [Producer].
type Enqueuer[T Entry] interface {
	// Enqueue adds an element to the ring (non-blocking).
	// Returns nil on success, ErrWouldBlock if the ring is full.
	Enqueue(entry T) error
}

// Dequeuer is the interface for dequeueing elements, implemented by both
// [SPSC] and [SPMC].
//
// Thread safety: SPSC permits exactly one consumer goroutine; SPMC
// permits any number.
type Dequeuer[T Entry] interface {
	// Dequeue removes and returns an element from the ring
	// (non-blocking). Returns (zero-value, ErrWouldBlock) if the ring is
	// empty.
	Dequeue() (T, error)
}
