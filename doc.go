// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a bounded lock-free FIFO ring buffer for passing
// opaque, word-sized entries between cooperating goroutines, in two
// concurrency disciplines:
//
//   - SPSC: one producer goroutine, one consumer goroutine.
//   - SPMC: one producer goroutine, any number of consumer goroutines.
//
// # Quick Start
//
// Direct constructors, mirroring the teacher lfq package's style:
//
//	q := ring.NewSPSC[uintptr](1024)
//	q := ring.NewSPMC[unsafe.Pointer](4096)
//
// # Basic Usage
//
//	q := ring.NewSPSC[uintptr](1024)
//
//	if err := q.Enqueue(42); err != nil {
//	    // ring.IsWouldBlock(err) == true: ring full, back off.
//	}
//
//	v, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(v)
//	}
//
// # Low-Level API
//
// Most callers want the [SPSC] / [SPMC] wrapper types above. Callers that
// own their own slot array (e.g. a buffer pool shared across several
// rings, or embedded directly in a larger allocation) can drive the
// control block and buffer handle directly:
//
//	var r ring.Ring[uintptr]
//	ring.Init(&r, 1024)
//	buf := ring.NewBuffer[uintptr](1024)
//
//	ring.Enqueue(&r, buf, 42)
//	v, ok := ring.DequeueSPSC(&r, buf)
//
// The buffer handle is a small value type (a slice header) carrying only
// a reference to the backing array; it is owned by the caller and must
// be passed by value to every operation, never mutated concurrently with
// the ring's own indexing.
//
// # Pipeline Stage (SPSC)
//
//	q := ring.NewSPSC[uintptr](1024)
//
//	go func() { // producer
//	    backoff := iox.Backoff{}
//	    for v := range input {
//	        for q.Enqueue(v) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        v, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(v)
//	    }
//	}()
//
// # Work Distribution (SPMC)
//
//	q := ring.NewSPMC[uintptr](1024)
//
//	go func() { // single dispatcher
//	    for task := range tasks {
//	        for q.Enqueue(task) != nil {
//	            runtime.Gosched()
//	        }
//	    }
//	}()
//
//	for range numWorkers { // multiple workers
//	    go func() {
//	        for {
//	            task, err := q.Dequeue()
//	            if err == nil {
//	                run(task)
//	            }
//	        }
//	    }()
//	}
//
// # Thread Safety
//
// SPSC requires exactly one producer goroutine and exactly one consumer
// goroutine. SPMC requires exactly one producer goroutine and permits any
// number of consumer goroutines. Violating either constraint (e.g. two
// producers on the same ring) is a precondition violation: the core does
// not detect it and the result is undefined behavior, exactly as in the
// original ck_ring.
//
// # Capacity
//
// Capacity rounds up to the next power of two in the [NewSPSC] / [NewSPMC]
// constructors; [Init] takes an already-rounded size and performs no
// rounding of its own (see [Init]). One slot is always kept empty to
// disambiguate full from empty, so a ring built with capacity n holds at
// most n-1 live entries.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but
// cannot observe the happens-before edges established by atomix's
// acquire/release orderings on separate variables (the counter and the
// slot it guards). The SPMC fan-out and stress tests are skipped under
// -race via [RaceEnabled]; run them without the race detector for
// contention coverage.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/spin] for the SPMC
// CAS retry backoff, and [code.hybscloud.com/iox] for the ergonomic
// wrappers' semantic errors.
package ring
