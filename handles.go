// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// noCopy makes go vet's -copylocks analysis flag any attempt to copy the
// struct embedding it, the same zero-size marker convention the standard
// library uses in sync.WaitGroup and sync.noCopy. It has no behavior of
// its own.
type noCopy struct{}

// Lock and Unlock are no-ops; their only purpose is to give noCopy a
// Locker-shaped method set so `go vet -copylocks` treats it as non-copyable.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Producer is a single-producer handle bound to one ring and buffer. The
// protocol assumes exactly one goroutine ever calls Enqueue concurrently;
// embedding noCopy turns an accidental second copy (e.g. passing a
// Producer by value into a second goroutine) into a `go vet` failure
// instead of a silent correctness bug.
//
// Construct one with [NewProducer]; pass it by pointer to whichever
// goroutine will own it.
type Producer[T Entry] struct {
	_   noCopy
	r   *Ring[T]
	buf Buffer[T]
}

// NewProducer binds a Producer handle to r and buf. Call once, from the
// single goroutine that will call Enqueue.
func NewProducer[T Entry](r *Ring[T], buf Buffer[T]) *Producer[T] {
	return &Producer[T]{r: r, buf: buf}
}

// Enqueue adds entry to the bound ring. See [Enqueue].
func (p *Producer[T]) Enqueue(entry T) bool {
	return Enqueue(p.r, p.buf, entry)
}

// EnqueueWithSize is [Producer.Enqueue] plus a pre-insertion length
// snapshot. See [EnqueueWithSize].
func (p *Producer[T]) EnqueueWithSize(entry T) (ok bool, size int) {
	return EnqueueWithSize(p.r, p.buf, entry)
}

// SPSCConsumer is a single-consumer handle for an SPSC ring. Like
// [Producer], it is not meant to be duplicated; construct one with
// [NewSPSCConsumer] and keep it in the one goroutine that dequeues.
type SPSCConsumer[T Entry] struct {
	_   noCopy
	r   *Ring[T]
	buf Buffer[T]
}

// NewSPSCConsumer binds a single-consumer handle to r and buf.
func NewSPSCConsumer[T Entry](r *Ring[T], buf Buffer[T]) *SPSCConsumer[T] {
	return &SPSCConsumer[T]{r: r, buf: buf}
}

// Dequeue removes and returns an entry. See [DequeueSPSC].
func (c *SPSCConsumer[T]) Dequeue() (T, bool) {
	return DequeueSPSC(c.r, c.buf)
}

// SPMCConsumer is a multi-consumer handle for an SPMC ring. Unlike
// [Producer] and [SPSCConsumer], SPMCConsumer is freely copiable: it
// carries only a *Ring[T] and a Buffer[T] value, and the whole point of
// SPMC is that any number of goroutines hold one concurrently.
type SPMCConsumer[T Entry] struct {
	r   *Ring[T]
	buf Buffer[T]
}

// NewSPMCConsumer binds a multi-consumer handle to r and buf. Copy the
// returned value freely across as many consumer goroutines as needed.
func NewSPMCConsumer[T Entry](r *Ring[T], buf Buffer[T]) SPMCConsumer[T] {
	return SPMCConsumer[T]{r: r, buf: buf}
}

// Dequeue removes and returns an entry, retrying on contention against
// other consumers. See [DequeueSPMC].
func (c SPMCConsumer[T]) Dequeue() (T, bool) {
	return DequeueSPMC(c.r, c.buf)
}

// TryDequeue removes and returns an entry with a single CAS attempt. See
// [TryDequeueSPMC].
func (c SPMCConsumer[T]) TryDequeue() (T, bool) {
	return TryDequeueSPMC(c.r, c.buf)
}
