package lattice

import (
	"sync"
	"sync/atomic"
)

// Pool is a type-safe wrapper around sync.Pool specialized for *Lattice
// reuse across concurrent analyses. Each analysis allocates its backing
// arrays once and amortizes them across Reset calls (see the package doc
// comment); Pool amortizes the *Lattice allocation itself across
// unrelated sentences handled by a worker pool.
//
// It tracks allocation and live-use counters for diagnostics; these carry
// no behavioral weight and can be read at any time without synchronizing
// with Get/Put.
type Pool struct {
	sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// NewPool returns a ready-to-use Pool of *Lattice instances.
func NewPool() *Pool {
	p := &Pool{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		return New()
	}
	return p
}

// Get retrieves a *Lattice from the pool, or constructs one if the pool is
// empty. If p is nil, Get constructs a fresh, untracked *Lattice.
func (p *Pool) Get() *Lattice {
	if p == nil {
		return New()
	}
	p.currentLive.Add(1)
	return p.Pool.Get().(*Lattice)
}

// Put returns l to the pool for reuse by a future analysis. The lattice's
// inner arrays retain their capacity; only size/eos bookkeeping is left for
// the next Reset to clear. The whitespace-bridge setting is not cleared by
// Reset and carries over to the next Get. If p is nil, l is discarded.
//
// Put does not call Reset: the next caller to Get this lattice must call
// Reset before inserting anything, exactly as a freshly constructed
// lattice requires.
func (p *Pool) Put(l *Lattice) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	p.Pool.Put(l)
}

// Stats returns the number of currently live (checked-out) lattices and
// the total number ever allocated by this pool.
func (p *Pool) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
