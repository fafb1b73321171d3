package guinness

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// DefaultPoolSize is the capacity of each callback pool.
const DefaultPoolSize = 2

// workerPool runs callbacks on at most size goroutines. Submit blocks while
// the pool is full; nothing is dropped or queued.
type workerPool struct {
	name     string
	group    errgroup.Group
	running  atomic.Int64
	inFlight prometheus.Gauge
}

func newWorkerPool(name string, size int, inFlight prometheus.Gauge) *workerPool {
	if size < 1 {
		size = DefaultPoolSize
	}
	p := &workerPool{name: name, inFlight: inFlight}
	p.group.SetLimit(size)
	return p
}

// Submit runs fn on a pool goroutine, waiting for a free slot first.
func (p *workerPool) Submit(fn func()) {
	p.group.Go(func() error {
		p.running.Add(1)
		if p.inFlight != nil {
			p.inFlight.Inc()
		}
		defer func() {
			if p.inFlight != nil {
				p.inFlight.Dec()
			}
			p.running.Add(-1)
		}()
		fn()
		return nil
	})
}

// Running returns the number of callbacks in flight.
func (p *workerPool) Running() int {
	return int(p.running.Load())
}

// Wait blocks until every submitted callback has returned.
// It must not race with Submit.
func (p *workerPool) Wait() {
	_ = p.group.Wait()
}
