package guinness

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolBlocksWhenFull(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	p := newWorkerPool("click", 2, m.inFlight("click"))

	release := make(chan struct{})
	started := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		p.Submit(func() {
			started <- struct{}{}
			<-release
		})
	}
	<-started
	<-started
	assert.Equal(t, 2, p.Running())
	assert.Equal(t, float64(2), testutil.ToFloat64(m.InFlight.WithLabelValues("click")))

	var third atomic.Bool
	submitted := make(chan struct{})
	go func() {
		p.Submit(func() { third.Store(true) })
		close(submitted)
	}()

	select {
	case <-submitted:
		t.Fatal("Submit returned while the pool was full")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	select {
	case <-submitted:
	case <-time.After(time.Second):
		t.Fatal("Submit did not return after a slot was freed")
	}
	p.Wait()

	assert.True(t, third.Load())
	assert.Zero(t, p.Running())
	assert.Zero(t, testutil.ToFloat64(m.InFlight.WithLabelValues("click")))
}

func TestWorkerPoolDefaultsSize(t *testing.T) {
	p := newWorkerPool("hover", 0, nil)

	var n atomic.Int32
	for i := 0; i < 5; i++ {
		p.Submit(func() { n.Add(1) })
	}
	p.Wait()
	require.Equal(t, int32(5), n.Load())
}
