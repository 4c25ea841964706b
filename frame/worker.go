package frame

import (
	"context"

	"golang.org/x/sync/semaphore"
)

type jobKind int

const (
	rowJob jobKind = iota
	frameBarrier
	shutdown
)

type job struct {
	kind jobKind
	row  int
}

// Pool owns N render-worker goroutines that draw disjoint grid rows into
// the same shared buffer within one frame. Safety rests on disjoint row
// ownership — no two rows share a pixel scanline, since each row is
// cell_height pixels tall — so the pixel buffer itself is never locked;
// only the job queue needs synchronizing, and a channel does that.
//
// start/done stand in for the two POSIX counting semaphores of spec.md
// §4.E/§5: start wakes every worker once at the beginning of a frame;
// done is posted by a worker once it has drained its share of that
// frame's queue, and Dispatch waits for all N before returning.
type Pool struct {
	n     int
	queue chan job
	start *semaphore.Weighted
	done  *semaphore.Weighted

	renderRow func(row int)
}

// NewPool starts n render-worker goroutines. Call Stop to tear them down.
func NewPool(n int) *Pool {
	p := &Pool{
		n:     n,
		queue: make(chan job, n*2),
		start: semaphore.NewWeighted(int64(n)),
		done:  semaphore.NewWeighted(int64(n)),
	}

	// A freshly constructed Weighted semaphore starts with its full
	// weight available to Acquire, the opposite of POSIX sem_init(...,
	// 0). Consume it immediately so the first Release is what actually
	// wakes a worker, matching the C core's semaphores.
	ctx := context.Background()
	p.start.Acquire(ctx, int64(n))
	p.done.Acquire(ctx, int64(n))

	for i := 0; i < n; i++ {
		go p.workerLoop()
	}
	return p
}

// N reports the worker count.
func (p *Pool) N() int { return p.n }

func (p *Pool) workerLoop() {
	ctx := context.Background()
	for {
		if err := p.start.Acquire(ctx, 1); err != nil {
			return
		}

	drain:
		for {
			j := <-p.queue
			switch j.kind {
			case rowJob:
				p.renderRow(j.row)
			case frameBarrier:
				p.done.Release(1)
				break drain
			case shutdown:
				return
			}
		}
	}
}

// Dispatch pushes rows (in order), followed by one barrier job per
// worker, wakes every worker for this frame, and blocks until all N have
// posted done — the worker barrier of spec.md §4.D step 6. renderRow is
// called from worker goroutines; it must not be called again (by the
// orchestrator or otherwise) for a row already in rows until Dispatch
// returns.
func (p *Pool) Dispatch(rows []int, renderRow func(row int)) {
	if len(rows) == 0 {
		return
	}

	p.renderRow = renderRow
	p.start.Release(int64(p.n))

	for _, r := range rows {
		p.queue <- job{kind: rowJob, row: r}
	}
	for i := 0; i < p.n; i++ {
		p.queue <- job{kind: frameBarrier}
	}

	p.done.Acquire(context.Background(), int64(p.n))
}

// Stop wakes every worker and tells it to exit, matching spec.md §5's
// teardown broadcast of -2. Callers must not call Dispatch concurrently
// with Stop, and should only call Stop between frames.
func (p *Pool) Stop() {
	p.start.Release(int64(p.n))
	for i := 0; i < p.n; i++ {
		p.queue <- job{kind: shutdown}
	}
}
