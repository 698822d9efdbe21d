// Package workpool implements A5: a bounded, fixed-size worker pool used
// only by external collaborators (file download, checksum verification);
// the autonomous-agent core (controller/behavior/path/...) never submits
// work here. Grounded on the teacher's redstone.ChunkWorker command-channel
// actor, generalized from one worker per chunk to N workers draining one
// shared queue.
package workpool

import (
	"log/slog"
	"sync"
)

// Job is a unit of work submitted to the pool. It receives no context of
// its own; callers that need cancellation should close over a context in
// the closure they submit.
type Job func()

// Pool is a fixed-size set of goroutines consuming a bounded job channel.
type Pool struct {
	log   *slog.Logger
	jobs  chan Job
	wg    sync.WaitGroup
	once  sync.Once
	stopC chan struct{}
}

// New starts a Pool with workers goroutines draining a queue of the given
// capacity. A queue of 0 or less defaults to 64.
func New(workers, queueSize int, log *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}
	if log == nil {
		log = slog.Default()
	}
	p := &Pool{log: log, jobs: make(chan Job, queueSize), stopC: make(chan struct{})}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			job()
		case <-p.stopC:
			return
		}
	}
}

// Submit enqueues job for execution. If the queue is full, the job is
// dropped and a warning is logged rather than blocking the caller — per
// spec §7 point 5, a saturated pool degrades by shedding load, not by
// stalling whoever is submitting.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	default:
		p.log.Warn("workpool: queue full, dropping job")
	}
}

// Stop signals every worker to exit once its current job finishes and
// waits for them to drain. Jobs still sitting in the queue are abandoned.
func (p *Pool) Stop() {
	p.once.Do(func() {
		close(p.stopC)
	})
	p.wg.Wait()
}
