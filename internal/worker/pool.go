package worker

import (
	"context"
	"errors"
	"sync"

	"livery-points/internal/playfab"
	"livery-points/internal/service"

	"github.com/rs/zerolog"
)

// ErrPoolStopped is returned for jobs still queued when the pool shuts down.
var ErrPoolStopped = errors.New("injection pool stopped")

// InjectionPool bounds the number of concurrent external injection calls. Calls
// beyond the pool size queue; the submitting goroutine blocks until its job
// resolves, so the saga's contract (return only after the external phase settles)
// is preserved while slow calls cannot starve the rest of the process.
type InjectionPool struct {
	client  service.Injector
	jobs    chan *injectionJob
	size    int
	logger  zerolog.Logger
	wg      sync.WaitGroup
	stopped chan struct{}
}

type injectionJob struct {
	ctx        context.Context
	itemID     string
	credential string
	done       chan injectionResult
}

type injectionResult struct {
	outcome *playfab.Outcome
	err     error
}

var _ service.Injector = (*InjectionPool)(nil)

func NewInjectionPool(client service.Injector, size int, logger zerolog.Logger) *InjectionPool {
	return &InjectionPool{
		client:  client,
		jobs:    make(chan *injectionJob),
		size:    size,
		logger:  logger,
		stopped: make(chan struct{}),
	}
}

func (p *InjectionPool) Start() {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.logger.Info().Int("workers", p.size).Msg("Injection pool started")
}

func (p *InjectionPool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			outcome, err := p.client.Inject(job.ctx, job.itemID, job.credential)
			job.done <- injectionResult{outcome: outcome, err: err}
		case <-p.stopped:
			p.logger.Debug().Int("worker", id).Msg("injection worker stopping")
			return
		}
	}
}

// Inject queues the call and blocks until a worker resolves it. The error return
// is non-nil only when the job was never dispatched: the caller's context ended
// while queued, or the pool was stopped.
func (p *InjectionPool) Inject(ctx context.Context, itemID, credential string) (*playfab.Outcome, error) {
	job := &injectionJob{
		ctx:        ctx,
		itemID:     itemID,
		credential: credential,
		done:       make(chan injectionResult, 1),
	}

	select {
	case p.jobs <- job:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.stopped:
		return nil, ErrPoolStopped
	}

	// Once dispatched, wait for the worker; the per-phase timeout inside the
	// client bounds how long that can take.
	result := <-job.done
	return result.outcome, result.err
}

func (p *InjectionPool) Stop() {
	close(p.stopped)
	p.wg.Wait()
}
