package worker

import (
	"context"
	"sync"
	"time"

	"livery-points/internal/service"

	"github.com/rs/zerolog"
)

// CatalogWorker periodically re-ingests the remote livery feed so the cache
// tracks upstream additions without a restart.
type CatalogWorker struct {
	service  service.CatalogService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewCatalogWorker(svc service.CatalogService, interval time.Duration, logger zerolog.Logger) *CatalogWorker {
	return &CatalogWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *CatalogWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Catalog refresh worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running catalog refresh")
				count, err := w.service.RefreshFromFeed(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to refresh catalog")
					continue
				}
				w.logger.Info().Int("processed", count).Msg("Catalog refresh completed")
			case <-w.stopChan:
				w.logger.Info().Msg("Catalog refresh worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Catalog refresh worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *CatalogWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
