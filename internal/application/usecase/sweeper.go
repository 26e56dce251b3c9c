package usecase

import (
	"context"
	"fmt"
	"time"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/repository/database"
	"mediahub/internal/domain/repository/minio"
	"mediahub/internal/infrastructure/metrics"
	"mediahub/pkg/logger"
)

const sweepBatchSize = 500

// Sweeper removes blobs that no record references. Only blobs older than the
// grace period are considered, so an upload whose record is still being
// written is never touched.
type Sweeper struct {
	lister       minio.Lister
	minioRemover minio.Remover
	retriever    database.Retriever
	grace        time.Duration
	now          func() time.Time
}

func NewSweeper(lister minio.Lister, minioRemover minio.Remover, retriever database.Retriever,
	grace time.Duration,
) *Sweeper {
	return &Sweeper{
		lister:       lister,
		minioRemover: minioRemover,
		retriever:    retriever,
		grace:        grace,
		now:          time.Now,
	}
}

func (s *Sweeper) Sweep(ctx context.Context) (entity.SweepReport, error) {
	var report entity.SweepReport

	objects, err := s.lister.ListObjects(ctx, s.now().Add(-s.grace))
	if err != nil {
		return report, fmt.Errorf("list objects: %w", err)
	}
	report.Scanned = len(objects)

	for start := 0; start < len(objects); start += sweepBatchSize {
		end := min(start+sweepBatchSize, len(objects))

		keys := make([]string, 0, end-start)
		for _, o := range objects[start:end] {
			keys = append(keys, o.Key)
		}

		referenced, err := s.retriever.ExistingObjectKeys(ctx, keys)
		if err != nil {
			return report, fmt.Errorf("check object references: %w", err)
		}

		for _, key := range keys {
			if _, ok := referenced[key]; ok {
				continue
			}

			report.Orphans++
			if err := s.minioRemover.Remove(ctx, key); err != nil {
				report.Failed++
				logger.Error("failed to remove orphaned blob", "key", key, "err", err)

				continue
			}

			report.Removed++
			metrics.OrphansRemovedTotal.Inc()
		}
	}

	return report, nil
}

// Run sweeps every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("sweeper stopped")

			return
		case <-ticker.C:
			report, err := s.Sweep(ctx)
			if err != nil {
				logger.Error("sweep failed", "err", err)

				continue
			}

			logger.Info("sweep finished", "scanned", report.Scanned, "orphans", report.Orphans,
				"removed", report.Removed, "failed", report.Failed)
		}
	}
}
