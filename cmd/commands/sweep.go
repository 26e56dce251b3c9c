package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediahub/config"
	"mediahub/internal/application/usecase"
	"mediahub/internal/infrastructure/database"
	"mediahub/internal/infrastructure/minio"
	"mediahub/pkg/logger"
)

// HandleSweep runs a single orphan sweep and exits.
func HandleSweep(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	if cfg.Sweeper.GraceInSeconds <= 0 {
		ExitOnError(errors.New("sweeper.grace_in_seconds must be positive"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStores(ctx, cfg)
	if err != nil {
		ExitOnError(err)
	}
	defer s.close()

	sweeper := usecase.NewSweeper(
		minio.NewLister(s.minio, &cfg.MinIOLister),
		minio.NewRemover(s.minio, &cfg.MinIORemover),
		database.NewMediaRetriever(s.db),
		time.Duration(cfg.Sweeper.GraceInSeconds)*time.Second,
	)

	report, err := sweeper.Sweep(ctx)
	if err != nil {
		s.close()
		ExitOnError(err)
	}

	logger.Info("sweep finished", "scanned", report.Scanned, "orphans", report.Orphans,
		"removed", report.Removed, "failed", report.Failed)
}
