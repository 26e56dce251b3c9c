package commands

import (
	"context"

	"github.com/redis/go-redis/v9"

	"mediahub/config"
	brokerRepository "mediahub/internal/domain/repository/broker"
	"mediahub/internal/infrastructure/broker"
	"mediahub/internal/infrastructure/database"
	"mediahub/internal/infrastructure/minio"
	"mediahub/pkg/logger"
)

// stores holds the long-lived handles shared by every request and worker.
type stores struct {
	minio *minio.Client
	db    *database.Database
	redis *redis.Client

	events  brokerRepository.Publisher
	cleanup brokerRepository.Publisher
	// nil when no broker is configured
	cleanupClient *broker.Client
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		return nil, err
	}

	if err := minIOClient.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Stop()

		return nil, err
	}

	s := &stores{
		minio:   minIOClient,
		db:      db,
		events:  broker.NopPublisher{},
		cleanup: broker.NopPublisher{},
	}

	if !cfg.BrokerConfig.Enabled() {
		logger.Warn("no broker configured, lifecycle events and the cleanup queue are disabled")

		return s, nil
	}

	rdb, err := broker.Dial(ctx, cfg.BrokerConfig.URI)
	if err != nil {
		db.Stop()

		return nil, err
	}
	s.redis = rdb

	eventsClient, err := broker.NewClient(ctx, rdb, cfg.BrokerConfig.EventsStream, cfg.BrokerConfig.GroupName)
	if err != nil {
		s.close()

		return nil, err
	}

	cleanupClient, err := broker.NewClient(ctx, rdb, cfg.BrokerConfig.CleanupStream, cfg.BrokerConfig.GroupName)
	if err != nil {
		s.close()

		return nil, err
	}

	s.events = broker.NewPublisher(eventsClient, cfg.PublisherConfig)
	s.cleanup = broker.NewPublisher(cleanupClient, cfg.PublisherConfig)
	s.cleanupClient = cleanupClient

	return s, nil
}

func (s *stores) close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			logger.Error("failed to close broker connection", "err", err)
		}
	}

	s.db.Stop()
}
