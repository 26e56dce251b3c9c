package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"mediahub"
	"mediahub/config"
	"mediahub/internal/application/usecase"
	"mediahub/internal/infrastructure/broker"
	"mediahub/internal/infrastructure/database"
	"mediahub/internal/infrastructure/minio"
	"mediahub/internal/presentation"
	"mediahub/internal/presentation/handler"
	"mediahub/internal/presentation/middleware"
	"mediahub/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running mediahub", "version", mediahub.StringVersion(), "environment", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStores(ctx, cfg)
	if err != nil {
		ExitOnError(err)
	}
	defer s.close()

	minIOUploader := minio.NewUploader(s.minio, &cfg.MinIOUploader)
	minIORemover := minio.NewRemover(s.minio, &cfg.MinIORemover)
	minIOStreamer := minio.NewStreamer(s.minio)
	minIOStater := minio.NewStater(s.minio, &cfg.MinIOStater)
	minIOLister := minio.NewLister(s.minio, &cfg.MinIOLister)

	dbWriter := database.NewMediaWriter(s.db)
	dbLister := database.NewMediaLister(s.db)
	dbRetriever := database.NewMediaRetriever(s.db)
	dbRemover := database.NewMediaRemover(s.db)

	uploader := usecase.NewUploader(s.events, s.cleanup, dbWriter, minIOUploader, minIORemover)
	lister := usecase.NewLister(dbLister)
	getter := usecase.NewGetter(dbRetriever, minIOStreamer, minIOStater)
	deleter := usecase.NewDeleter(s.events, s.cleanup, dbRetriever, dbRemover, minIORemover)

	var workers sync.WaitGroup

	if cfg.Sweeper.Enabled {
		sweeper := usecase.NewSweeper(minIOLister, minIORemover, dbRetriever,
			time.Duration(cfg.Sweeper.GraceInSeconds)*time.Second)

		workers.Add(1)
		go func() {
			defer workers.Done()
			sweeper.Run(ctx, time.Duration(cfg.Sweeper.IntervalInSeconds)*time.Second)
		}()
	}

	if s.cleanupClient != nil {
		cleaner := usecase.NewCleaner(broker.NewReceiver(s.cleanupClient, cfg.ReceiverConfig), dbRetriever,
			minIORemover, consumerName())

		workers.Add(1)
		go func() {
			defer workers.Done()
			if err := cleaner.Run(ctx); err != nil {
				logger.Error("cleaner exited", "err", err)
			}
		}()
	}

	e := newServer(cfg)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	idPath := "/:" + presentation.IDParam
	media := e.Group("/media")
	media.POST("", handler.NewUploadHandler(uploader).HandleUpload)
	media.GET("", handler.NewListHandler(lister).HandleList)
	media.GET(idPath, handler.NewGetHandler(getter).HandleGet)
	media.HEAD(idPath, handler.NewHeadHandler(getter).HandleHead)
	media.DELETE(idPath, handler.NewDeleteHandler(deleter).HandleDelete)

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownTimeout := time.Duration(cfg.HTTP.ShutdownTimeout) * time.Millisecond
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", "err", err)
	}

	workers.Wait()
}

func newServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{presentation.ReasonTag, echo.HeaderContentDisposition},
		MaxAge:        86400,
	}))
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(_ echo.Context, v echoMiddleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Warn("request", "method", v.Method, "uri", v.URI, "status", v.Status,
					"latency", v.Latency.String(), "remote_ip", v.RemoteIP, "err", v.Error)

				return nil
			}

			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status,
				"latency", v.Latency.String(), "remote_ip", v.RemoteIP)

			return nil
		},
	}))
	e.Use(middleware.Metrics())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())

	if cfg.HTTP.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(cfg.HTTP.BodyLimit))
	}

	if cfg.HTTP.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(
			rate.Limit(cfg.HTTP.RateLimit))))
	}

	return e
}

func consumerName() string {
	host, err := os.Hostname()
	if err != nil {
		host = "mediahub"
	}

	return fmt.Sprintf("%s-%d", host, os.Getpid())
}
