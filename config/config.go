package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mediahub/internal/infrastructure/broker"
	"mediahub/internal/infrastructure/database"
	"mediahub/internal/infrastructure/minio"
	"mediahub/pkg/logger"
)

// Config represents the configs used by services on system. Credentials and
// endpoints come from the environment; everything else from the YAML file.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTP            HTTPConfig             `yaml:"http"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	MinIOStater     minio.StaterConfig     `yaml:"minio_stater"`
	MinIOLister     minio.ListerConfig     `yaml:"minio_lister"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	ReceiverConfig  broker.ReceiverConfig  `yaml:"receiver_config"`
	Sweeper         SweeperConfig          `yaml:"sweeper"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPConfig struct {
	Address         string `yaml:"address"`
	BodyLimit       string `yaml:"body_limit"`
	RateLimit       int    `yaml:"rate_limit_per_second"`
	ShutdownTimeout int64  `yaml:"shutdown_timeout_in_ms"`
}

type SweeperConfig struct {
	Enabled           bool  `yaml:"enabled"`
	IntervalInSeconds int64 `yaml:"interval_in_seconds"`
	GraceInSeconds    int64 `yaml:"grace_in_seconds"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the values the YAML file must provide.
func (c *Config) basicCheck() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address is required")
	}

	timeouts := map[string]int64{
		"minio_uploader.timeout_in_ms":       c.MinIOUploader.Timeout,
		"minio_remover.timeout_in_ms":        c.MinIORemover.Timeout,
		"minio_stater.timeout_in_ms":         c.MinIOStater.Timeout,
		"minio_lister.timeout_in_ms":         c.MinIOLister.Timeout,
		"db_config.connection_timeout_in_ms": c.DBConfig.ConnectionTimeout,
		"db_config.query_timeout_in_ms":      c.DBConfig.QueryTimeout,
	}
	for name, v := range timeouts {
		if v <= 0 {
			return errors.New(name + " must be positive")
		}
	}

	if c.BrokerConfig.Enabled() {
		if c.BrokerConfig.EventsStream == "" || c.BrokerConfig.CleanupStream == "" || c.BrokerConfig.GroupName == "" {
			return errors.New("redis_broker_config needs events_stream, cleanup_stream and group_name")
		}
		if c.PublisherConfig.Timeout <= 0 {
			return errors.New("publisher_config.timeout_in_ms must be positive")
		}
	}

	if c.Sweeper.Enabled && (c.Sweeper.IntervalInSeconds <= 0 || c.Sweeper.GraceInSeconds <= 0) {
		return errors.New("sweeper interval and grace must be positive when enabled")
	}

	return nil
}
