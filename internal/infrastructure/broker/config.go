package broker

// Config describes the Redis streams used for lifecycle events and blob
// cleanup. An empty URI disables both.
type Config struct {
	URI           string `yaml:"-" env:"BROKER_URI"`
	EventsStream  string `yaml:"events_stream"`
	CleanupStream string `yaml:"cleanup_stream"`
	GroupName     string `yaml:"group_name"`
}

func (c Config) Enabled() bool {
	return c.URI != ""
}

type PublisherConfig struct {
	Timeout int   `yaml:"timeout_in_ms"`
	MaxLen  int64 `yaml:"max_len"`
}

type ReceiverConfig struct {
	BlockInMs         int   `yaml:"block_in_ms"`
	BatchSize         int64 `yaml:"batch_size"`
	RetryIntervalInMs int   `yaml:"retry_interval_in_ms"`
}
