package database

// Config mixes credentials from the environment with tuning from the YAML file.
type Config struct {
	User     string `yaml:"-" env:"POSTGRES_USER,notEmpty"`
	Password string `yaml:"-" env:"POSTGRES_PASSWORD,notEmpty"`
	Host     string `yaml:"-" env:"POSTGRES_HOST,notEmpty"`
	Port     int    `yaml:"-" env:"POSTGRES_PORT,required"`
	Name     string `yaml:"-" env:"POSTGRES_NAME,notEmpty"`

	SSLMode           string `yaml:"ssl_mode"`
	MaxConns          int32  `yaml:"max_conns"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"`
}
