package minio

// ClientConfig is read from the environment.
type ClientConfig struct {
	Endpoint  string `yaml:"-" env:"MINIO_ENDPOINT,notEmpty"`
	Port      int    `yaml:"-" env:"MINIO_PORT,required"`
	UseSSL    bool   `yaml:"-" env:"MINIO_USE_SSL" envDefault:"false"`
	AccessKey string `yaml:"-" env:"MINIO_ACCESS_KEY,notEmpty"`
	SecretKey string `yaml:"-" env:"MINIO_SECRET_KEY,notEmpty"`
	Bucket    string `yaml:"-" env:"MINIO_BUCKET,notEmpty"`
}

type UploaderConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type StaterConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type ListerConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
