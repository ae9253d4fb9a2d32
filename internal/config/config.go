package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Upload   UploadConfig
	NATS     NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	// PublicBaseURL prefixes download URLs handed to clients, e.g.
	// "https://updates.example.com". Empty means relative URLs.
	PublicBaseURL string `envconfig:"SERVER_PUBLIC_BASE_URL" default:""`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

type StorageConfig struct {
	// Backend selects the blob store implementation: "disk" or "minio".
	Backend string `envconfig:"STORAGE_BACKEND" default:"disk"`
	Dir     string `envconfig:"STORAGE_DIR" default:"./data"`
	Minio   MinioConfig
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type UploadConfig struct {
	AllowedExtensions []string      `envconfig:"UPLOAD_ALLOWED_EXTENSIONS" default:".exe"`
	MaxFileSize       int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"5368709120"` // 5GB
	MaxChunkSize      int64         `envconfig:"UPLOAD_MAX_CHUNK_SIZE" default:"67108864"`  // 64MB
	SessionTTL        time.Duration `envconfig:"UPLOAD_SESSION_TTL" default:"24h"`
	CleanupEvery      time.Duration `envconfig:"UPLOAD_CLEANUP_EVERY" default:"1h"`
}

type NATSConfig struct {
	// URL is optional; empty disables release event publishing.
	URL        string `envconfig:"NATS_URL" default:""`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"RELEASES"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"release.published"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"update-depot"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
