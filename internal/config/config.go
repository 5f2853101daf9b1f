package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Minio    MinioConfig
	Upload   UploadConfig
	Transfer TransferConfig
	NATS     NATSConfig
	Database DatabaseConfig
	Server   ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type MinioConfig struct {
	Endpoint                  string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName                string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey                 string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey                 string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	PartPresignedDuration     time.Duration `envconfig:"MINIO_PART_PRESIGNED_DURATION" default:"60m"`
	DownloadSignedURLDuration time.Duration `envconfig:"MINIO_DOWNLOAD_SIGNED_URL_DURATION" default:"15m"`
	UseSSL                    bool          `envconfig:"MINIO_USE_SSL" default:"false"`
}

type UploadConfig struct {
	MaxFileSize         int64    `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"5368709120"`  // 5GB
	DefaultChunkSize    int64    `envconfig:"UPLOAD_DEFAULT_CHUNK_SIZE" default:"8388608"` // 8MB
	MinChunkSize        int64    `envconfig:"UPLOAD_MIN_CHUNK_SIZE" default:"5242880"`    // 5MB store floor
	MaxChunkSize        int64    `envconfig:"UPLOAD_MAX_CHUNK_SIZE" default:"5368709120"` // 5GB store ceiling
	MaxPresignBatch     int      `envconfig:"UPLOAD_MAX_PRESIGN_BATCH" default:"100"`
	AllowedContentTypes []string `envconfig:"UPLOAD_ALLOWED_CONTENT_TYPES" default:"video/,audio/,image/"`
}

type TransferConfig struct {
	StagingDir    string `envconfig:"TRANSFER_STAGING_DIR" default:"/var/lib/chunkstream/staging"`
	Workers       int    `envconfig:"TRANSFER_WORKERS" default:"4"`
	QueueCapacity int    `envconfig:"TRANSFER_QUEUE_CAPACITY" default:"64"`
}

type NATSConfig struct {
	URL        string `envconfig:"NATS_URL" required:"true"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"CHUNKSTREAM"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"chunkstream.upload.completed"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"chunkstream-api"`
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

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
