package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env       string
	HTTPAddr  string
	PublicURL string
	JWTKey    string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Database DatabaseConfig
	Redis    RedisConfig
	Upload   UploadConfig
	Tracing  TracingConfig
}

type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	ConnectRetries int
	RetryDelay     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
}

type UploadConfig struct {
	Backend  string
	Dir      string
	S3Bucket string
	S3Region string
}

type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

const (
	UploadBackendLocal = "local"
	UploadBackendS3    = "s3"
)

// Load reads configuration from the environment. Secrets have no fallback value.
func Load() *Config {
	return &Config{
		Env:       getEnv("ENV", "development"),
		HTTPAddr:  normalizeAddr(getEnv("HTTP_ADDR", ":4000")),
		PublicURL: getEnv("PUBLIC_URL", ""),
		JWTKey:    getEnv("JWT_KEY", ""),

		ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),

		Database: DatabaseConfig{
			Host:           getEnv("DATABASE_HOST", "localhost"),
			Port:           getEnv("DATABASE_PORT", "5432"),
			User:           getEnv("DATABASE_USER", "postgres"),
			Password:       getEnv("DATABASE_PASSWORD", ""),
			Name:           getEnv("DATABASE_NAME", "placehub"),
			SSLMode:        getEnv("DATABASE_SSL_MODE", "disable"),
			ConnectRetries: getEnvInt("DATABASE_CONNECT_RETRIES", 10),
			RetryDelay:     getEnvDuration("DATABASE_RETRY_DELAY", 3*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Upload: UploadConfig{
			Backend:  getEnv("UPLOAD_BACKEND", UploadBackendLocal),
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			S3Bucket: getEnv("S3_BUCKET", ""),
			S3Region: getEnv("AWS_REGION", "us-east-1"),
		},
		Tracing: TracingConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "placehub"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.IsProduction() {
		if c.Database.Password == "" {
			errs = append(errs, errors.New("DATABASE_PASSWORD is required in production"))
		}
		if c.JWTKey == "" {
			errs = append(errs, errors.New("JWT_KEY is required in production"))
		}
	}
	switch c.Upload.Backend {
	case UploadBackendLocal:
		if c.Upload.Dir == "" {
			errs = append(errs, errors.New("UPLOAD_DIR is required for the local upload backend"))
		}
	case UploadBackendS3:
		if c.Upload.S3Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 upload backend"))
		}
	default:
		errs = append(errs, errors.New("UPLOAD_BACKEND must be local or s3"))
	}
	if c.Database.ConnectRetries < 1 {
		errs = append(errs, errors.New("DATABASE_CONNECT_RETRIES must be at least 1"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func normalizeAddr(addr string) string {
	if addr == "" {
		return addr
	}

	if addr[0] == ':' || addr[0] == '[' {
		return addr
	}

	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}

	return ":" + addr
}
