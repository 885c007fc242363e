// Package config loads the service configuration from an optional YAML file,
// an optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds a single API request. It has to exceed the
		// simulated session and onboarding latencies.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the presentation layer origins allowed by CORS.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:3000" yaml:"allowedOrigins"` //nolint: lll
		// EnablePprof mounts the profiler under /debug/pprof.
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"govconnect" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	LocalStore struct {
		// Path of the SQLite file holding the durable session record.
		Path string `env:"LOCAL_STORE_PATH" env-default:"govconnect-local.db" yaml:"path"`
	} `yaml:"localStore"`

	Session struct {
		// Latency is the simulated round trip of login and signup.
		Latency time.Duration `env:"SESSION_LATENCY" env-default:"1s" yaml:"latency"`
		// TokenSecret signs the HS256 bearer tokens handed out on login. It has no
		// default; serve and token refuse to start with less than 32 bytes.
		TokenSecret string `env:"SESSION_TOKEN_SECRET" yaml:"tokenSecret"`
		// TokenTTL is the lifetime of issued bearer tokens.
		TokenTTL time.Duration `env:"SESSION_TOKEN_TTL" env-default:"24h" yaml:"tokenTTL"`
	} `yaml:"session"`

	Onboarding struct {
		// CommitLatency is waited before the finished profile is committed.
		CommitLatency time.Duration `env:"ONBOARDING_COMMIT_LATENCY" env-default:"1s" yaml:"commitLatency"`
		// StrictIndustryCodes rejects custom codes that are not 2-6 digits.
		StrictIndustryCodes bool `env:"ONBOARDING_STRICT_INDUSTRY_CODES" env-default:"true" yaml:"strictIndustryCodes"`
	} `yaml:"onboarding"`

	Worker struct {
		// MaxWorkers is the concurrency of the tender matching queue.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
		// MatchMaxAttempts bounds retries of a failing matching job.
		MatchMaxAttempts int `env:"WORKER_MATCH_MAX_ATTEMPTS" env-default:"5" yaml:"matchMaxAttempts"`
		// JobTimeout bounds a single matching run.
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"1m" yaml:"jobTimeout"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load fills a Config from, in increasing priority: defaults, the YAML file at
// configPath (skipped when it does not exist) and the environment. Variables
// from a .env file in the working directory are exported first.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
