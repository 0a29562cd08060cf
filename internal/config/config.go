// Package config loads the application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Dictionary source kinds.
const (
	DictionarySourceEmbedded = "embedded"
	DictionarySourceFile     = "file"
	DictionarySourceHTTP     = "http"
	DictionarySourcePostgres = "postgres"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// PublicURL is the base of generated share links.
		PublicURL string `env:"HTTP_PUBLIC_URL" env-default:"http://localhost:8080/" yaml:"publicURL"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"weaver" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis backs the path cache. An empty Addr disables caching.
	Redis struct {
		Addr     string `env:"REDIS_ADDR" yaml:"addr"`
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		DB       int    `env:"REDIS_DB" env-default:"0" yaml:"db"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
	} `yaml:"redis"`

	// JWT holds the RS256 key pair. The private key is only needed by the jwt command.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Dictionary selects where the word list comes from.
	Dictionary struct {
		// Source is one of embedded, file, http or postgres.
		Source string `env:"DICTIONARY_SOURCE" env-default:"embedded" yaml:"source"`
		// Path is read by the file source.
		Path string `env:"DICTIONARY_PATH" yaml:"path"`
		// URL is fetched by the http source.
		URL string `env:"DICTIONARY_URL" yaml:"url"`
		// WordLength is the fixed length of every word.
		WordLength int `env:"DICTIONARY_WORD_LENGTH" env-default:"4" yaml:"wordLength"`
	} `yaml:"dictionary"`

	// Solver controls search limits and background processing.
	Solver struct {
		// MaxExpansions caps dequeued words per search; 0 means unlimited.
		MaxExpansions int `env:"SOLVER_MAX_EXPANSIONS" env-default:"0" yaml:"maxExpansions"`
		// SolveTimeout bounds a single search.
		SolveTimeout time.Duration `env:"SOLVER_SOLVE_TIMEOUT" env-default:"5s" yaml:"solveTimeout"`
		// MaxAttempts is how often the worker retries a ladder before failing it.
		MaxAttempts int `env:"SOLVER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// ResultCacheTTL is how long solutions are reused, both in redis and for queued ladders.
		ResultCacheTTL time.Duration `env:"SOLVER_RESULT_CACHE_TTL" env-default:"24h" yaml:"resultCacheTTL"`
		// MaxWorkers is the River default queue concurrency.
		MaxWorkers int `env:"SOLVER_MAX_WORKERS" env-default:"100" yaml:"maxWorkers"`
		// MaxConcurrentSolves bounds searches running at the same time in the worker.
		MaxConcurrentSolves int64 `env:"SOLVER_MAX_CONCURRENT_SOLVES" env-default:"8" yaml:"maxConcurrentSolves"`
	} `yaml:"solver"`

	// Sentiment configures the word sentiment provider.
	Sentiment struct {
		Endpoint      string        `env:"SENTIMENT_ENDPOINT" yaml:"endpoint"`
		Model         string        `env:"SENTIMENT_MODEL" yaml:"model"`
		Token         string        `env:"HF_TOKEN" yaml:"token"`
		RatePerSecond float64       `env:"SENTIMENT_RATE_PER_SECOND" env-default:"5" yaml:"ratePerSecond"`
		Burst         int           `env:"SENTIMENT_BURST" env-default:"5" yaml:"burst"`
		Timeout       time.Duration `env:"SENTIMENT_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"sentiment"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that have no safe fallback.
func (c *Config) Validate() error {
	if c.Dictionary.WordLength < 1 {
		return fmt.Errorf("dictionary word length must be positive, got %d", c.Dictionary.WordLength)
	}

	switch c.Dictionary.Source {
	case DictionarySourceEmbedded, DictionarySourcePostgres:
	case DictionarySourceFile:
		if c.Dictionary.Path == "" {
			return fmt.Errorf("dictionary source %q needs a path", c.Dictionary.Source)
		}
	case DictionarySourceHTTP:
		if c.Dictionary.URL == "" {
			return fmt.Errorf("dictionary source %q needs a url", c.Dictionary.Source)
		}
	default:
		return fmt.Errorf("unknown dictionary source %q", c.Dictionary.Source)
	}

	if c.Solver.MaxExpansions < 0 {
		return fmt.Errorf("solver max expansions cannot be negative, got %d", c.Solver.MaxExpansions)
	}
	if c.Solver.MaxConcurrentSolves < 1 {
		return fmt.Errorf("solver max concurrent solves must be positive, got %d", c.Solver.MaxConcurrentSolves)
	}

	return nil
}
