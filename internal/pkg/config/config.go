package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, intervals, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Stream   StreamConfig
	Recovery RecoveryConfig
	Push     PushConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// StreamConfig tunes the websocket broadcast path.
type StreamConfig struct {
	HeartbeatInterval time.Duration `envconfig:"WS_HEARTBEAT_INTERVAL" default:"30s"`
	WriteTimeout      time.Duration `envconfig:"WS_WRITE_TIMEOUT" default:"10s"`
	SendBufferSize    int           `envconfig:"WS_SEND_BUFFER_SIZE" default:"16"`
}

type RecoveryConfig struct {
	Enabled             bool          `envconfig:"CART_RECOVERY_ENABLED" default:"true"`
	InactivityThreshold time.Duration `envconfig:"CART_RECOVERY_DELAY" default:"1h"`
	TokenTTL            time.Duration `envconfig:"CART_RECOVERY_TOKEN_TTL" default:"168h"`
}

// PushConfig carries web-push credentials. Only presence matters here;
// the actual push delivery is an external sender.
type PushConfig struct {
	VAPIDPublicKey  string `envconfig:"VAPID_PUBLIC_KEY" default:""`
	VAPIDPrivateKey string `envconfig:"VAPID_PRIVATE_KEY" default:""`
}

func (p PushConfig) Configured() bool {
	return p.VAPIDPublicKey != "" && p.VAPIDPrivateKey != ""
}

type NotifyConfig struct {
	PollInterval    time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"1s"`
	MaxAttempts     int           `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
	BatchSize       int           `envconfig:"NOTIFY_BATCH_SIZE" default:"100"`
	RetryBackoff    time.Duration `envconfig:"NOTIFY_RETRY_BACKOFF" default:"2s"`
	MaxRetryBackoff time.Duration `envconfig:"NOTIFY_MAX_RETRY_BACKOFF" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// Local development reads .env; missing file is not an error.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Stream: StreamConfig{
			HeartbeatInterval: 30 * time.Second,
			WriteTimeout:      10 * time.Second,
			SendBufferSize:    16,
		},
		Recovery: RecoveryConfig{
			Enabled:             true,
			InactivityThreshold: time.Hour,
			TokenTTL:            168 * time.Hour,
		},
		Notify: NotifyConfig{
			PollInterval:    50 * time.Millisecond,
			MaxAttempts:     3,
			BatchSize:       10,
			RetryBackoff:    50 * time.Millisecond,
			MaxRetryBackoff: 200 * time.Millisecond,
		},
	}
}
