package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix — префикс переменных окружения (HOLIDAY_HTTP_ADDR и т.д.).
const DefaultPrefix = "HOLIDAY"

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s"   envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"35s"   envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s"    envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s"   envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"30s"   envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s"    envconfig:"GRACEFUL_TIMEOUT"`
	StaticDir         string        `envconfig:"STATIC_DIR"`
}

// Metrics — пустой Addr: /metrics отдаётся только основным HTTP-сервером.
type Metrics struct {
	Addr string `envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false"        envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"holidays-api" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318"  envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1"            envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Cache struct {
	TTL           time.Duration `default:"720h" envconfig:"TTL"`
	SweepInterval time.Duration `default:"5m"   envconfig:"SWEEP_INTERVAL"`
}

// External — клиент holidayapi.com.
type External struct {
	BaseURL    string        `default:"https://holidayapi.com/v1/holidays" envconfig:"BASE_URL"`
	Timeout    time.Duration `default:"5s"  envconfig:"TIMEOUT"`
	MaxRetries int           `default:"3"   envconfig:"MAX_RETRIES"`
	BaseDelay  time.Duration `default:"1s"  envconfig:"BASE_DELAY"`
	MaxDelay   time.Duration `default:"8s"  envconfig:"MAX_DELAY"`
	RateLimit  float64       `default:"10"  envconfig:"RATE_LIMIT"`
	RateBurst  int           `default:"10"  envconfig:"RATE_BURST"`
}

// WarmUp — прогрев кэша по расписанию cron.
type WarmUp struct {
	Enabled    bool          `default:"false"     envconfig:"ENABLED"`
	Schedule   string        `default:"0 3 * * *" envconfig:"SCHEDULE"`
	Countries  []string      `default:"US,GB,IN"  envconfig:"COUNTRIES"`
	Timeout    time.Duration `default:"2m"        envconfig:"TIMEOUT"`
	RunOnStart bool          `default:"false"     envconfig:"RUN_ON_START"`
}

type Config struct {
	// Source — file | mock | api.
	Source           string `default:"file"                 envconfig:"SOURCE"`
	DataFile         string `default:"./data/holidays.json" envconfig:"DATA_FILE"`
	APIKey           string `default:"demo"                 envconfig:"API_KEY"`
	WorkHolidaysFile string `envconfig:"WORK_HOLIDAYS_FILE"`

	HTTP     HTTP
	Metrics  Metrics
	Tracing  Tracing
	Logger   Logger
	Cache    Cache
	External External
	WarmUp   WarmUp `envconfig:"WARMUP"`
}

// Load — конфигурация из окружения с префиксом HOLIDAY.
func Load() (*Config, error) { return LoadWithPrefix(DefaultPrefix) }

// LoadWithPrefix — конфигурация из окружения с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (*Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return nil, err
	}

	return &c, nil
}
