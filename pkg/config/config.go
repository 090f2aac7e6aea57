package config

import "time"

type Config struct {
	App           AppConfig           `mapstructure:"app"`
	HTTP          HTTPConfig          `mapstructure:"http"`
	CORS          CORSConfig          `mapstructure:"cors"`
	Storage       StorageConfig       `mapstructure:"storage"`
	NATS          NATSConfig          `mapstructure:"nats"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Session       SessionConfig       `mapstructure:"session"`
	Directory     DirectoryConfig     `mapstructure:"directory"`
	Account       AccountConfig       `mapstructure:"account"`
	Realtime      RealtimeConfig      `mapstructure:"realtime"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Prometheus    PrometheusConfig    `mapstructure:"prometheus"`
	OpenTelemetry OpenTelemetryConfig `mapstructure:"opentelemetry"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	ExposeHeaders  []string `mapstructure:"expose_headers"`
	MaxAge         int      `mapstructure:"max_age"`
	Credentials    bool     `mapstructure:"credentials"`
}

// StorageConfig selects the state store backing. The file driver is the
// default; redis is the shared-instance alternative.
type StorageConfig struct {
	Driver   string `mapstructure:"driver"` // "file" or "redis"
	FilePath string `mapstructure:"file_path"`
	RedisURL string `mapstructure:"redis_url"`
}

// NATSConfig configures the optional external event bus. Disabled means the
// in-process queue is used.
type NATSConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	URL           string        `mapstructure:"url"`
	MaxReconnects int           `mapstructure:"max_reconnects"`
	ReconnectWait time.Duration `mapstructure:"reconnect_wait"`
}

type JWTConfig struct {
	Secret        string        `mapstructure:"secret"`
	TokenDuration time.Duration `mapstructure:"token_duration"`
}

type SessionConfig struct {
	StartDelay       time.Duration `mapstructure:"start_delay"`
	StopDelay        time.Duration `mapstructure:"stop_delay"`
	ProgressInterval time.Duration `mapstructure:"progress_interval"`
	FailureRate      float64       `mapstructure:"failure_rate"`
	MinPowerKW       float64       `mapstructure:"min_power_kw"`
	MaxPowerKW       float64       `mapstructure:"max_power_kw"`
	PricePerKWh      float64       `mapstructure:"price_per_kwh"`
	DefaultEnergyCap float64       `mapstructure:"default_energy_cap"`
}

type DirectoryConfig struct {
	FetchDelay    time.Duration `mapstructure:"fetch_delay"`
	FailureRate   float64       `mapstructure:"failure_rate"`
	DefaultRadius float64       `mapstructure:"default_radius_km"`
}

type AccountConfig struct {
	LinkDelay time.Duration `mapstructure:"link_delay"`
}

type RealtimeConfig struct {
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
	DisconnectChance  float64       `mapstructure:"disconnect_chance"`
	ReconnectDelay    time.Duration `mapstructure:"reconnect_delay"`
	RefreshInterval   time.Duration `mapstructure:"refresh_interval"`
	PerturbChance     float64       `mapstructure:"perturb_chance"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

type PrometheusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type OpenTelemetryConfig struct {
	Enabled     bool         `mapstructure:"enabled"`
	ServiceName string       `mapstructure:"service_name"`
	Jaeger      JaegerConfig `mapstructure:"jaeger"`
}

type JaegerConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}
