package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app/configs")

	viper.SetEnvPrefix("CHARGEHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow common env vars without the CHARGEHUB_ prefix for Docker deploys
	viper.BindEnv("http.port", "HTTP_PORT", "CHARGEHUB_HTTP_PORT")
	viper.BindEnv("storage.redis_url", "REDIS_URL", "CHARGEHUB_STORAGE_REDIS_URL")
	viper.BindEnv("nats.url", "NATS_URL", "CHARGEHUB_NATS_URL")
	viper.BindEnv("jwt.secret", "JWT_SECRET", "CHARGEHUB_JWT_SECRET")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("logging.level", "LOG_LEVEL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: defaults plus env vars.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "chargehub")
	viper.SetDefault("app.version", "dev")
	viper.SetDefault("app.environment", "development")

	viper.SetDefault("http.port", 8080)
	viper.SetDefault("http.read_timeout", 15*time.Second)
	viper.SetDefault("http.write_timeout", 15*time.Second)
	viper.SetDefault("http.idle_timeout", time.Minute)

	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.file_path", "chargehub_state.json")

	viper.SetDefault("nats.enabled", false)
	viper.SetDefault("nats.url", "nats://localhost:4222")
	viper.SetDefault("nats.max_reconnects", 10)
	viper.SetDefault("nats.reconnect_wait", 2*time.Second)

	viper.SetDefault("jwt.secret", "dev-secret-change-me")
	viper.SetDefault("jwt.token_duration", 24*time.Hour)

	viper.SetDefault("session.start_delay", 2*time.Second)
	viper.SetDefault("session.stop_delay", 1500*time.Millisecond)
	viper.SetDefault("session.progress_interval", 5*time.Second)
	viper.SetDefault("session.failure_rate", 0.1)
	viper.SetDefault("session.min_power_kw", 20)
	viper.SetDefault("session.max_power_kw", 70)
	viper.SetDefault("session.price_per_kwh", 0.45)
	viper.SetDefault("session.default_energy_cap", 100)

	viper.SetDefault("directory.fetch_delay", 500*time.Millisecond)
	viper.SetDefault("directory.failure_rate", 0.05)
	viper.SetDefault("directory.default_radius_km", 10)

	viper.SetDefault("account.link_delay", 1500*time.Millisecond)

	viper.SetDefault("realtime.heartbeat_interval", 30*time.Second)
	viper.SetDefault("realtime.disconnect_chance", 0.05)
	viper.SetDefault("realtime.reconnect_delay", 2*time.Second)
	viper.SetDefault("realtime.refresh_interval", 15*time.Second)
	viper.SetDefault("realtime.perturb_chance", 0.1)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	viper.SetDefault("prometheus.enabled", true)
	viper.SetDefault("prometheus.path", "/metrics")

	viper.SetDefault("opentelemetry.enabled", false)
	viper.SetDefault("opentelemetry.service_name", "chargehub")
	viper.SetDefault("opentelemetry.jaeger.endpoint", "http://localhost:14268/api/traces")
}
