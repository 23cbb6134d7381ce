package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Injection InjectionConfig
	Catalog   CatalogConfig
}
type ServerConfig struct {
	Port        string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	// WriteTimeout must cover both injection phases plus settlement.
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"livery_points"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// URL renders the pgx connection string.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type InjectionConfig struct {
	// DefaultCost applies when no injection_cost_points row exists in admin_settings.
	DefaultCost  int64         `env:"INJECTION_DEFAULT_COST" envDefault:"1000"`
	PhaseTimeout time.Duration `env:"INJECTION_PHASE_TIMEOUT" envDefault:"30s"`
	Workers      int           `env:"INJECTION_WORKERS" envDefault:"5"`
	PlayfabURL   string        `env:"PLAYFAB_URL" envDefault:"https://be38c.playfabapi.com/Client/ExecuteCloudScript"`
}
type CatalogConfig struct {
	FeedURL         string        `env:"LIVERIES_FEED_URL,required"`
	FeedTimeout     time.Duration `env:"LIVERIES_FEED_TIMEOUT" envDefault:"10s"`
	RefreshInterval time.Duration `env:"LIVERIES_REFRESH_INTERVAL" envDefault:"6h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
