package config

import (
	"fmt"
	"net"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	defaultLogValue       = true
	defaultMaxConn        = "10"
	defaultEventBusBuffer = 16
)

var ErrInvalidConfig = errors.New("invalid config")

type (
	Config struct {
		HTTP struct {
			Port string `env:"HTTP_PORT"`
		}

		PG struct {
			URL           string
			MigrationsURL string
			Host          string `env:"POSTGRES_HOST"`
			Port          string `env:"POSTGRES_PORT"`
			DB            string `env:"POSTGRES_DB"`
			User          string `env:"POSTGRES_USER"`
			Password      string `env:"POSTGRES_PASSWORD"`
			MaxConn       string `env:"POSTGRES_MAX_CONN"`
		}

		Auth struct {
			JWTSecret string `env:"JWT_SECRET"`
		}

		Events struct {
			Buffer int `env:"EVENT_BUS_BUFFER"`
		}

		Log struct {
			LogController bool `env:"LOG_CONTROLLER_ENABLED"`
			LogTransactor bool `env:"LOG_TRANSACTOR_ENABLED"`
			LogUseCase    bool `env:"LOG_USECASE_ENABLED"`
			LogDBRepo     bool `env:"LOG_DB_REPO_ENABLED"`
			LogEventBus   bool `env:"LOG_EVENT_BUS_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
			JaegerURL   string `env:"JAEGER_URL"`
		}
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	cfg.HTTP.Port = os.Getenv("HTTP_PORT")

	cfg.PG.Host = os.Getenv("POSTGRES_HOST")
	cfg.PG.Port = os.Getenv("POSTGRES_PORT")
	cfg.PG.DB = os.Getenv("POSTGRES_DB")
	cfg.PG.User = os.Getenv("POSTGRES_USER")
	cfg.PG.Password = os.Getenv("POSTGRES_PASSWORD")

	for _, required := range []string{cfg.HTTP.Port, cfg.PG.Host, cfg.PG.Port, cfg.PG.DB, cfg.PG.User, cfg.PG.Password} {
		if required == "" {
			return nil, ErrInvalidConfig
		}
	}

	var err error
	v := viper.New()
	if cfg.PG.MaxConn, err = parseEnvString(v, "db_MaxCon", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	cfg.PG.MigrationsURL = fmt.Sprintf("postgres://%s:%s@", cfg.PG.User, cfg.PG.Password) +
		net.JoinHostPort(cfg.PG.Host, cfg.PG.Port) + fmt.Sprintf("/%s?sslmode=disable", cfg.PG.DB)
	cfg.PG.URL = cfg.PG.MigrationsURL + fmt.Sprintf("&pool_max_conns=%s", cfg.PG.MaxConn)

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Auth.JWTSecret == "" {
		return nil, ErrInvalidConfig
	}

	if cfg.Events.Buffer, err = parseEnvInt(v, "event_bus_buffer", "EVENT_BUS_BUFFER", defaultEventBusBuffer); err != nil {
		return nil, err
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogDBRepo, err = parseEnvBool(v, "log_db", "LOG_DB_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogEventBus, err = parseEnvBool(v, "log_event_bus", "LOG_EVENT_BUS_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	cfg.Observability.MetricsPort = os.Getenv("METRICS_PORT")
	cfg.Observability.JaegerURL = os.Getenv("JAEGER_URL")

	return cfg, nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
