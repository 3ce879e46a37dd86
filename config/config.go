package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 服务配置，字段均可由环境变量覆盖（PORT、DB_PATH、ALLOW_ORIGIN ...）
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port         int
	Mode         string // gin mode: debug, release, test
	AllowOrigins []string
}

type DatabaseConfig struct {
	Driver string // sqlite | postgres
	Path   string // sqlite file
	DSN    string // postgres
	Debug  bool
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	ProfileTTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type TelemetryConfig struct {
	ServiceName  string
	OTLPEndpoint string
	SentryDSN    string
	Environment  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.alloworigins", "*")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "/data/futsalero.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.debug", false)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.profilettl", "5m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("ratelimit.rps", 20)
	v.SetDefault("ratelimit.burst", 40)
	v.SetDefault("telemetry.servicename", "futsalero")
	v.SetDefault("telemetry.otlpendpoint", "")
	v.SetDefault("telemetry.sentrydsn", "")
	v.SetDefault("telemetry.environment", "production")
}

// 环境变量名沿用旧服务的命名
var envBindings = map[string]string{
	"server.port":            "PORT",
	"server.mode":            "GIN_MODE",
	"server.alloworigins":    "ALLOW_ORIGIN",
	"database.driver":        "DB_DRIVER",
	"database.path":          "DB_PATH",
	"database.dsn":           "DATABASE_URL",
	"database.debug":         "DB_DEBUG",
	"redis.addr":             "REDIS_ADDR",
	"redis.password":         "REDIS_PASSWORD",
	"redis.db":               "REDIS_DB",
	"redis.profilettl":       "PROFILE_CACHE_TTL",
	"log.level":              "LOG_LEVEL",
	"log.format":             "LOG_FORMAT",
	"ratelimit.rps":          "RATE_LIMIT_RPS",
	"ratelimit.burst":        "RATE_LIMIT_BURST",
	"telemetry.otlpendpoint": "OTEL_ENDPOINT",
	"telemetry.sentrydsn":    "SENTRY_DSN",
	"telemetry.environment":  "APP_ENV",
}

// Load 读取 config.yaml（可选）并应用环境变量覆盖
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom 与 Load 相同，但允许显式指定配置文件
func LoadFrom(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			Mode:         v.GetString("server.mode"),
			AllowOrigins: splitList(v.GetString("server.alloworigins")),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("database.driver")),
			Path:   v.GetString("database.path"),
			DSN:    v.GetString("database.dsn"),
			Debug:  v.GetBool("database.debug"),
		},
		Redis: RedisConfig{
			Addr:       v.GetString("redis.addr"),
			Password:   v.GetString("redis.password"),
			DB:         v.GetInt("redis.db"),
			ProfileTTL: v.GetDuration("redis.profilettl"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("ratelimit.rps"),
			Burst: v.GetInt("ratelimit.burst"),
		},
		Telemetry: TelemetryConfig{
			ServiceName:  v.GetString("telemetry.servicename"),
			OTLPEndpoint: v.GetString("telemetry.otlpendpoint"),
			SentryDSN:    v.GetString("telemetry.sentrydsn"),
			Environment:  v.GetString("telemetry.environment"),
		},
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return errors.New("config: database.path is required for sqlite")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return errors.New("config: DATABASE_URL is required for postgres")
		}
	default:
		return errors.New("config: unsupported database driver " + c.Database.Driver)
	}
	if c.Server.Port <= 0 {
		return errors.New("config: invalid server port")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
