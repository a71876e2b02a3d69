package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Log        LogConfig
	CORS       CORSConfig      `mapstructure:"cors"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
	Pagination PaginationConfig
	Tracing    TracingConfig `mapstructure:"tracing"`
	Seed       SeedConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Driver       string // sqlite 或 mysql
	Path         string // sqlite 数据库文件路径
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	Charset      string
	ParseTime    bool
	MaxOpenConns int `mapstructure:"max_open_conns"`
	MaxIdleConns int `mapstructure:"max_idle_conns"`
}

type LogConfig struct {
	File string
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig 仅声明限额，服务端点不做实际限流
type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// PaginationConfig 仅声明页大小，端点不做分页
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type SeedConfig struct {
	Source         string `mapstructure:"source"` // local 或 minio
	Dir            string `mapstructure:"dir"`
	MinioEndpoint  string `mapstructure:"minio_endpoint"`
	MinioAccessKey string `mapstructure:"minio_access_key"`
	MinioSecretKey string `mapstructure:"minio_secret_key"`
	MinioBucket    string `mapstructure:"minio_bucket"`
	MinioUseSSL    bool   `mapstructure:"minio_use_ssl"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("COMPETENCY")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.driver", "DATABASE_DRIVER")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// CORS
	viper.BindEnv("cors.allowed_origins", "CORS_ORIGINS")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Seed
	viper.BindEnv("seed.source", "SEED_SOURCE")
	viper.BindEnv("seed.dir", "SEED_DIR")
	viper.BindEnv("seed.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("seed.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("seed.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("seed.minio_bucket", "MINIO_BUCKET")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "logs/api.log"
	}

	// release 模式必须显式配置 CORS 白名单
	if cfg.Server.Mode == "release" && len(cfg.CORS.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("cors.allowed_origins must be specified in release mode")
	}

	return &cfg, nil
}
