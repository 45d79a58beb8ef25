package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Storage            string    `yaml:"storage" validate:"required,oneof=postgres memory"`
	AutoMigrate        bool      `yaml:"auto_migrate"`
	LogLevel           string    `yaml:"log_level"`
	LogJSON            bool      `yaml:"log_json"`
	CorsAllowedOrigins []string  `yaml:"cors_allowed_origins"`
	SecureHeaders      bool      `yaml:"secure_headers"` // adds HSTS, set when served over https
	WriteRateLimit     RateLimit `yaml:"write_rate_limit" validate:"required"`
	PgPool             PgPool    `yaml:"pg_pool"`
}

// RateLimit is a per-user token bucket applied to mutating endpoints.
type RateLimit struct {
	Rps   float64 `yaml:"rps" validate:"required,gt=0"`
	Burst int     `yaml:"burst" validate:"required,gt=0"`
}

type PgPool struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`  // seconds
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"` // seconds
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key" validate:"required"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

// Port is taken from the PORT environment variable, 8080 by default.
func (s *Config) Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	cfg.Public.PgPool.ConnMaxLifetime *= time.Second
	cfg.Public.PgPool.ConnMaxIdleTime *= time.Second
	mustValidate(cfg)
	return cfg
}

func mustValidate(cfg *Config) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg.Public); err != nil {
		panic("invalid public config: " + err.Error())
	}
	if err := validate.Var(cfg.Private.JwtKey, "required"); err != nil {
		panic("invalid private config: jwt_key is required")
	}
	// pg credentials matter only when postgres backs the storage
	if cfg.Public.Storage == StoragePostgres {
		if err := validate.Struct(cfg.Private.Pg); err != nil {
			panic("invalid private config: " + err.Error())
		}
	}
}
