package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingDatabaseDSN = errors.New("DATABASE_DSN is required")

type Settings struct {
	Env           string   `mapstructure:"app_env"`
	Port          string   `mapstructure:"port"`
	DatabaseDSN   string   `mapstructure:"database_dsn"`
	JWTSecret     string   `mapstructure:"jwt_secret"`
	DBAutoMigrate bool     `mapstructure:"db_auto_migrate"`
	LogLevel      string   `mapstructure:"log_level"`
	CookieDomain  string   `mapstructure:"cookie_domain"`
	CorsOrigins   []string `mapstructure:"cors_origins"`
	GeminiModel   string   `mapstructure:"gemini_model"`
}

var current *Settings

// Load reads .env files (when present), a config.yaml (when present) and the
// process environment, in increasing order of precedence.
func Load() (*Settings, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}

	for _, path := range []string{".env." + strings.ToLower(env), ".env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return nil, fmt.Errorf("error loading %s: %w", path, err)
			}
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("app_env", env)
	v.SetDefault("port", "8080")
	v.SetDefault("database_dsn", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("db_auto_migrate", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("cookie_domain", "")
	v.SetDefault("cors_origins", "http://localhost:3000")
	v.SetDefault("gemini_model", "gemini-2.0-flash")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	s.CorsOrigins = splitList(v.GetString("cors_origins"))

	current = &s
	return &s, nil
}

// Get returns the last loaded settings, loading them on first use.
func Get() *Settings {
	if current == nil {
		s, err := Load()
		if err != nil {
			panic(err)
		}
		return s
	}
	return current
}

func (s *Settings) DSN() (string, error) {
	if s.DatabaseDSN == "" {
		return "", ErrMissingDatabaseDSN
	}
	return s.DatabaseDSN, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
