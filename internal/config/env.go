package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"backend-faq/internal/faqstore"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime settings, read from the process environment after an
// optional .env file has been loaded.
type Config struct {
	AppHost string `mapstructure:"app_host"`
	AppPort string `mapstructure:"app_port"`

	// FAQStorePath is the generated FAQ source file owned by the store manager.
	FAQStorePath string `mapstructure:"faq_store_path"`
	// FAQNotFoundAs404 maps missing category/FAQ errors to 404 instead of 500.
	FAQNotFoundAs404 bool `mapstructure:"faq_not_found_as_404"`
	FAQWatchStore    bool `mapstructure:"faq_watch_store"`

	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`

	// DBDSN enables POST /auth/login against the users table when set.
	DBDSN string `mapstructure:"db_dsn"`

	// RedisAddr enables token revocation on logout when set.
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	CORSOrigins string `mapstructure:"cors_origins"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// LoadEnv reads .env into the process environment. A missing file is fine.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "ignoring .env:", err)
	}
}

func Load() (*Config, error) {
	LoadEnv()

	v := viper.New()
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8080")
	v.SetDefault("faq_store_path", faqstore.DefaultPath)
	v.SetDefault("faq_not_found_as_404", false)
	v.SetDefault("faq_watch_store", true)
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_ttl", 24*time.Hour)
	v.SetDefault("db_dsn", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cors_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
