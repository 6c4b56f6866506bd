package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// CMS backends.
const (
	BackendContentful = "contentful"
	BackendMemory     = "memory"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Contentful ContentfulConfig
	CMS        CMSConfig
	Preview    PreviewConfig
	RateLimit  RateLimitConfig
	MongoDB    MongoDBConfig
	Redis      RedisConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
	ReadTimeout time.Duration
	// No write timeout: carousel event streams stay open.
	ShutdownTimeout time.Duration
}

type ContentfulConfig struct {
	SpaceID            string
	AccessToken        string
	PreviewAccessToken string
	ManagementToken    string
	Environment        string
}

type CMSConfig struct {
	Backend       string
	Fixtures      string
	WatchFixtures bool
}

type PreviewConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoadConfig loads configuration from environment variables and .env files.
// .env.local takes precedence over .env; real environment variables win over
// both.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("CONTENTFUL_ENVIRONMENT", "master")
	viper.SetDefault("CMS_BACKEND", BackendContentful)
	viper.SetDefault("PREVIEW_TOKEN_TTL", 60)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_USE_REDIS", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("MONGODB_DATABASE", "landing")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("REDIS_PORT", "6379")

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			Host:            viper.GetString("SERVER_HOST"),
			Environment:     viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:     30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Contentful: ContentfulConfig{
			SpaceID:            viper.GetString("CONTENTFUL_SPACE_ID"),
			AccessToken:        viper.GetString("CONTENTFUL_ACCESS_TOKEN"),
			PreviewAccessToken: viper.GetString("CONTENTFUL_PREVIEW_ACCESS_TOKEN"),
			ManagementToken:    viper.GetString("CONTENTFUL_MANAGEMENT_TOKEN"),
			Environment:        viper.GetString("CONTENTFUL_ENVIRONMENT"),
		},
		CMS: CMSConfig{
			Backend:       strings.ToLower(viper.GetString("CMS_BACKEND")),
			Fixtures:      viper.GetString("CMS_FIXTURES"),
			WatchFixtures: viper.GetBool("CMS_FIXTURES_WATCH"),
		},
		Preview: PreviewConfig{
			Secret:   os.Getenv("PREVIEW_SECRET"),
			TokenTTL: time.Duration(viper.GetInt("PREVIEW_TOKEN_TTL")) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}

	switch cfg.CMS.Backend {
	case BackendContentful, BackendMemory:
	default:
		return nil, fmt.Errorf("CMS_BACKEND must be %q or %q, got %q", BackendContentful, BackendMemory, cfg.CMS.Backend)
	}

	return cfg, nil
}

// RequireEnv reports the first variable in names that is unset or empty.
// The setup scripts use it; the web server tolerates missing credentials.
func RequireEnv(names ...string) error {
	for _, name := range names {
		if strings.TrimSpace(viper.GetString(name)) == "" {
			return fmt.Errorf("Missing environment variable: %s", name)
		}
	}
	return nil
}

// Lookup returns the value of an environment variable as seen by the config
// layer (process environment plus .env files).
func Lookup(name string) (string, bool) {
	v := viper.GetString(name)
	return v, v != ""
}
