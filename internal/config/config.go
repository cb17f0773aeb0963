package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Log        LogConfig        `mapstructure:"log"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Poster     PosterConfig     `mapstructure:"poster"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
}

// OpenRouterConfig describes the OpenAI-compatible chat completion upstream.
type OpenRouterConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
	Referer string        `mapstructure:"referer"`
	Title   string        `mapstructure:"title"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	Burst             int  `mapstructure:"burst"`
}

type StorageConfig struct {
	Type     string        `mapstructure:"type"`
	DataDir  string        `mapstructure:"data_dir"`
	StoryTTL time.Duration `mapstructure:"story_ttl"`
}

type PosterConfig struct {
	JPEGQuality     int           `mapstructure:"jpeg_quality"`
	MaxImages       int           `mapstructure:"max_images"`
	DownloadTimeout time.Duration `mapstructure:"download_timeout"`
}

type TemplatesConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 90*time.Second)
	v.SetDefault("server.max_header_bytes", 1<<20)

	v.SetDefault("openrouter.api_key", "")
	v.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter.model", "arcee-ai/trinity-large-preview:free")
	v.SetDefault("openrouter.timeout", 45*time.Second)
	v.SetDefault("openrouter.referer", "https://jashn-celebration.vercel.app")
	v.SetDefault("openrouter.title", "Jashn Celebration App")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept"})
	v.SetDefault("cors.exposed_headers", []string{"Content-Disposition"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 600)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 30)
	v.SetDefault("rate_limit.burst", 5)

	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.data_dir", "data/state")
	v.SetDefault("storage.story_ttl", 24*time.Hour)

	v.SetDefault("poster.jpeg_quality", 95)
	v.SetDefault("poster.max_images", 5)
	v.SetDefault("poster.download_timeout", 10*time.Second)

	v.SetDefault("templates.data_dir", "data")
}

// Load reads the YAML file at configPath (optional) and overlays JASHN_* environment
// variables, e.g. JASHN_OPENROUTER_API_KEY or JASHN_SERVER_PORT.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("JASHN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", configPath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// the file wins; the deployment-level variables only fill a blank key
	if cfg.OpenRouter.APIKey == "" {
		for _, name := range []string{"OPENROUTER_API_KEY", "NEXT_PUBLIC_OPENROUTER_API_KEY"} {
			if key := os.Getenv(name); key != "" {
				cfg.OpenRouter.APIKey = key
				break
			}
		}
	}
	// a deployment picks its model through the environment, over the file
	for _, name := range []string{"OPENROUTER_MODEL", "NEXT_PUBLIC_OPENROUTER_MODEL"} {
		if model := os.Getenv(name); model != "" {
			cfg.OpenRouter.Model = model
			break
		}
	}

	return cfg, nil
}
