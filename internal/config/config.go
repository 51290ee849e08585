package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Env string `yaml:"env"` // production selects the JSON logger
	} `yaml:"log"`
	Quiz struct {
		CatalogID     string `yaml:"catalog_id"`
		FeedbackDelay string `yaml:"feedback_delay"`
		TTL           string `yaml:"ttl"`
		AssetsDir     string `yaml:"assets_dir"`
	} `yaml:"quiz"`
	Signal struct {
		Driver   string `yaml:"driver"` // http, amqp or none
		BaseURL  string `yaml:"base_url"`
		Timeout  string `yaml:"timeout"`
		AMQPURL  string `yaml:"amqp_url"`
		Exchange string `yaml:"exchange"`
	} `yaml:"signal"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
}

// Load reads YAML config from path, then applies environment overrides.
// A missing file yields the defaults so the quiz can run with no setup.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Log.Env = "development"
	cfg.Quiz.CatalogID = "organelas"
	cfg.Quiz.FeedbackDelay = "800ms"
	cfg.Quiz.TTL = "10m"
	cfg.Quiz.AssetsDir = "assets"
	cfg.Signal.Driver = "none"
	cfg.Signal.Timeout = "2s"
	cfg.Signal.Exchange = "quiz.signals"
	return cfg
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"APP_ENV":         &cfg.Log.Env,
		"QUIZ_CATALOG":    &cfg.Quiz.CatalogID,
		"SIGNAL_DRIVER":   &cfg.Signal.Driver,
		"SIGNAL_BASE_URL": &cfg.Signal.BaseURL,
		"SIGNAL_AMQP_URL": &cfg.Signal.AMQPURL,
		"REDIS_ADDR":      &cfg.Redis.Addr,
		"REDIS_PASSWORD":  &cfg.Redis.Password,
		"DATABASE_URL":    &cfg.Postgres.URL,
	}
	for key, target := range overrides {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
