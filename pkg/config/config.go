package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

type MongoConfig struct {
	URI        string `yaml:"uri"`
	DBName     string `yaml:"dbname"`
	Collection string `yaml:"collection"`
}

// FetchConfig controls the fetch gateway. An empty ProxyKey means direct mode.
type FetchConfig struct {
	ProxyKey      string        `yaml:"proxyKey"`
	ProxyEndpoint string        `yaml:"proxyEndpoint"`
	DirectTimeout time.Duration `yaml:"directTimeout"`
	ProxyTimeout  time.Duration `yaml:"proxyTimeout"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // console|json
}

type ScheduleConfig struct {
	Cron string `yaml:"cron"` // robfig/cron spec; empty disables the built-in trigger
}

type Config struct {
	Mongo    MongoConfig    `yaml:"mongo"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			DBName:     "scholarship_feed",
			Collection: "scholarships",
		},
		Fetch: FetchConfig{
			ProxyEndpoint: "https://api.scraperapi.com/",
			DirectTimeout: 30 * time.Second,
			ProxyTimeout:  60 * time.Second,
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// LoadConfig layers defaults, the yaml file at path (optional), a .env file
// (optional) and finally the process environment.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, eris.Wrapf(err, "config: parse %s", path)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, eris.Wrapf(err, "config: read %s", path)
	}

	// gotenv never overrides variables that are already set.
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: load .env")
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Mongo.URI, "MONGODB_URI")
	setString(&cfg.Mongo.DBName, "MONGODB_DB")
	setString(&cfg.Mongo.Collection, "MONGODB_COLLECTION")
	setString(&cfg.Fetch.ProxyKey, "SCRAPER_API_KEY")
	setString(&cfg.Fetch.ProxyEndpoint, "SCRAPER_API_ENDPOINT")
	setString(&cfg.Server.Addr, "HTTP_ADDR")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Schedule.Cron, "SCRAPE_SCHEDULE")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
