package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|prod
	Service   string `yaml:"service"`   // vr-room
	Version   string `yaml:"version"`   // v0.1.0
	Backend   string `yaml:"backend"`   // std|zap
	AddSource bool   `yaml:"addSource"` // false|true
	Debug     bool   `yaml:"debug"`     // false|true
}

type Room struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	ProjectContext string `yaml:"projectContext"`

	// SpeakingClearAfter is how long a gesture keeps its performer in
	// the speaking state. Duration string, default "2s".
	SpeakingClearAfter string `yaml:"speakingClearAfter"`
}

type Moderation struct {
	Enabled  bool     `yaml:"enabled"`
	Denylist []string `yaml:"denylist"`
}

type Notes struct {
	Enabled bool `yaml:"enabled"`
}

type Recordings struct {
	Backend     string `yaml:"backend"` // file|postgres
	Dir         string `yaml:"dir"`
	PostgresDSN string `yaml:"postgresDsn"`
}

type Config struct {
	HTTP       HTTP       `yaml:"http"`
	Logging    Logging    `yaml:"logging"`
	Room       Room       `yaml:"room"`
	Moderation Moderation `yaml:"moderation"`
	Notes      Notes      `yaml:"notes"`
	Recordings Recordings `yaml:"recordings"`
}

func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Moderation and note-taking default to on; yaml overlays what it
	// sets explicitly.
	cfg := Config{
		Moderation: Moderation{Enabled: true},
		Notes:      Notes{Enabled: true},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "vr-room"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	if c.Room.ID == "" {
		c.Room.ID = "vr_room"
	}
	if c.Room.Name == "" {
		c.Room.Name = "VR Meeting Room"
	}
	switch c.Recordings.Backend {
	case "":
		c.Recordings.Backend = "file"
	case "file", "postgres":
	default:
		return fmt.Errorf("recordings.backend must be file or postgres, got %q", c.Recordings.Backend)
	}
	if c.Recordings.Backend == "file" && c.Recordings.Dir == "" {
		c.Recordings.Dir = "./recordings"
	}
	if c.Recordings.Backend == "postgres" && c.Recordings.PostgresDSN == "" {
		return errors.New("recordings.postgresDsn is required for the postgres backend")
	}
	return nil
}

// SpeakingClearAfter parses the configured duration, falling back to 2s.
func (c *Config) SpeakingClearAfter() time.Duration {
	return parseDurationOr(2*time.Second, c.Room.SpeakingClearAfter)
}

func parseDurationOr(def time.Duration, s string) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return def
}
