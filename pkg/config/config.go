package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	Storage   StorageConfig
	Postgres  PostgresConfig
	Log       LogConfig
	Concierge ConciergeConfig
	App       AppConfig
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"file"`
	Dir    string `env:"STORAGE_DIR"    env-default:"./data"`
}

type PostgresConfig struct {
	Address  string `env:"POSTGRES_DB_ADDRESS" env-default:"localhost:5432"`
	User     string `env:"POSTGRES_USER"       env-default:"tabebui"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB"         env-default:"tabebui"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

type ConciergeConfig struct {
	APIKey       string `env:"ANTHROPIC_API_KEY"`
	Model        string `env:"CONCIERGE_MODEL"         env-default:"claude-3-5-haiku-latest"`
	MaxTokens    int64  `env:"CONCIERGE_MAX_TOKENS"    env-default:"1024"`
	SystemPrompt string `env:"CONCIERGE_SYSTEM_PROMPT" env-default:"You are a friendly guide to Japanese yakiniku and meat cuts. Suggest parts the user has not tried yet and keep answers short."`
}

type AppConfig struct {
	Timezone string `env:"TABEBUI_TIMEZONE" env-default:"Asia/Tokyo"`
	// Used when no --user flag is given
	UserID string `env:"TABEBUI_USER_ID" env-default:"00000000-0000-0000-0000-000000000001"`
}

// New returns the process-wide config, loading it on first use. Loading
// errors are fatal.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("TABEBUI_ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		cfg, err := Load(path)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads the optional .env file at path into the environment, then
// fills the config from the environment and defaults. Variables already set
// in the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageFile, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("storage driver must be one of %s, %s, %s (got %q)", StorageFile, StoragePostgres, StorageMemory, c.Storage.Driver)
	}
	if c.Storage.Driver == StorageFile && c.Storage.Dir == "" {
		return errors.New("storage dir is required for the file driver")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.App.Timezone, err)
	}
	if _, err := uuid.Parse(c.App.UserID); err != nil {
		return fmt.Errorf("user id %q: %w", c.App.UserID, err)
	}
	if c.Concierge.MaxTokens <= 0 {
		return fmt.Errorf("concierge max tokens must be > 0 (got %d)", c.Concierge.MaxTokens)
	}
	return nil
}

// Location is the timezone calendar days are counted in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) DefaultUserID() uuid.UUID {
	id, err := uuid.Parse(c.App.UserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
