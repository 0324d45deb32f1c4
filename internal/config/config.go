package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultNotesName      = "notes.json"
	DefaultDBName         = "notes.db"
	DefaultEditor         = "nvim"

	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	appDirName = "tagnote"
	envConfig  = "TAGNOTE_CONFIG"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Add     string `toml:"add"`
	Delete  string `toml:"delete"`
	Import  string `toml:"import"`
	Change  string `toml:"change"`
	Yank    string `toml:"yank"`
	Insert  string `toml:"insert"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
}

type Config struct {
	NotesPath   string `toml:"notes_path"`
	Backend     string `toml:"backend"`
	DBPath      string `toml:"db_path"`
	Editor      string `toml:"editor"`
	ScratchPath string `toml:"scratch_path"`
	LogPath     string `toml:"log_path"`
	LogLevel    string `toml:"log_level"`
	Keys        Keymap `toml:"keys"`
}

// ResolveConfigPath honours $TAGNOTE_CONFIG, then the user config dir, then
// the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(envConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.NotesPath == "" {
		cfg.NotesPath = DefaultNotesName
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// StorePath is the file the selected backend persists to.
func (c Config) StorePath() string {
	if c.Backend == BackendSQLite {
		return c.DBPath
	}
	return c.NotesPath
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required, validation.In(BackendJSON, BackendSQLite)),
		validation.Field(&c.NotesPath, validation.When(c.Backend == BackendJSON, validation.Required)),
		validation.Field(&c.DBPath, validation.When(c.Backend == BackendSQLite, validation.Required)),
		validation.Field(&c.Editor, validation.Required),
		validation.Field(&c.ScratchPath, validation.Required),
		validation.Field(&c.LogLevel, validation.In("", "debug", "info", "warn", "error")),
		validation.Field(&c.Keys),
	)
}

func (k Keymap) Validate() error {
	if err := validation.ValidateStruct(&k,
		validation.Field(&k.Quit, validation.Required),
		validation.Field(&k.Up, validation.Required),
		validation.Field(&k.Down, validation.Required),
		validation.Field(&k.Add, validation.Required),
		validation.Field(&k.Delete, validation.Required),
		validation.Field(&k.Import, validation.Required),
		validation.Field(&k.Change, validation.Required),
		validation.Field(&k.Yank, validation.Required),
		validation.Field(&k.Insert, validation.Required),
		validation.Field(&k.Confirm, validation.Required),
		validation.Field(&k.Cancel, validation.Required),
	); err != nil {
		return err
	}
	seen := map[string]string{}
	for name, key := range map[string]string{
		"quit": k.Quit, "up": k.Up, "down": k.Down, "add": k.Add, "delete": k.Delete,
		"import": k.Import, "change": k.Change, "yank": k.Yank,
	} {
		if other, ok := seen[key]; ok {
			return fmt.Errorf("keys: %q is bound to both %s and %s", key, other, name)
		}
		seen[key] = name
	}
	return nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = DefaultEditor
	}
	return Config{
		NotesPath:   DefaultNotesName,
		Backend:     BackendJSON,
		DBPath:      DefaultDBName,
		Editor:      editor,
		ScratchPath: filepath.Join(os.TempDir(), "tagnote.tmp"),
		LogPath:     filepath.Join(dir, "tagnote.log"),
		LogLevel:    "info",
		Keys: Keymap{
			Quit:    "q",
			Up:      "k",
			Down:    "j",
			Add:     "a",
			Delete:  "d",
			Import:  "e",
			Change:  "c",
			Yank:    "y",
			Insert:  "i",
			Confirm: "enter",
			Cancel:  "esc",
		},
	}
}
