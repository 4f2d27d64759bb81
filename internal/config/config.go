// Package config resolves noteza settings from flags, environment, a .env
// file, the secrets directory, an optional YAML file, and defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/csheth/noteza/internal/llm"
	"github.com/csheth/noteza/internal/observability"
	"github.com/csheth/noteza/internal/secrets"
)

// Keys understood by Load.
const (
	KeyProvider      = "provider"
	KeyModel         = "model"
	KeyEndpoint      = "endpoint"
	KeyAPIKey        = "api_key"
	KeyExportDir     = "export_dir"
	KeyLogFile       = "log_file"
	KeyLogLevel      = "log_level"
	KeyMarkdownStyle = "markdown_style"
	KeyAltScreen     = "alt_screen"
)

const (
	EnvPrefix      = "NOTEZA"
	ConfigName     = "noteza"
	DefaultDotEnv  = ".env"
	geminiKeyEnv   = "GEMINI_API_KEY"
	notezaKeyEnv   = "NOTEZA_API_KEY"
	defaultStyle   = "dark"
	defaultExports = "."
)

// MissingKeyMessage is printed when the credential cannot be found.
const MissingKeyMessage = "GEMINI_API_KEY missing from .env file. Add it and restart."

// Config is the resolved runtime configuration.
type Config struct {
	Provider      string
	Model         string
	Endpoint      string
	APIKey        string
	ExportDir     string
	LogFile       string
	LogLevel      string
	MarkdownStyle string
	AltScreen     bool
}

// Sources names the files consulted besides the config file and environment.
type Sources struct {
	DotEnvPath string
	SecretsDir string
	// Warn receives non-fatal notices such as unreadable secret files.
	Warn io.Writer
}

// DefaultSources looks for .env and .secrets/ in the working directory.
func DefaultSources() Sources {
	return Sources{DotEnvPath: DefaultDotEnv, SecretsDir: secrets.DefaultDir, Warn: os.Stderr}
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyProvider, llm.ProviderGemini)
	v.SetDefault(KeyModel, "")
	v.SetDefault(KeyEndpoint, "")
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyExportDir, defaultExports)
	v.SetDefault(KeyLogFile, observability.DefaultLogPath())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMarkdownStyle, defaultStyle)
	v.SetDefault(KeyAltScreen, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyAPIKey, notezaKeyEnv, geminiKeyEnv)
}

// ReadFile reads path, or searches ./noteza.yaml and ~/.config/noteza/ when
// path is empty. It returns the file used, or "" when none was found.
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load merges src into the environment, then resolves every key from v.
// .env values never override variables already set in the process.
func Load(v *viper.Viper, src Sources) (Config, error) {
	if err := loadDotEnv(src.DotEnvPath); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Provider:      strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))),
		Model:         strings.TrimSpace(v.GetString(KeyModel)),
		Endpoint:      strings.TrimSpace(v.GetString(KeyEndpoint)),
		APIKey:        strings.TrimSpace(v.GetString(KeyAPIKey)),
		ExportDir:     v.GetString(KeyExportDir),
		LogFile:       v.GetString(KeyLogFile),
		LogLevel:      v.GetString(KeyLogLevel),
		MarkdownStyle: v.GetString(KeyMarkdownStyle),
		AltScreen:     v.GetBool(KeyAltScreen),
	}

	if src.SecretsDir != "" && !keyInEnv() {
		store, err := secrets.Load(src.SecretsDir, src.Warn)
		if err != nil {
			return Config{}, err
		}
		if key := store.Value(secrets.GeminiAPIKey); key != "" {
			cfg.APIKey = key
		}
	}
	return cfg, nil
}

// Validate reports llm.ErrMissingAPIKey when the provider needs a key and has none.
func (c Config) Validate() error {
	if llm.RequiresAPIKey(c.Provider) && c.APIKey == "" {
		return llm.ErrMissingAPIKey
	}
	if _, err := observability.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LLM converts the settings into a generation client config.
func (c Config) LLM() llm.Config {
	return llm.Config{
		Provider: c.Provider,
		Model:    c.Model,
		Endpoint: c.Endpoint,
		APIKey:   c.APIKey,
	}
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func keyInEnv() bool {
	for _, name := range []string{notezaKeyEnv, geminiKeyEnv} {
		if strings.TrimSpace(os.Getenv(name)) != "" {
			return true
		}
	}
	return false
}
