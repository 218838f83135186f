package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/juhanify-labs/juhanify/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPackageManager  = "package_manager"
	KeyVCS             = "vcs"
	KeyDefaultTemplate = "default_template"
	KeyAuthor          = "author"
	KeyLogLevel        = "log_level"
)

// Keys lists every key accepted by Set, in display order.
var Keys = []string{
	KeyPackageManager,
	KeyVCS,
	KeyDefaultTemplate,
	KeyAuthor,
	KeyLogLevel,
}

// Settings is a snapshot of the user's configuration with built-in defaults
// applied for keys that are not set.
type Settings struct {
	PackageManager  string
	VCS             string
	DefaultTemplate string
	Author          string
	LogLevel        string
}

// Dir returns the path to the config directory. <PREFIX>_HOME overrides the
// default of ~/.juhanify/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.juhanify/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the loaded settings with defaults filled in.
func Current() Settings {
	return Settings{
		PackageManager:  getOr(KeyPackageManager, "npm"),
		VCS:             getOr(KeyVCS, "git"),
		DefaultTemplate: Get(KeyDefaultTemplate),
		Author:          Get(KeyAuthor),
		LogLevel:        getOr(KeyLogLevel, "info"),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func getOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}
