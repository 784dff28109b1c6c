package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FallbackLanguage is used when no usable locale is found in the environment
const FallbackLanguage = "en_US.UTF-8"

// DefaultGitBinary is the executable launched for every operation
const DefaultGitBinary = "git"

// Config holds the process-wide settings handed to the git client and logger.
// It is a plain value: copy it to override a field for one caller.
type Config struct {
	Language      string
	GitBinary     string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	Debug         bool
}

// FileConfig is the content of the JSON user config file. A nil field is
// not set in the file and leaves the value underneath it alone.
type FileConfig struct {
	Language      *string `json:"language,omitempty"`
	GitBinary     *string `json:"gitBinary,omitempty"`
	LogFile       *string `json:"logFile,omitempty"`
	LogMaxSizeMB  *int    `json:"logMaxSize,omitempty"`
	LogMaxBackups *int    `json:"logMaxBackups,omitempty"`
	LogMaxAgeDays *int    `json:"logMaxAge,omitempty"`
	Debug         *bool   `json:"debug,omitempty"`
}

// Apply returns base with every usable field of f laid over it. Values are
// accepted under the same rules as their environment variables: strings
// must be non-empty, the log size and age positive, the backup count
// non-negative.
func (f FileConfig) Apply(base Config) Config {
	if f.Language != nil && *f.Language != "" {
		base.Language = *f.Language
	}
	if f.GitBinary != nil && *f.GitBinary != "" {
		base.GitBinary = *f.GitBinary
	}
	if f.LogFile != nil && *f.LogFile != "" {
		base.LogFile = *f.LogFile
	}
	if f.LogMaxSizeMB != nil && *f.LogMaxSizeMB > 0 {
		base.LogMaxSizeMB = *f.LogMaxSizeMB
	}
	if f.LogMaxBackups != nil && *f.LogMaxBackups >= 0 {
		base.LogMaxBackups = *f.LogMaxBackups
	}
	if f.LogMaxAgeDays != nil && *f.LogMaxAgeDays > 0 {
		base.LogMaxAgeDays = *f.LogMaxAgeDays
	}
	if f.Debug != nil {
		base.Debug = *f.Debug
	}
	return base
}

var defaultLanguage = sync.OnceValue(func() string {
	return LanguageFromEnv(os.Getenv)
})

// DefaultLanguage returns the language derived from the system locale.
// It is computed once, the first time it is needed.
func DefaultLanguage() string {
	return defaultLanguage()
}

// LanguageFromEnv derives a 'lang.encoding' string from the usual locale
// variables, in the order LC_ALL, LC_CTYPE, LANG, LANGUAGE.
func LanguageFromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG", "LANGUAGE"} {
		value := getenv(key)
		if key == "LANGUAGE" {
			// LANGUAGE may hold a colon separated priority list
			value, _, _ = strings.Cut(value, ":")
		}
		value, _, _ = strings.Cut(value, "@")
		value = strings.TrimSpace(value)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if !strings.Contains(value, ".") {
			value += ".UTF-8"
		}
		return value
	}
	return FallbackLanguage
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Language:      DefaultLanguage(),
		GitBinary:     DefaultGitBinary,
		LogMaxSizeMB:  1,
		LogMaxBackups: 2,
		LogMaxAgeDays: 30,
	}
}

// UserConfigPath returns the path of the JSON user config file.
// If GITCMD_CONFIG is set, uses that path.
// Otherwise, uses ~/.gitcmd/config.json
func UserConfigPath() string {
	if customPath := os.Getenv("GITCMD_CONFIG"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".gitcmd", "config.json")
}

// DefaultLogFilePath returns ~/.gitcmd/logs/gitcmd.log
func DefaultLogFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gitcmd.log"
	}
	return filepath.Join(homeDir, ".gitcmd", "logs", "gitcmd.log")
}

// Load builds the configuration from defaults, the user config file and the environment
func Load() (Config, error) {
	file, err := LoadFile()
	if err != nil {
		return Config{}, err
	}

	cfg := file.Apply(Default())
	cfg.mergeEnv(os.Getenv)

	return cfg, nil
}

// LoadFile returns the settings stored in the user config file alone,
// without defaults or environment overrides. A missing file gives an empty
// FileConfig.
func LoadFile() (FileConfig, error) {
	path := UserConfigPath()
	if path == "" {
		return FileConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file FileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return file, nil
}

func (c *Config) mergeEnv(getenv func(string) string) {
	if lang := getenv("GITCMD_LANGUAGE"); lang != "" {
		c.Language = lang
	}
	if bin := getenv("GITCMD_GIT"); bin != "" {
		c.GitBinary = bin
	}
	if logFile := getenv("GITCMD_LOG_FILE"); logFile != "" {
		c.LogFile = logFile
	}
	if maxSize, err := strconv.Atoi(getenv("GITCMD_LOG_MAX_SIZE")); err == nil && maxSize > 0 {
		c.LogMaxSizeMB = maxSize
	}
	if maxBackups, err := strconv.Atoi(getenv("GITCMD_LOG_MAX_BACKUPS")); err == nil && maxBackups >= 0 {
		c.LogMaxBackups = maxBackups
	}
	if maxAge, err := strconv.Atoi(getenv("GITCMD_LOG_MAX_AGE")); err == nil && maxAge > 0 {
		c.LogMaxAgeDays = maxAge
	}
	if debug := getenv("DEBUG"); debug != "" {
		// any value that is not a boolean still turns debugging on
		on, err := strconv.ParseBool(debug)
		c.Debug = on || err != nil
	}
}

// Save writes the settings as the JSON user config file
func Save(cfg FileConfig) error {
	path := UserConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine user config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configJSON, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, configJSON, 0600)
}
