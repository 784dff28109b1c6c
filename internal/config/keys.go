package config

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// Key is a setting that can be read by name from the effective
// configuration and written by name to the user config file
type Key struct {
	Name  string
	Usage string
	get   func(Config) string
	set   func(*FileConfig, string) error
}

// Get returns the value of the key in cfg
func (k Key) Get(cfg Config) string {
	return k.get(cfg)
}

// Set parses value and stores it in file
func (k Key) Set(file *FileConfig, value string) error {
	if err := k.set(file, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", k.Name, err)
	}
	return nil
}

// Keys lists every configurable setting
var Keys = []Key{
	{
		Name:  "language",
		Usage: "language git messages are printed in",
		get:   func(c Config) string { return c.Language },
		set:   stringSetter(func(f *FileConfig, v string) { f.Language = lo.ToPtr(v) }),
	},
	{
		Name:  "git",
		Usage: "git binary to run",
		get:   func(c Config) string { return c.GitBinary },
		set:   stringSetter(func(f *FileConfig, v string) { f.GitBinary = lo.ToPtr(v) }),
	},
	{
		Name:  "log-file",
		Usage: "file every git invocation is logged to",
		get:   func(c Config) string { return c.LogFile },
		set:   stringSetter(func(f *FileConfig, v string) { f.LogFile = lo.ToPtr(v) }),
	},
	{
		Name:  "log-max-size",
		Usage: "size in megabytes at which the log file is rotated",
		get:   func(c Config) string { return strconv.Itoa(c.LogMaxSizeMB) },
		set:   intSetter(1, func(f *FileConfig, n int) { f.LogMaxSizeMB = lo.ToPtr(n) }),
	},
	{
		Name:  "log-max-backups",
		Usage: "number of rotated log files kept",
		get:   func(c Config) string { return strconv.Itoa(c.LogMaxBackups) },
		set:   intSetter(0, func(f *FileConfig, n int) { f.LogMaxBackups = lo.ToPtr(n) }),
	},
	{
		Name:  "log-max-age",
		Usage: "days a rotated log file is kept",
		get:   func(c Config) string { return strconv.Itoa(c.LogMaxAgeDays) },
		set:   intSetter(1, func(f *FileConfig, n int) { f.LogMaxAgeDays = lo.ToPtr(n) }),
	},
	{
		Name:  "debug",
		Usage: "print every git invocation",
		get:   func(c Config) string { return strconv.FormatBool(c.Debug) },
		set: func(f *FileConfig, v string) error {
			debug, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("must be 'true' or 'false'")
			}
			f.Debug = lo.ToPtr(debug)
			return nil
		},
	},
}

func stringSetter(assign func(*FileConfig, string)) func(*FileConfig, string) error {
	return func(f *FileConfig, v string) error {
		if v == "" {
			return fmt.Errorf("must not be empty")
		}
		assign(f, v)
		return nil
	}
}

func intSetter(minimum int, assign func(*FileConfig, int)) func(*FileConfig, string) error {
	return func(f *FileConfig, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < minimum {
			return fmt.Errorf("must be a number of at least %d", minimum)
		}
		assign(f, n)
		return nil
	}
}

// LookupKey returns the key called name
func LookupKey(name string) (Key, error) {
	key, ok := lo.Find(Keys, func(k Key) bool {
		return k.Name == name
	})
	if !ok {
		return Key{}, fmt.Errorf("unknown configuration key: %s", name)
	}
	return key, nil
}

// KeyNames returns the name of every key
func KeyNames() []string {
	return lo.Map(Keys, func(k Key, _ int) string {
		return k.Name
	})
}
