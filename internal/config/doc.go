// Package config manages gitcmd configuration.
//
// It handles:
//   - The language git messages are produced in (LANGUAGE of every child process)
//   - The git binary to launch
//   - Log file location and rotation
//
// Values come from built-in defaults, then an optional JSON user config file,
// then environment variables.
package config
