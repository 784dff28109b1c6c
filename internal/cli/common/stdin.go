package common

import (
	"errors"
	"io"
	"os"
	"strings"
)

// ReadPassword reads a password piped to r, dropping the trailing line break.
// A terminal is never read from, to avoid blocking on it.
func ReadPassword(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return "", err
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", errors.New("--password-stdin requires the password to be piped to standard input")
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
