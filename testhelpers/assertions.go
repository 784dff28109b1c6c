package testhelpers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectWorkingDirUnchanged records the process working directory and
// returns a function asserting it is still the same
func ExpectWorkingDirUnchanged(t *testing.T) func() {
	t.Helper()
	before, err := os.Getwd()
	require.NoError(t, err)
	return func() {
		t.Helper()
		after, err := os.Getwd()
		require.NoError(t, err)
		require.Equal(t, before, after, "working directory changed")
	}
}

// ExpectDir asserts that path exists and is a directory
func ExpectDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.IsDir(), "%s is not a directory", path)
}
