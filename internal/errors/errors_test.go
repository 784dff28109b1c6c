package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	gitcmderrors "gitcmd.dev/gitcmd/internal/errors"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matches []error
		message string
	}{
		{
			name:    "not in repository",
			err:     gitcmderrors.NewNotInRepositoryError("/tmp/x"),
			matches: []error{gitcmderrors.ErrNotInRepository},
			message: "'/tmp/x' is not inside a repository",
		},
		{
			name:    "invalid reset mode",
			err:     gitcmderrors.NewInvalidResetModeError("error"),
			matches: []error{gitcmderrors.ErrInvalidResetMode, gitcmderrors.ErrInvalidArgument},
			message: `invalid reset mode "error": mode must be one of 'soft', 'mixed', 'hard', 'merge' or 'keep'`,
		},
		{
			name:    "missing password",
			err:     gitcmderrors.NewMissingPasswordError(),
			matches: []error{gitcmderrors.ErrMissingCredential, gitcmderrors.ErrInvalidArgument},
			message: "password must be provided if username is given",
		},
		{
			name:    "missing username",
			err:     gitcmderrors.NewMissingUsernameError(),
			matches: []error{gitcmderrors.ErrMissingCredential, gitcmderrors.ErrInvalidArgument},
			message: "username must be provided if password is given",
		},
		{
			name:    "not a directory",
			err:     gitcmderrors.NewNotADirectoryError("/tmp/file"),
			matches: []error{gitcmderrors.ErrNotADirectory, gitcmderrors.ErrInvalidArgument},
			message: "'/tmp/file' is not a directory",
		},
		{
			name:    "unsupported git",
			err:     &gitcmderrors.UnsupportedGitVersionError{Found: "1.9.5", Minimum: "2.7.0"},
			matches: []error{gitcmderrors.ErrUnsupportedGitVersion},
			message: "git 1.9.5 is not supported, 2.7.0 or later is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.message)
			for _, target := range tt.matches {
				require.ErrorIs(t, tt.err, target)
				require.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), target)
			}
		})
	}

	require.NotErrorIs(t, gitcmderrors.NewNotInRepositoryError("/tmp"), gitcmderrors.ErrInvalidArgument)
}

func TestGitCommandError(t *testing.T) {
	cause := errors.New("exit status 128")
	err := gitcmderrors.NewGitCommandError("git", []string{"--version"}, "", "fatal: broken\n", cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "git command failed: git [--version]")
	require.Contains(t, err.Error(), "stderr: fatal: broken")

	var cmdErr *gitcmderrors.GitCommandError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &cmdErr)
	require.Equal(t, "fatal: broken\n", cmdErr.Stderr)
}
