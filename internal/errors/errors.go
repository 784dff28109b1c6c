// Package errors provides sentinel errors and custom error types for gitcmd.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural failures. These are raised before any git
// process is launched.
var (
	// ErrNotInRepository indicates that a path does not lie inside a git repository
	ErrNotInRepository = errors.New("not inside a repository")

	// ErrInvalidArgument indicates a structurally invalid argument
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidResetMode indicates a reset mode outside soft/mixed/hard/merge/keep
	ErrInvalidResetMode = errors.New("invalid reset mode")

	// ErrMissingCredential indicates that only one half of a username/password pair was given
	ErrMissingCredential = errors.New("missing credential")

	// ErrNotADirectory indicates that an operation needing a directory was given something else
	ErrNotADirectory = errors.New("not a directory")

	// ErrUnsupportedGitVersion indicates that the installed git is too old
	ErrUnsupportedGitVersion = errors.New("unsupported git version")
)

// NotInRepositoryError represents an operation attempted outside a repository
type NotInRepositoryError struct {
	Path string
}

func (e *NotInRepositoryError) Error() string {
	return fmt.Sprintf("'%s' is not inside a repository", e.Path)
}

// Is returns true if the target error is ErrNotInRepository
func (e *NotInRepositoryError) Is(target error) bool {
	return target == ErrNotInRepository
}

// NewNotInRepositoryError creates a new NotInRepositoryError
func NewNotInRepositoryError(path string) *NotInRepositoryError {
	return &NotInRepositoryError{Path: path}
}

// InvalidResetModeError represents a reset requested with an unknown mode
type InvalidResetModeError struct {
	Mode string
}

func (e *InvalidResetModeError) Error() string {
	return fmt.Sprintf("invalid reset mode %q: mode must be one of 'soft', 'mixed', 'hard', 'merge' or 'keep'", e.Mode)
}

// Is returns true if the target error is ErrInvalidResetMode or ErrInvalidArgument
func (e *InvalidResetModeError) Is(target error) bool {
	return target == ErrInvalidResetMode || target == ErrInvalidArgument
}

// NewInvalidResetModeError creates a new InvalidResetModeError
func NewInvalidResetModeError(mode string) *InvalidResetModeError {
	return &InvalidResetModeError{Mode: mode}
}

// MissingCredentialError represents an incomplete username/password pair.
// Missing names the half that was not provided ("username" or "password").
type MissingCredentialError struct {
	Missing string
}

func (e *MissingCredentialError) Error() string {
	if e.Missing == "username" {
		return "username must be provided if password is given"
	}
	return "password must be provided if username is given"
}

// Is returns true if the target error is ErrMissingCredential or ErrInvalidArgument
func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential || target == ErrInvalidArgument
}

// NewMissingPasswordError creates a MissingCredentialError for an absent password
func NewMissingPasswordError() *MissingCredentialError {
	return &MissingCredentialError{Missing: "password"}
}

// NewMissingUsernameError creates a MissingCredentialError for an absent username
func NewMissingUsernameError() *MissingCredentialError {
	return &MissingCredentialError{Missing: "username"}
}

// NotADirectoryError represents a path that must be a directory but is not
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("'%s' is not a directory", e.Path)
}

// Is returns true if the target error is ErrNotADirectory or ErrInvalidArgument
func (e *NotADirectoryError) Is(target error) bool {
	return target == ErrNotADirectory || target == ErrInvalidArgument
}

// NewNotADirectoryError creates a new NotADirectoryError
func NewNotADirectoryError(path string) *NotADirectoryError {
	return &NotADirectoryError{Path: path}
}

// UnsupportedGitVersionError represents a git binary older than required
type UnsupportedGitVersionError struct {
	Found   string
	Minimum string
}

func (e *UnsupportedGitVersionError) Error() string {
	return fmt.Sprintf("git %s is not supported, %s or later is required", e.Found, e.Minimum)
}

// Is returns true if the target error is ErrUnsupportedGitVersion
func (e *UnsupportedGitVersionError) Is(target error) bool {
	return target == ErrUnsupportedGitVersion
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
