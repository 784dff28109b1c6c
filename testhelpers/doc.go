// Package testhelpers provides testing utilities for gitcmd: isolated git
// environments, repository fixtures and assertions.
package testhelpers
