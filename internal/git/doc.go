// Package git runs a fixed set of git operations as child processes.
//
// Every operation launches the git binary with an explicit argument vector in
// the directory it targets (the path itself, or its parent for file paths) and
// returns the exit status together with the decoded standard output and error.
// Failures reported by git are returned in the Result, never as errors. Errors
// are reserved for structural problems detected before git runs: a path outside
// any repository, an unknown reset mode or an incomplete credential pair.
//
// The process working directory is never changed, so a Client may be shared
// between goroutines.
package git
