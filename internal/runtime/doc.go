// Package runtime provides the execution context for gitcmd commands.
//
// It carries the shared dependencies every command needs: the loaded
// configuration, the console/file logger and the git client built from both.
package runtime
