package main

import (
	"os"

	"gitcmd.dev/gitcmd/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	err := cli.Execute(rootCmd)
	os.Exit(cli.ExitCode(err, os.Stderr))
}
