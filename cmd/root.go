// Package cmd wires the diff-headless and info subcommands with
// spf13/cobra, mirroring the teacher's cmd/root.go: a package-level
// slog.Logger set up in PersistentPreRun and shared by every subcommand
// through the logging package instead of being threaded as an argument.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgdelta/pgdelta-go/internal/version"
	"github.com/pgdelta/pgdelta-go/logging"
)

var debug bool

var RootCmd = &cobra.Command{
	Use:   "pgdelta",
	Short: "PostgreSQL schema differ and DDL generator",
	Long: fmt.Sprintf(`pgdelta compares two PostgreSQL schema snapshots and generates the
ordered DDL statements to migrate one into the other.

Version: %s %s`, version.Version(), version.Platform()),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	RootCmd.AddCommand(diffHeadlessCmd)
	RootCmd.AddCommand(infoCmd)
}

func setupLogger() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logging.SetGlobal(slog.New(handler), debug)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
