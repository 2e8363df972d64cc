package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pgdelta/pgdelta-go/internal/version"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print version and host information",
	RunE: func(cmd *cobra.Command, args []string) error {
		host, err := os.Hostname()
		if err != nil {
			host = "unknown"
		}
		fmt.Printf("pgdelta %s\n", version.Version())
		fmt.Printf("platform: %s\n", version.Platform())
		fmt.Printf("go: %s\n", runtime.Version())
		fmt.Printf("host: %s\n", host)
		return nil
	},
}
