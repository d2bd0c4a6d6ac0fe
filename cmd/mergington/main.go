// Package main is the entry point for the Mergington activities server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "mergington"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags holds command-line overrides. Zero values leave the environment
// configuration untouched.
type flags struct {
	port     int
	seedFile string
	logLevel string
}

func rootCmd() *cobra.Command {
	var f flags

	runServe := func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), f)
	}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Mergington High School activities API",
		Long: `Serves the extracurricular activities API and its web UI.

Activities are held in memory and seeded at startup, either from the
built-in dataset or from the YAML file named by MERGINGTON_SEED_FILE
or --seed. Roster changes are lost when the process exits; sending
SIGHUP restores the seed without a restart.

Running without a subcommand is the same as "serve".`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.PersistentFlags().IntVarP(&f.port, "port", "p", 0, "Port to listen on")
	cmd.PersistentFlags().StringVar(&f.seedFile, "seed", "", "Seed dataset YAML file (default: built-in)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Print the seed dataset as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSeed(cmd.OutOrStdout(), f)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, cfg.Version)
			return nil
		},
	})

	return cmd
}
