package main

import (
	"fmt"
	"os"

	"caselists/internal/cli"
	"caselists/internal/cli/commands"
	"caselists/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Variables from .env fill in what the environment does not set
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create root command
	rootCmd := &cobra.Command{
		Use:           "caselists",
		Short:         "Generate dEQP/GL-CTS test case lists",
		Long:          `Drive a built glcts binary to emit the test case lists of every conformance module and copy them into a destination directory.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
