package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/derdiedas/internal/cli"
	"codeberg.org/snonux/derdiedas/internal/models"
	"codeberg.org/snonux/derdiedas/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Fold config file and environment values into the flags
	cli.ApplyConfig(flags)

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	p := processor.NewProcessor(flags)
	return p.Run(cmd.Context(), args)
}
