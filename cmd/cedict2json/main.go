package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/cedict2json/internal/cli"
	"codeberg.org/snonux/cedict2json/internal/processor"
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
	// Use config file values if not overridden by flags
	if !cmd.Flags().Changed("compact") && viper.IsSet("output.compact") {
		flags.Compact = viper.GetBool("output.compact")
	}
	if !cmd.Flags().Changed("anki") && viper.IsSet("anki.enabled") {
		flags.GenerateAnki = viper.GetBool("anki.enabled")
	}
	if !cmd.Flags().Changed("anki-csv") && viper.IsSet("anki.csv") {
		flags.AnkiCSV = viper.GetBool("anki.csv")
	}
	if !cmd.Flags().Changed("deck-name") && viper.IsSet("anki.deck_name") {
		flags.DeckName = viper.GetString("anki.deck_name")
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	return proc.Run(args[0], args[1])
}
