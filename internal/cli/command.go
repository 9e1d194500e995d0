package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/cedict2json/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cedict2json <input> <output>",
		Short: "CC-CEDICT to JSON converter",
		Long: `cedict2json converts a CC-CEDICT dictionary file into a JSON array.

Each entry carries the traditional and simplified headwords, pinyin and
zhuyin (bopomofo) readings derived from the traditional characters, the
English glosses and an idiom flag.

Examples:
  cedict2json cedict_ts.u8 cedict.json          # Convert a dictionary
  cedict2json --compact cedict_ts.u8 out.json   # Single-line JSON output
  cedict2json --anki cedict_ts.u8 cedict.json   # Also export an Anki deck`,
		Args:    cobra.ExactArgs(2),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.cedict2json.yaml)")

	// Local flags
	cmd.Flags().BoolVar(&flags.Compact, "compact", false, "Write compact JSON instead of indented output")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for legacy CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate legacy CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.compact", cmd.Flags().Lookup("compact"))
	viper.BindPFlag("anki.enabled", cmd.Flags().Lookup("anki"))
	viper.BindPFlag("anki.csv", cmd.Flags().Lookup("anki-csv"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".cedict2json" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cedict2json")
	}

	// Environment variables
	viper.SetEnvPrefix("CEDICT2JSON")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
