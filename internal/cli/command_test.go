package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "cedict2json <input> <output>" {
		t.Errorf("Expected Use to be 'cedict2json <input> <output>', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "CC-CEDICT to JSON converter") {
		t.Errorf("Expected Short description to contain 'CC-CEDICT to JSON converter'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"compact", true},
		{"anki", true},
		{"anki-csv", true},
		{"deck-name", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestCreateRootCommandArgs(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no args", []string{}, true},
		{"one arg", []string{"in.u8"}, true},
		{"two args", []string{"in.u8", "out.json"}, false},
		{"three args", []string{"in.u8", "out.json", "extra"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cmd.Args(cmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Args(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test deck name default
	deckFlag := cmd.Flags().Lookup("deck-name")
	if deckFlag == nil {
		t.Fatal("deck-name flag not found")
	}
	if deckFlag.DefValue != "Chinese Vocabulary" {
		t.Errorf("Expected default deck name to be 'Chinese Vocabulary', got %s", deckFlag.DefValue)
	}

	compactFlag := cmd.Flags().Lookup("compact")
	if compactFlag == nil {
		t.Fatal("compact flag not found")
	}
	if compactFlag.DefValue != "false" {
		t.Errorf("Expected compact to default to false, got %s", compactFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		cfgFile   string
		setupFunc func(t *testing.T) string
	}{
		{
			name:    "with config file",
			cfgFile: "test-config.yaml",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `output:
  compact: true
anki:
  deck_name: Test Deck`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name:    "without config file",
			cfgFile: "",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			if tt.cfgFile != "" && cfgPath != "" {
				tt.cfgFile = cfgPath
			}

			InitConfig(tt.cfgFile)

			// Test environment variable prefix
			os.Setenv("CEDICT2JSON_TEST_VAR", "test-value")
			defer os.Unsetenv("CEDICT2JSON_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("compact", "true")
	cmd.Flags().Set("deck-name", "HSK 1")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if !viper.GetBool("output.compact") {
		t.Error("Expected output.compact to be true")
	}

	if viper.GetString("anki.deck_name") != "HSK 1" {
		t.Errorf("Expected anki.deck_name to be 'HSK 1', got %s", viper.GetString("anki.deck_name"))
	}
}
