package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile      string
	Compact      bool
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DeckName: "Chinese Vocabulary",
	}
}
