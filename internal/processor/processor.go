package processor

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/cedict2json/internal"
	"codeberg.org/snonux/cedict2json/internal/anki"
	"codeberg.org/snonux/cedict2json/internal/cedict"
	"codeberg.org/snonux/cedict2json/internal/cli"
	"codeberg.org/snonux/cedict2json/internal/phonetic"
)

// Processor handles the main conversion logic
type Processor struct {
	flags   *cli.Flags
	deriver *phonetic.Deriver
}

// Stats tracks what happened to each input line
type Stats struct {
	TotalLines     int
	SkippedLines   int // blank lines and comments
	ParsedLines    int
	MalformedLines int
}

// NewProcessor creates a new conversion processor. It fails when the
// phonetic derivation tables cannot be loaded.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	deriver, err := phonetic.NewDeriver()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize phonetic derivation: %w", err)
	}
	return &Processor{
		flags:   flags,
		deriver: deriver,
	}, nil
}

// Run converts the input dictionary file and writes the JSON output.
// Malformed lines are reported on stderr and skipped; only startup
// problems (unreadable input, unwritable output) return an error.
func (p *Processor) Run(inputPath, outputPath string) error {
	fmt.Printf("Parsing CC-CEDICT file: %s\n", inputPath)

	entries, stats, err := p.ParseFile(inputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d entries\n", len(entries))

	if err := p.WriteJSON(entries, outputPath); err != nil {
		return err
	}

	fmt.Printf("Successfully saved %d entries to '%s'\n", len(entries), outputPath)

	if p.flags.GenerateAnki {
		if err := p.generateAnkiFile(entries, outputPath); err != nil {
			// Anki export is best effort, the JSON output already exists
			fmt.Fprintf(os.Stderr, "Warning: Anki export failed: %v\n", err)
		}
	}

	p.printSummary(entries, stats)
	return nil
}

// ParseFile reads the dictionary file line by line and returns the
// parsed entries in input order.
func (p *Processor) ParseFile(inputPath string) ([]cedict.Entry, Stats, error) {
	var stats Stats

	file, err := os.Open(inputPath)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	// Stays non-nil so an empty dictionary serializes as []
	entries := []cedict.Entry{}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		stats.TotalLines++

		entry, err := cedict.ParseLine(scanner.Text())
		if err != nil {
			if errors.Is(err, cedict.ErrSkipLine) {
				stats.SkippedLines++
				continue
			}
			var malformed *cedict.MalformedLineError
			if errors.As(err, &malformed) {
				fmt.Fprintf(os.Stderr, "Warning: skipping line %d: %v\n", lineNum, err)
				stats.MalformedLines++
				continue
			}
			return nil, stats, fmt.Errorf("failed to parse line %d: %w", lineNum, err)
		}

		entry.Pinyin, entry.Zhuyin = p.deriver.Derive(entry.Traditional)
		entries = append(entries, entry)
		stats.ParsedLines++
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read input file: %w", err)
	}

	return entries, stats, nil
}

// WriteJSON writes the entries as a JSON array, creating the output
// directory when needed.
func (p *Processor) WriteJSON(entries []cedict.Entry, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	if !p.flags.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// generateAnkiFile exports the entries as an Anki deck next to the
// JSON output.
func (p *Processor) generateAnkiFile(entries []cedict.Entry, outputPath string) error {
	outputDir := filepath.Dir(outputPath)

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     filepath.Join(outputDir, "anki_import.csv"),
		IncludeHeaders: true,
	})
	gen.AddEntries(entries)

	var ankiPath string
	if p.flags.AnkiCSV {
		ankiPath = filepath.Join(outputDir, "anki_import.csv")
		if err := gen.GenerateCSV(); err != nil {
			return fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		ankiPath = filepath.Join(outputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(ankiPath, p.flags.DeckName); err != nil {
			return fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, idioms := gen.Stats()
	fmt.Printf("Generated %d Anki cards (%d idioms) in '%s'\n", total, idioms, ankiPath)
	return nil
}

// printSummary prints conversion statistics
func (p *Processor) printSummary(entries []cedict.Entry, stats Stats) {
	idioms := 0
	for _, e := range entries {
		if e.IsIdiom {
			idioms++
		}
	}

	fmt.Printf("\n=== Conversion Summary ===\n")
	fmt.Printf("Total lines: %d\n", stats.TotalLines)
	fmt.Printf("Entries: %d\n", stats.ParsedLines)
	fmt.Printf("Idioms: %d\n", idioms)
	fmt.Printf("Comments/blank: %d\n", stats.SkippedLines)
	if stats.MalformedLines > 0 {
		fmt.Printf("Malformed (skipped): %d\n", stats.MalformedLines)
	}
	fmt.Printf("==========================\n")
}
