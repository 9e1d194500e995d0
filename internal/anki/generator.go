package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/cedict2json/internal/cedict"
)

// Card represents a single Anki flashcard built from a dictionary entry
type Card struct {
	Traditional string   // Traditional-character headword
	Simplified  string   // Simplified-character headword
	Pinyin      string   // Tone-marked pinyin
	Zhuyin      string   // Zhuyin (bopomofo)
	Meanings    []string // English glosses in source order
	IsIdiom     bool     // Tagged "idiom" on export
}

// CardFromEntry converts a parsed dictionary entry into a flashcard.
func CardFromEntry(e cedict.Entry) Card {
	return Card{
		Traditional: e.Traditional,
		Simplified:  e.Simplified,
		Pinyin:      e.Pinyin,
		Zhuyin:      e.Zhuyin,
		Meanings:    e.Meaning,
		IsIdiom:     e.IsIdiom,
	}
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddEntries adds one card per dictionary entry, preserving entry order.
func (g *Generator) AddEntries(entries []cedict.Entry) {
	for _, e := range entries {
		g.AddCard(CardFromEntry(e))
	}
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if g.options.IncludeHeaders {
		headers := []string{"Traditional", "Simplified", "Pinyin", "Zhuyin", "Meaning", "Tags"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Traditional,
			card.Simplified,
			card.Pinyin,
			card.Zhuyin,
			formatMeaningField(card.Meanings),
			tagsField(card),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)

	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}

	return apkgGen.GenerateAPKG(outputPath)
}

// formatMeaningField joins the glosses into one Anki field
func formatMeaningField(meanings []string) string {
	return strings.Join(meanings, "; ")
}

// tagsField returns the Anki tags for a card
func tagsField(card Card) string {
	if card.IsIdiom {
		return "idiom"
	}
	return ""
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, idioms int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.IsIdiom {
			idioms++
		}
	}

	return
}
