package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/cedict2json/internal/cedict"
)

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := DefaultGeneratorOptions()

	if opts.OutputPath != "anki_import.csv" {
		t.Errorf("Expected output path 'anki_import.csv', got '%s'", opts.OutputPath)
	}

	if !opts.IncludeHeaders {
		t.Error("Expected IncludeHeaders to be true")
	}
}

func TestNewGenerator(t *testing.T) {
	// Test with nil options
	gen := NewGenerator(nil)
	if gen == nil {
		t.Fatal("NewGenerator returned nil")
	}
	if gen.options == nil {
		t.Error("Generator options should not be nil")
	}

	// Test with custom options
	opts := &GeneratorOptions{
		OutputPath: "custom.csv",
	}
	gen = NewGenerator(opts)
	if gen.options.OutputPath != "custom.csv" {
		t.Errorf("Expected custom output path, got '%s'", gen.options.OutputPath)
	}
}

func TestAddCard(t *testing.T) {
	gen := NewGenerator(nil)

	card := Card{
		Traditional: "成語",
		Simplified:  "成语",
		Pinyin:      "chéng yǔ",
		Zhuyin:      "ㄔㄥˊ ㄩˇ",
		Meanings:    []string{"idiom (set expression)"},
		IsIdiom:     false,
	}

	gen.AddCard(card)

	if len(gen.cards) != 1 {
		t.Errorf("Expected 1 card, got %d", len(gen.cards))
	}

	if gen.cards[0].Traditional != "成語" {
		t.Errorf("Expected Traditional '成語', got '%s'", gen.cards[0].Traditional)
	}
}

func TestCardFromEntry(t *testing.T) {
	entry := cedict.Entry{
		Traditional: "一帆風順",
		Simplified:  "一帆风顺",
		Pinyin:      "yī fān fēng shùn",
		Zhuyin:      "ㄧ ㄈㄢ ㄈㄥ ㄕㄨㄣˋ",
		Meaning:     []string{"propitious wind throughout the journey (idiom)", "plain sailing"},
		IsIdiom:     true,
	}

	card := CardFromEntry(entry)

	if card.Traditional != entry.Traditional {
		t.Errorf("Traditional = %q, want %q", card.Traditional, entry.Traditional)
	}
	if card.Pinyin != entry.Pinyin {
		t.Errorf("Pinyin = %q, want %q", card.Pinyin, entry.Pinyin)
	}
	if !card.IsIdiom {
		t.Error("Expected IsIdiom to carry over")
	}
	if len(card.Meanings) != 2 {
		t.Errorf("Expected 2 meanings, got %d", len(card.Meanings))
	}
}

func TestAddEntries(t *testing.T) {
	gen := NewGenerator(nil)

	entries := []cedict.Entry{
		{Traditional: "成語", Simplified: "成语"},
		{Traditional: "簡體", Simplified: "简体"},
	}

	gen.AddEntries(entries)

	if len(gen.cards) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(gen.cards))
	}

	if gen.cards[1].Traditional != "簡體" {
		t.Errorf("Expected Traditional '簡體', got '%s'", gen.cards[1].Traditional)
	}
}

func TestGetCards(t *testing.T) {
	gen := NewGenerator(nil)

	gen.AddCard(Card{Traditional: "成語"})
	gen.AddCard(Card{Traditional: "簡體"})

	cards := gen.GetCards()
	if len(cards) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards))
	}

	// Test that we can modify the returned slice
	cards[0].Pinyin = "chéng yǔ"
	if gen.cards[0].Pinyin != "chéng yǔ" {
		t.Error("GetCards should return the actual slice, not a copy")
	}
}

func TestGenerateCSV(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})

	// Add test cards
	gen.AddCard(Card{
		Traditional: "成語",
		Simplified:  "成语",
		Pinyin:      "chéng yǔ",
		Zhuyin:      "ㄔㄥˊ ㄩˇ",
		Meanings:    []string{"idiom (set expression)", "CL:條|条[tiao2]"},
	})

	gen.AddCard(Card{
		Traditional: "一帆風順",
		Simplified:  "一帆风顺",
		Pinyin:      "yī fān fēng shùn",
		Zhuyin:      "ㄧ ㄈㄢ ㄈㄥ ㄕㄨㄣˋ",
		Meanings:    []string{"propitious wind throughout the journey (idiom)"},
		IsIdiom:     true,
	})

	// Generate CSV
	err := gen.GenerateCSV()
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Fatal("CSV file was not created")
	}

	// Read and verify content
	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	// Check headers
	if len(records) < 1 {
		t.Fatal("CSV file is empty")
	}

	expectedHeaders := []string{"Traditional", "Simplified", "Pinyin", "Zhuyin", "Meaning", "Tags"}
	if len(records[0]) != len(expectedHeaders) {
		t.Errorf("Expected %d columns, got %d", len(expectedHeaders), len(records[0]))
	}

	for i, header := range expectedHeaders {
		if records[0][i] != header {
			t.Errorf("Expected header '%s' at position %d, got '%s'", header, i, records[0][i])
		}
	}

	// Check data rows
	if len(records) < 3 {
		t.Fatal("CSV file has too few data rows")
	}

	if records[1][0] != "成語" {
		t.Errorf("Expected Traditional '成語', got '%s'", records[1][0])
	}

	if records[1][4] != "idiom (set expression); CL:條|条[tiao2]" {
		t.Errorf("Expected joined meaning field, got '%s'", records[1][4])
	}

	if records[1][5] != "" {
		t.Errorf("Expected empty tags for non-idiom, got '%s'", records[1][5])
	}

	if records[2][5] != "idiom" {
		t.Errorf("Expected 'idiom' tag, got '%s'", records[2][5])
	}
}

func TestGenerateCSVWithoutHeaders(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: false,
	})

	gen.AddCard(Card{
		Traditional: "成語",
	})

	err := gen.GenerateCSV()
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	// Read and verify no headers
	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("Expected 1 record (no headers), got %d", len(records))
	}

	if records[0][0] != "成語" {
		t.Errorf("First field should be '成語', got '%s'", records[0][0])
	}
}

func TestStats(t *testing.T) {
	gen := NewGenerator(nil)

	// Empty stats
	total, idioms := gen.Stats()
	if total != 0 || idioms != 0 {
		t.Errorf("Expected empty stats, got total=%d, idioms=%d", total, idioms)
	}

	gen.AddCard(Card{Traditional: "成語"})
	gen.AddCard(Card{Traditional: "一帆風順", IsIdiom: true})
	gen.AddCard(Card{Traditional: "簡體"})

	total, idioms = gen.Stats()
	if total != 3 {
		t.Errorf("Expected 3 total cards, got %d", total)
	}

	if idioms != 1 {
		t.Errorf("Expected 1 idiom card, got %d", idioms)
	}
}
