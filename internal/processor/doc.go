// Package processor drives the conversion pipeline: it parses a
// CC-CEDICT file, derives the phonetic readings, writes the JSON
// output and optionally exports an Anki deck.
package processor
