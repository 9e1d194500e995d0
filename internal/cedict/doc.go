// Package cedict parses CC-CEDICT dictionary lines into typed entries.
// The format is one entry per line:
//
//	<traditional> <simplified> [<pinyin tokens>] /<gloss1>/<gloss2>/.../
//
// Lines starting with '#' are comments. Malformed lines are reported per
// line so a conversion run can skip them and continue.
package cedict
