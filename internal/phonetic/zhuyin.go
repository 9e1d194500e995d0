package phonetic

import "strings"

// Conversion tables from numbered pinyin syllables to zhuyin. A syllable
// decomposes into an optional initial, a final and a tone number; y/w
// spellings are normalized to their i/u/ü finals before lookup.

// zhuyinInitials maps pinyin initials to zhuyin symbols.
var zhuyinInitials = map[string]string{
	"b":  "ㄅ",
	"p":  "ㄆ",
	"m":  "ㄇ",
	"f":  "ㄈ",
	"d":  "ㄉ",
	"t":  "ㄊ",
	"n":  "ㄋ",
	"l":  "ㄌ",
	"g":  "ㄍ",
	"k":  "ㄎ",
	"h":  "ㄏ",
	"j":  "ㄐ",
	"q":  "ㄑ",
	"x":  "ㄒ",
	"zh": "ㄓ",
	"ch": "ㄔ",
	"sh": "ㄕ",
	"r":  "ㄖ",
	"z":  "ㄗ",
	"c":  "ㄘ",
	"s":  "ㄙ",
}

// zhuyinFinals maps pinyin finals to zhuyin symbols. The contracted
// spellings (iu, ui, un) and their full forms (iou, uei, uen) map to the
// same symbols; ü is written "v" as in numbered pinyin.
var zhuyinFinals = map[string]string{
	"a":    "ㄚ",
	"o":    "ㄛ",
	"e":    "ㄜ",
	"ai":   "ㄞ",
	"ei":   "ㄟ",
	"ao":   "ㄠ",
	"ou":   "ㄡ",
	"an":   "ㄢ",
	"en":   "ㄣ",
	"ang":  "ㄤ",
	"eng":  "ㄥ",
	"ong":  "ㄨㄥ",
	"er":   "ㄦ",
	"i":    "ㄧ",
	"ia":   "ㄧㄚ",
	"ie":   "ㄧㄝ",
	"iao":  "ㄧㄠ",
	"iu":   "ㄧㄡ",
	"iou":  "ㄧㄡ",
	"ian":  "ㄧㄢ",
	"in":   "ㄧㄣ",
	"iang": "ㄧㄤ",
	"ing":  "ㄧㄥ",
	"iong": "ㄩㄥ",
	"u":    "ㄨ",
	"ua":   "ㄨㄚ",
	"uo":   "ㄨㄛ",
	"uai":  "ㄨㄞ",
	"ui":   "ㄨㄟ",
	"uei":  "ㄨㄟ",
	"uan":  "ㄨㄢ",
	"un":   "ㄨㄣ",
	"uen":  "ㄨㄣ",
	"uang": "ㄨㄤ",
	"ueng": "ㄨㄥ",
	"v":    "ㄩ",
	"ve":   "ㄩㄝ",
	"van":  "ㄩㄢ",
	"vn":   "ㄩㄣ",
}

// zhuyinTones maps tone numbers to zhuyin tone marks. The first tone is
// unmarked; 5 is the neutral tone.
var zhuyinTones = map[byte]string{
	'1': "",
	'2': "ˊ",
	'3': "ˇ",
	'4': "ˋ",
	'5': "˙",
}

// pinyinInitials is ordered so the two-letter initials match before
// their one-letter prefixes.
var pinyinInitials = []string{
	"zh", "ch", "sh",
	"b", "p", "m", "f", "d", "t", "n", "l",
	"g", "k", "h", "j", "q", "x",
	"r", "z", "c", "s",
}

// sibilantInitials take a bare "i" final that has no zhuyin symbol of
// its own: zhi is ㄓ, not ㄓㄧ.
var sibilantInitials = map[string]bool{
	"zh": true, "ch": true, "sh": true, "r": true,
	"z": true, "c": true, "s": true,
}

// toZhuyin converts one numbered pinyin syllable ("cheng2") to zhuyin
// ("ㄔㄥˊ"). Syllables that do not decompose into a known initial and
// final are returned unchanged.
func toZhuyin(syllable string) string {
	s := strings.ToLower(syllable)
	s = strings.ReplaceAll(s, "ü", "v")
	s = strings.ReplaceAll(s, "u:", "v")

	// Numbered pinyin leaves the neutral tone without a digit.
	tone := byte('5')
	if n := len(s); n > 0 && s[n-1] >= '0' && s[n-1] <= '5' {
		tone = s[n-1]
		if tone == '0' {
			tone = '5'
		}
		s = s[:n-1]
	}
	if s == "" {
		return syllable
	}

	initial, final := splitSyllable(s)

	switch {
	case final == "i" && sibilantInitials[initial]:
		final = ""
	case strings.HasPrefix(final, "u") && (initial == "j" || initial == "q" || initial == "x"):
		// ju, qu, xu spell the ü final without its umlaut
		final = "v" + final[1:]
	}

	symbols := zhuyinInitials[initial]
	if final != "" {
		zf, ok := zhuyinFinals[final]
		if !ok {
			return syllable
		}
		symbols += zf
	}
	if symbols == "" {
		return syllable
	}
	return symbols + zhuyinTones[tone]
}

// splitSyllable normalizes y/w spellings and separates the initial from
// the final. The initial may be empty.
func splitSyllable(s string) (string, string) {
	s = normalizeSyllable(s)
	for _, initial := range pinyinInitials {
		if strings.HasPrefix(s, initial) {
			return initial, s[len(initial):]
		}
	}
	return "", s
}

// normalizeSyllable rewrites the y/w orthography to the underlying
// i/u/ü finals: yan -> ian, wu -> u, yue -> ve, wen -> uen.
func normalizeSyllable(s string) string {
	switch {
	case strings.HasPrefix(s, "yu"):
		return "v" + s[2:]
	case strings.HasPrefix(s, "yi"):
		return "i" + s[2:]
	case strings.HasPrefix(s, "y"):
		return "i" + s[1:]
	case strings.HasPrefix(s, "wu"):
		return "u" + s[2:]
	case strings.HasPrefix(s, "w"):
		return "u" + s[1:]
	}
	return s
}
