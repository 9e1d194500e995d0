// Package phonetic derives pinyin and zhuyin (bopomofo) readings from
// Chinese characters. Readings come from the go-pinyin character table;
// zhuyin is produced by decomposing numbered pinyin syllables with static
// initial/final tables. Characters without a reading pass through
// unchanged so the output stays aligned with the input characters.
package phonetic
