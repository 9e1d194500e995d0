package phonetic

import (
	"fmt"
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Deriver converts Chinese text to tone-marked pinyin and zhuyin.
type Deriver struct {
	tone  pinyin.Args // tone-marked syllables, e.g. chéng
	tone3 pinyin.Args // numbered syllables, e.g. cheng2, input for zhuyin
}

// NewDeriver creates a Deriver and probes the character table once. A
// failed probe means the lookup data is unusable and the run must not
// start at all.
func NewDeriver() (*Deriver, error) {
	d := &Deriver{
		tone:  pinyin.NewArgs(),
		tone3: pinyin.NewArgs(),
	}
	d.tone.Style = pinyin.Tone
	d.tone3.Style = pinyin.Tone3

	if len(pinyin.SinglePinyin('中', d.tone)) == 0 {
		return nil, fmt.Errorf("pinyin character table unavailable")
	}
	return d, nil
}

// Derive returns the tone-marked pinyin and the zhuyin reading for word,
// one syllable per character, joined with single spaces. Characters
// without a table entry (punctuation, Latin letters) pass through
// unchanged into both outputs at their position.
func (d *Deriver) Derive(word string) (string, string) {
	var pinyinSyls, zhuyinSyls []string

	for _, r := range word {
		marked := pinyin.SinglePinyin(r, d.tone)
		numbered := pinyin.SinglePinyin(r, d.tone3)
		if len(marked) == 0 || len(numbered) == 0 {
			pinyinSyls = append(pinyinSyls, string(r))
			zhuyinSyls = append(zhuyinSyls, string(r))
			continue
		}
		pinyinSyls = append(pinyinSyls, marked[0])
		zhuyinSyls = append(zhuyinSyls, toZhuyin(numbered[0]))
	}

	return strings.Join(pinyinSyls, " "), strings.Join(zhuyinSyls, " ")
}
