// Package normalizer folds the surface variation that Japanese temporal
// expressions are written with (full-width digits, kanji numerals) into a
// single arabic-digit form the taggers' regular expressions are written
// against. Era years are left as written; the abstime tagger resolves them.
// It is the first stage of the extraction pipeline.
package normalizer

import (
	"strconv"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// Normalizer is the pipeline's text-folding collaborator. The zero value is
// not usable; construct with New.
type Normalizer struct {
	ignoreKansuji bool
}

// Option configures a Normalizer at construction time.
type Option func(*Normalizer)

// WithIgnoreKansuji disables kanji-numeral folding, leaving compounds like
// "一昨日" and "四半世紀" untouched so patterns written against their literal
// kanji form keep matching. Tagger packages whose patterns rely on this
// (internal/tagger/reltime, internal/tagger/duration) pass it down from the
// Parser's own option of the same name.
func WithIgnoreKansuji(ignore bool) Option {
	return func(n *Normalizer) {
		n.ignoreKansuji = ignore
	}
}

// New constructs a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// SetIgnoreKansuji toggles kanji-numeral folding after construction, so a
// Parser can apply its own ignore_kansuji setting uniformly regardless of
// which NumberNormalizer implementation it was given.
func (n *Normalizer) SetIgnoreKansuji(ignore bool) {
	n.ignoreKansuji = ignore
}

// protectedWords are kanji-numeral compounds that must survive folding
// unchanged: the reltime and duration taggers match these literal kanji
// forms directly (see original_source/tests/test_timex.py's
// test_ignore_number_normalize), so folding "一" out of "一昨日" would turn it
// into "1昨日" and break that pattern rather than simplify it.
var protectedWords = []string{"一昨昨日", "一昨々日", "一昨日", "一昨年", "四半世紀"}

// Normalize folds full-width digits and (unless disabled) kanji numerals to
// arabic digits, masking protectedWords first so they pass through intact.
func (n *Normalizer) Normalize(s string) string {
	masked, restore := maskProtected(s)

	folded := foldZenkakuDigits(masked)
	if !n.ignoreKansuji {
		folded = foldKansuji(folded)
	}

	return restore(folded)
}

// Segments splits s into words using the Unicode word-boundary algorithm
// (uax29). Normalize does not use it: folding is applied to the whole
// string.
func Segments(s string) []string {
	var out []string

	segs := words.FromString(s)
	for segs.Next() {
		out = append(out, segs.Value().String())
	}

	return out
}

const placeholder = '' // private-use-area sentinel, never appears in input

func maskProtected(s string) (string, func(string) string) {
	var found []string

	masked := s
	for _, w := range protectedWords {
		for strings.Contains(masked, w) {
			idx := strings.Index(masked, w)
			token := string(placeholder) + strconv.Itoa(len(found)) + string(placeholder)
			masked = masked[:idx] + token + masked[idx+len(w):]
			found = append(found, w)
		}
	}

	restore := func(folded string) string {
		for i, w := range found {
			token := string(placeholder) + strconv.Itoa(i) + string(placeholder)
			folded = strings.Replace(folded, token, w, 1)
		}

		return folded
	}

	return masked, restore
}

var zenkakuDigits = map[rune]rune{
	'０': '0', '１': '1', '２': '2', '３': '3', '４': '4',
	'５': '5', '６': '6', '７': '7', '８': '8', '９': '9',
}

func foldZenkakuDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if folded, ok := zenkakuDigits[r]; ok {
			b.WriteRune(folded)
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// kansujiDigits maps single-kanji digits to their arabic value. 〇 and 零
// both fold to 0.
var kansujiDigits = map[rune]int{
	'〇': 0, '零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var kansujiUnits = map[rune]int{
	'十': 10, '百': 100, '千': 1000,
}

var kansujiBigUnits = map[rune]int{
	'万': 10000, '億': 100000000,
}

// foldKansuji rewrites runs of kanji-numeral runes into an arabic-digit
// string, honoring the positional-unit grammar (十=10, 百=100, 千=1000,
// 万=10000) rather than treating each kanji as an independent digit.
func foldKansuji(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(runes))

	i := 0
	for i < len(runes) {
		if !isKansujiRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && isKansujiRune(runes[j]) {
			j++
		}

		value := parseKansujiRun(runes[i:j])
		b.WriteString(strconv.Itoa(value))
		i = j
	}

	return b.String()
}

func isKansujiRune(r rune) bool {
	if _, ok := kansujiDigits[r]; ok {
		return true
	}
	if _, ok := kansujiUnits[r]; ok {
		return true
	}
	if _, ok := kansujiBigUnits[r]; ok {
		return true
	}

	return false
}

// parseKansujiRun evaluates a contiguous run of kanji-numeral runes,
// e.g. 二十三 -> 23, 三百 -> 300, 一万二千 -> 12000.
func parseKansujiRun(runes []rune) int {
	total := 0
	section := 0 // accumulates below the current big-unit boundary
	current := 0 // digit pending a unit multiplier

	for _, r := range runes {
		switch {
		case isDigitRune(r):
			current = kansujiDigits[r]
		case isUnitRune(r):
			mult := kansujiUnits[r]
			if current == 0 {
				current = 1
			}
			section += current * mult
			current = 0
		case isBigUnitRune(r):
			if current != 0 {
				section += current
				current = 0
			}
			if section == 0 {
				section = 1
			}
			total += section * kansujiBigUnits[r]
			section = 0
		}
	}

	return total + section + current
}

func isDigitRune(r rune) bool {
	_, ok := kansujiDigits[r]
	return ok
}

func isUnitRune(r rune) bool {
	_, ok := kansujiUnits[r]
	return ok
}

func isBigUnitRune(r rune) bool {
	_, ok := kansujiBigUnits[r]
	return ok
}
