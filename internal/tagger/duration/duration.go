// Package duration recognizes explicit time-span expressions ("1時間半",
// "30年もの間", "15年ぶり") and produces DURATION tags, including the
// half-unit and elided-number forms ("半年", "四半世紀") Japanese favors
// over writing out a decimal.
package duration

import (
	"regexp"
	"strconv"
	"strings"

	"jatimex/internal/tag"
)

// unitPeriod maps a written unit to its ISO-8601-ish period letter and
// whether that letter belongs in the time-of-day (T-prefixed) segment.
var unitPeriod = map[string]struct {
	letter string
	clock  bool
}{
	"年":   {"Y", false},
	"ヶ月":  {"M", false},
	"ヵ月":  {"M", false},
	"か月":  {"M", false},
	"カ月":  {"M", false},
	"月":   {"M", false},
	"週間":  {"W", false},
	"日間":  {"D", false},
	"日":   {"D", false},
	"時間":  {"H", true},
	"分":   {"M", true},
	"秒":   {"S", true},
}

// unitAlternation lists units longest-first so the regexp engine's
// leftmost-first alternation prefers "日間" over the "日" it contains, and
// "ヶ月"/"ヵ月"/"か月"/"カ月" over the bare "月" they contain.
const unitAlternation = `年|ヶ月|ヵ月|か月|カ月|週間|日間|日|時間|分|秒|月`

// Tagger holds the compiled duration patterns. The zero value is not
// usable; construct with New.
type Tagger struct {
	patterns []*tag.Pattern
}

var (
	plainUnitRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)(` + unitAlternation + `)(目|ぶり|もの間)?(前|後)?`)
	halfNumberRe = regexp.MustCompile(`(\d+)(` + unitAlternation + `)半(ほど)?(前|後)?`)
	halfBareRe   = regexp.MustCompile(`半(年|日|月|週間|時間)(前|後)?`)
	quarterRe    = regexp.MustCompile(`四半世紀`)
)

// New compiles the duration pattern set, most specific first: a fixed
// quarter-century phrase, half-unit forms, then the general numeric+unit
// pattern that also absorbs the 目/ぶり/もの間 completion suffixes and a
// trailing 前/後 that sets Mod.
func New() *Tagger {
	t := &Tagger{}

	t.patterns = []*tag.Pattern{
		{Name: "quarter_century", Category: tag.Duration, Regexp: quarterRe, Parse: t.parseQuarterCentury},
		{Name: "half_number_unit", Category: tag.Duration, Regexp: halfNumberRe, Parse: t.parseHalfNumberUnit},
		{Name: "half_bare_unit", Category: tag.Duration, Regexp: halfBareRe, Parse: t.parseHalfBareUnit},
		{Name: "plain_unit", Category: tag.Duration, Regexp: plainUnitRe, Parse: t.parsePlainUnit},
	}

	return t
}

// Patterns returns the tagger's patterns in registration order.
func (t *Tagger) Patterns() []*tag.Pattern {
	return t.patterns
}

func (t *Tagger) parseQuarterCentury(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	return &tag.TIMEX{
		Type:    tag.DurationType,
		Value:   "P25Y",
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseHalfBareUnit(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	period := unitPeriod[m.Group(1)]

	tm := &tag.TIMEX{
		Type:    tag.DurationType,
		Value:   formatDuration(period, 0.5),
		Text:    m.Text,
		Pattern: p,
	}

	applyModSuffix(tm, m.Group(2))

	return tm
}

func (t *Tagger) parseHalfNumberUnit(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	n, _ := strconv.ParseFloat(m.Group(1), 64)
	period := unitPeriod[m.Group(2)]

	tm := &tag.TIMEX{
		Type:    tag.DurationType,
		Value:   formatDuration(period, n+0.5),
		Text:    m.Text,
		Pattern: p,
	}

	applyModSuffix(tm, m.Group(4))

	return tm
}

func (t *Tagger) parsePlainUnit(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	n, _ := strconv.ParseFloat(m.Group(1), 64)
	period := unitPeriod[m.Group(2)]

	tm := &tag.TIMEX{
		Type:    tag.DurationType,
		Value:   formatDuration(period, n),
		Text:    m.Text,
		Pattern: p,
	}

	applyModSuffix(tm, m.Group(4))

	return tm
}

func applyModSuffix(t *tag.TIMEX, suffix string) {
	switch suffix {
	case "前":
		t.Mod = tag.Before
	case "後":
		t.Mod = tag.After
	}
}

// formatDuration renders n in the unit's period letter, as a clock (T-
// prefixed) or calendar duration depending on the unit.
func formatDuration(period struct {
	letter string
	clock  bool
}, n float64) string {
	num := formatNumber(n)
	if period.clock {
		return "PT" + num + period.letter
	}

	return "P" + num + period.letter
}

func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	return strings.TrimSuffix(s, ".0")
}
