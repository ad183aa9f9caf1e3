// Package set recognizes recurrence expressions ("毎年", "2日おき") and
// produces SET tags, optionally carrying tag.Every when the recurrence is
// phrased as an explicit interval ("Nおき").
package set

import (
	"regexp"
	"strconv"
	"strings"

	"jatimex/internal/tag"
)

var unitPeriod = map[string]struct {
	letter string
	clock  bool
}{
	"年":  {"Y", false},
	"ヶ月": {"M", false},
	"ヵ月": {"M", false},
	"か月": {"M", false},
	"カ月": {"M", false},
	"月":  {"M", false},
	"週間": {"W", false},
	"週":  {"W", false},
	"日":  {"D", false},
	"時間": {"H", true},
	"時":  {"H", true},
	"分":  {"M", true},
	"秒":  {"S", true},
}

const unitAlternation = `年|ヶ月|ヵ月|か月|カ月|週間|週|日|時間|時|分|秒|月`

var (
	everyIntervalRe = regexp.MustCompile(`(\d+(?:\.\d+)?)(` + unitAlternation + `)おき`)
	everyFixedRe    = regexp.MustCompile(`毎(年|月|週|日|時)`)
	weeklyFreqRe    = regexp.MustCompile(`週に(\d+)回`)
)

// Tagger holds the compiled recurrence patterns. The zero value is not
// usable; construct with New.
type Tagger struct {
	patterns []*tag.Pattern
}

// New compiles the recurrence pattern set: a fixed "毎X" form, an explicit
// "Nおき" interval form carrying tag.Every, and a "週にN回" frequency form.
func New() *Tagger {
	t := &Tagger{}

	t.patterns = []*tag.Pattern{
		{Name: "every_fixed", Category: tag.Set, Regexp: everyFixedRe, Parse: t.parseEveryFixed},
		{Name: "every_interval", Category: tag.Set, Regexp: everyIntervalRe, Quant: tag.Every, Parse: t.parseEveryInterval},
		{Name: "weekly_freq", Category: tag.Set, Regexp: weeklyFreqRe, Parse: t.parseWeeklyFreq},
	}

	return t
}

// Patterns returns the tagger's patterns in registration order.
func (t *Tagger) Patterns() []*tag.Pattern {
	return t.patterns
}

func (t *Tagger) parseEveryFixed(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	period := unitPeriod[m.Group(1)]

	return &tag.TIMEX{
		Type:    tag.SetType,
		Value:   formatPeriod(period, 1),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseEveryInterval(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	n, _ := strconv.ParseFloat(m.Group(1), 64)
	period := unitPeriod[m.Group(2)]

	return &tag.TIMEX{
		Type:    tag.SetType,
		Value:   formatPeriod(period, n),
		Text:    m.Text,
		Quant:   p.Quant,
		Pattern: p,
	}
}

// parseWeeklyFreq handles "週にN回" ("N times per week"), a frequency form
// rather than an interval form: the recurrence period is the week, and the
// count-per-period goes in Freq rather than Value.
func (t *Tagger) parseWeeklyFreq(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	return &tag.TIMEX{
		Type:    tag.SetType,
		Value:   "P1W",
		Freq:    m.Group(1) + "X",
		Text:    m.Text,
		Pattern: p,
	}
}

func formatPeriod(period struct {
	letter string
	clock  bool
}, n float64) string {
	num := strings.TrimSuffix(strconv.FormatFloat(n, 'f', -1, 64), ".0")
	if period.clock {
		return "PT" + num + period.letter
	}

	return "P" + num + period.letter
}
