// Package abstime recognizes absolute calendar dates and clock times
// ("2021年7月18日", "18:00", "朝9時") and produces DATE/TIME tags whose
// missing components are rendered as "XX" placeholders, mirroring
// ja_timex's AbstimeTagger.
package abstime

import (
	"fmt"
	"regexp"
	"strconv"

	"jatimex/internal/tag"
)

// eraStart maps an era name to the Gregorian year its first year (元年)
// falls in, so "令和3年" resolves to 2019+3-1 = 2021.
var eraStart = map[string]int{
	"明治": 1868,
	"大正": 1912,
	"昭和": 1926,
	"平成": 1989,
	"令和": 2019,
}

const eraAlternation = `明治|大正|昭和|平成|令和`

// Tagger holds the compiled absolute-time patterns. The zero value is not
// usable; construct with New.
type Tagger struct {
	patterns []*tag.Pattern
}

// New compiles the absolute-time pattern set in priority order: the most
// specific (full date) pattern first so that, at equal match length, it
// never loses to a more general one — though dedup's length-then-category
// tie-break does the real work across categories.
func New() *Tagger {
	t := &Tagger{}

	t.patterns = []*tag.Pattern{
		{Name: "era_full_date", Category: tag.Abstime, Regexp: regexp.MustCompile(`(`+eraAlternation+`)(\d{1,2}|元)年(\d{1,2})月(\d{1,2})日`), Parse: t.parseEraFullDate},
		{Name: "era_year_month", Category: tag.Abstime, Regexp: regexp.MustCompile(`(`+eraAlternation+`)(\d{1,2}|元)年(\d{1,2})月`), Parse: t.parseEraYearMonth},
		{Name: "era_year_only", Category: tag.Abstime, Regexp: regexp.MustCompile(`(`+eraAlternation+`)(\d{1,2}|元)年`), Parse: t.parseEraYearOnly},
		{Name: "full_date", Category: tag.Abstime, Regexp: regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`), Parse: t.parseFullDate},
		{Name: "year_month", Category: tag.Abstime, Regexp: regexp.MustCompile(`(\d{4})年(\d{1,2})月`), Parse: t.parseYearMonth},
		{Name: "month_day", Category: tag.Abstime, Regexp: regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`), Parse: t.parseMonthDay},
		{Name: "year_only", Category: tag.Abstime, Regexp: regexp.MustCompile(`(\d{4})年`), Parse: t.parseYearOnly},
		{Name: "month_only", Category: tag.Abstime, Regexp: regexp.MustCompile(`(\d{1,2})月`), Parse: t.parseMonthOnly},
		{Name: "day_only", Category: tag.Abstime, Regexp: regexp.MustCompile(`(\d{1,2})日`), Parse: t.parseDayOnly},
		{Name: "slash_date", Category: tag.Abstime, Regexp: regexp.MustCompile(`(\d{1,2})/(\d{1,2})`), Parse: t.parseSlashDate},
		{Name: "time_colon", Category: tag.Abstime, Regexp: regexp.MustCompile(`(\d{1,2})[:：](\d{2})(?:[:：](\d{2}))?`), Parse: t.parseTimeColon},
		{Name: "hour_ampm", Category: tag.Abstime, Regexp: regexp.MustCompile(`(朝|今夜|夜|午前|午後)?(\d{1,2})時(半)?`), Parse: t.parseHourAMPM},
	}

	return t
}

// Patterns returns the tagger's patterns in registration order.
func (t *Tagger) Patterns() []*tag.Pattern {
	return t.patterns
}

// eraYear resolves an era name and its in-era year (or "元" for the era's
// first year) to a Gregorian year.
func eraYear(era, yearText string) int {
	n := 1
	if yearText != "元" {
		n, _ = strconv.Atoi(yearText)
	}

	return eraStart[era] + n - 1
}

func (t *Tagger) parseEraFullDate(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	y := eraYear(m.Group(1), m.Group(2))
	mo, _ := strconv.Atoi(m.Group(3))
	d, _ := strconv.Atoi(m.Group(4))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("%04d-%02d-%02d", y, mo, d),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseEraYearMonth(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	y := eraYear(m.Group(1), m.Group(2))
	mo, _ := strconv.Atoi(m.Group(3))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("%04d-%02d-XX", y, mo),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseEraYearOnly(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	y := eraYear(m.Group(1), m.Group(2))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("%04d-XX-XX", y),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseFullDate(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	y, _ := strconv.Atoi(m.Group(1))
	mo, _ := strconv.Atoi(m.Group(2))
	d, _ := strconv.Atoi(m.Group(3))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("%04d-%02d-%02d", y, mo, d),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseYearMonth(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	y, _ := strconv.Atoi(m.Group(1))
	mo, _ := strconv.Atoi(m.Group(2))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("%04d-%02d-XX", y, mo),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseMonthDay(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	mo, _ := strconv.Atoi(m.Group(1))
	d, _ := strconv.Atoi(m.Group(2))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("XXXX-%02d-%02d", mo, d),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseYearOnly(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	y, _ := strconv.Atoi(m.Group(1))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("%04d-XX-XX", y),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseMonthOnly(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	mo, _ := strconv.Atoi(m.Group(1))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("XXXX-%02d-XX", mo),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseDayOnly(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	d, _ := strconv.Atoi(m.Group(1))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("XXXX-XX-%02d", d),
		Text:    m.Text,
		Pattern: p,
	}
}

// parseSlashDate treats "M/D" as a bare month/day, the form product release
// dates and calendars most often use.
func (t *Tagger) parseSlashDate(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	mo, _ := strconv.Atoi(m.Group(1))
	d, _ := strconv.Atoi(m.Group(2))

	return &tag.TIMEX{
		Type:    tag.Date,
		Value:   fmt.Sprintf("XXXX-%02d-%02d", mo, d),
		Text:    m.Text,
		Pattern: p,
	}
}

func (t *Tagger) parseTimeColon(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	h, _ := strconv.Atoi(m.Group(1))
	mi, _ := strconv.Atoi(m.Group(2))

	sec := "XX"
	if s := m.Group(3); s != "" {
		n, _ := strconv.Atoi(s)
		sec = fmt.Sprintf("%02d", n)
	}

	return &tag.TIMEX{
		Type:    tag.Time,
		Value:   fmt.Sprintf("T%02d-%02d-%s", h, mi, sec),
		Text:    m.Text,
		Pattern: p,
	}
}

// parseHourAMPM shifts the hour into 24-hour form when a 夜/今夜/午後 prefix
// is present and the written hour is still in its 12-hour form; 朝 and 午前
// never shift. A trailing 半 ("半" = half-past) fixes the minute at 30
// instead of leaving it as an "XX" placeholder.
func (t *Tagger) parseHourAMPM(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	h, _ := strconv.Atoi(m.Group(2))

	switch m.Group(1) {
	case "夜", "今夜", "午後":
		if h < 12 {
			h += 12
		}
	}

	minute := "XX"
	if m.Group(3) == "半" {
		minute = "30"
	}

	return &tag.TIMEX{
		Type:    tag.Time,
		Value:   fmt.Sprintf("T%02d-%s-XX", h, minute),
		Text:    m.Text,
		Pattern: p,
	}
}
