// Package tag defines the data model shared by the extractor core and its
// tagger collaborators: the TIMEX output tag, the transient Extract/Match
// types produced during matching, and the Pattern contract that tagger
// packages implement against.
package tag

import (
	"regexp"
	"time"
)

// Category identifies which tagger family a Pattern belongs to.
type Category string

// Built-in categories, plus the caller-supplied custom category.
const (
	Custom   Category = "custom"
	Abstime  Category = "abstime"
	Duration Category = "duration"
	Reltime  Category = "reltime"
	Set      Category = "set"
)

// Type is the externally visible TIMEX type, derived from a Pattern's
// Category by the tagger that produces the tag.
type Type string

// TIMEX types.
const (
	Date         Type = "DATE"
	Time         Type = "TIME"
	DurationType Type = "DURATION"
	SetType      Type = "SET"
)

// Modifier is an optional TIMEX modifier.
type Modifier string

// Recognized modifiers.
const (
	Before       Modifier = "BEFORE"
	After        Modifier = "AFTER"
	EqualOrLess  Modifier = "EQUAL_OR_LESS"
	EqualOrMore  Modifier = "EQUAL_OR_MORE"
	Approx       Modifier = "APPROX"
	Start        Modifier = "START"
	Mid          Modifier = "MID"
	End          Modifier = "END"
	OnOrBefore   Modifier = "ON_OR_BEFORE"
	OnOrAfter    Modifier = "ON_OR_AFTER"
)

// Quant is an optional recurrence quantifier.
type Quant string

// Recognized quantifiers.
const (
	Every Quant = "EVERY"
)

// Span is a half-open character-offset range [Start, End) into the
// normalized text that produced a TIMEX.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Match is the character-offset view of a single regular-expression match
// handed to a Pattern's ParseFunc. Start/End are always in character (rune)
// units, never bytes: the core converts the regexp engine's byte offsets
// before building a Match.
type Match struct {
	Start  int
	End    int
	Text   string
	Groups []string
}

// Group returns the i'th capture group, or "" if it did not participate in
// the match or is out of range. Group(0) is always the whole match text.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}

	return m.Groups[i]
}

// ParseFunc builds a TIMEX from a Match against the Pattern that produced
// it. Implementations live in the tagger packages; the core never
// constructs TIMEX values itself except in the abbreviation expander, which
// invokes the originating Pattern's ParseFunc.
type ParseFunc func(m Match, p *Pattern) *TIMEX

// Pattern is an immutable, externally owned matcher: a compiled regular
// expression, the category it contributes to, a ParseFunc turning a match
// into a TIMEX, and any static modifiers the pattern always carries (e.g. a
// "〜前" pattern always carries Mod == Before).
type Pattern struct {
	Name     string
	Category Category
	Regexp   *regexp.Regexp
	Parse    ParseFunc
	Mod      Modifier
	Quant    Quant
}

// Extract couples a single regular-expression match to the Pattern and
// Category that produced it. Extracts are transient: they exist only
// between candidate extraction and deduplication.
type Extract struct {
	Category Category
	Match    Match
	Pattern  *Pattern
}

// TIMEX is the externally visible temporal tag produced by a Parser.
type TIMEX struct {
	TID        string     `json:"tid"`
	Type       Type       `json:"type"`
	Value      string     `json:"value"`
	Text       string     `json:"text"`
	Span       *Span      `json:"span,omitempty"`
	Mod        Modifier   `json:"mod,omitempty"`
	Quant      Quant      `json:"quant,omitempty"`
	Freq       string     `json:"freq,omitempty"`
	RangeStart bool       `json:"range_start,omitempty"`
	RangeEnd   bool       `json:"range_end,omitempty"`
	Reference  *time.Time `json:"reference,omitempty"`
	Pattern    *Pattern   `json:"-"`
}
