// Package validator validates application-contributed custom pattern
// configuration before it is wired into the "custom" tagger category,
// adapted from the teacher's markdown-structure validator to validate
// pattern configuration instead of document structure.
package validator

import (
	"errors"
	"fmt"
	"regexp"

	"jatimex/internal/config"
	"jatimex/internal/tag"
)

// Validation errors.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidPattern  = errors.New("pattern is not a valid regular expression")
	ErrUnknownCategory = errors.New("category is not recognized")
	ErrUnknownModifier = errors.New("mod is not a recognized modifier")
	ErrUnknownQuant    = errors.New("quant is not a recognized quantifier")
)

var categories = map[string]tag.Category{
	"abstime":  tag.Abstime,
	"duration": tag.Duration,
	"reltime":  tag.Reltime,
	"set":      tag.Set,
}

var modifiers = map[string]tag.Modifier{
	"":              "",
	"BEFORE":        tag.Before,
	"AFTER":         tag.After,
	"EQUAL_OR_LESS": tag.EqualOrLess,
	"EQUAL_OR_MORE": tag.EqualOrMore,
	"APPROX":        tag.Approx,
	"START":         tag.Start,
	"MID":           tag.Mid,
	"END":           tag.End,
	"ON_OR_BEFORE":  tag.OnOrBefore,
	"ON_OR_AFTER":   tag.OnOrAfter,
}

var quants = map[string]tag.Quant{
	"":      "",
	"EVERY": tag.Every,
}

// CustomTagger is a tag.Pattern list satisfying internal/timex.Tagger,
// built by Compile from validated configuration.
type CustomTagger struct {
	patterns []*tag.Pattern
}

// Patterns returns the tagger's compiled patterns.
func (c *CustomTagger) Patterns() []*tag.Pattern {
	return c.patterns
}

// Compile validates every entry in patterns and, if all are valid, compiles
// them into a CustomTagger. On the first invalid entry it returns an error
// identifying which entry and why, matching the teacher validator's
// per-field error style.
func Compile(patterns []config.CustomPattern) (*CustomTagger, error) {
	t := &CustomTagger{}

	for i, cp := range patterns {
		pattern, err := compileOne(cp)
		if err != nil {
			return nil, fmt.Errorf("custom_patterns[%d] %q: %w", i, cp.Name, err)
		}

		t.patterns = append(t.patterns, pattern)
	}

	return t, nil
}

func compileOne(cp config.CustomPattern) (*tag.Pattern, error) {
	if cp.Name == "" {
		return nil, ErrNameRequired
	}

	re, err := regexp.Compile(cp.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	category, ok := categories[cp.Category]
	if !ok {
		return nil, ErrUnknownCategory
	}

	mod, ok := modifiers[cp.Mod]
	if !ok {
		return nil, ErrUnknownModifier
	}

	quant, ok := quants[cp.Quant]
	if !ok {
		return nil, ErrUnknownQuant
	}

	return &tag.Pattern{
		Name:     cp.Name,
		Category: category,
		Regexp:   re,
		Mod:      mod,
		Quant:    quant,
		Parse:    literalParse,
	}, nil
}

// literalParse is the default parse callback for custom patterns: the raw
// match text becomes the TIMEX's value verbatim, and Type is derived from
// the pattern's own Category the same way the built-in taggers derive it.
// Applications needing richer value construction supply their own Tagger
// instead of going through Compile.
func literalParse(m tag.Match, p *tag.Pattern) *tag.TIMEX {
	return &tag.TIMEX{
		Type:    typeForCategory(p.Category),
		Value:   m.Text,
		Text:    m.Text,
		Pattern: p,
	}
}

// typeForCategory derives a TIMEX Type from a Pattern's Category, matching
// the built-in taggers: abstime produces DATE (or TIME, but a custom
// pattern has no way to distinguish the two beyond its category, so it
// defaults to DATE), duration and reltime both produce DURATION, and set
// produces SET.
func typeForCategory(c tag.Category) tag.Type {
	switch c {
	case tag.Duration, tag.Reltime:
		return tag.DurationType
	case tag.Set:
		return tag.SetType
	default:
		return tag.Date
	}
}
