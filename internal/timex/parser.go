// Package timex implements the temporal-expression extraction pipeline:
// normalize, extract, filter, deduplicate, parse, annotate ranges, expand
// abbreviations, finalize. See Parser.
package timex

import (
	"time"

	"jatimex/internal/filter"
	"jatimex/internal/normalizer"
	"jatimex/internal/tag"
	"jatimex/internal/tagger/abstime"
	"jatimex/internal/tagger/duration"
	"jatimex/internal/tagger/reltime"
	"jatimex/internal/tagger/set"
)

// NumberNormalizer folds numeral surface variation ahead of extraction.
type NumberNormalizer interface {
	Normalize(s string) string
	SetIgnoreKansuji(ignore bool)
}

// Tagger supplies one category's ordered pattern list.
type Tagger interface {
	Patterns() []*tag.Pattern
}

// Parser runs the extraction pipeline against raw Japanese text. Its only
// per-call state is the most recent call's normalized text (see
// ProcessedText), which is unsynchronized, so a single instance may be
// reused but not shared concurrently — see internal/batch for running many
// Parse calls across goroutines, one Parser per goroutine. Construct with
// New.
type Parser struct {
	numberNormalizer NumberNormalizer
	abstimeTagger    Tagger
	durationTagger   Tagger
	reltimeTagger    Tagger
	setTagger        Tagger
	customTagger     Tagger
	filters          []filter.Filter
	reference        *time.Time
	ignoreKansuji    bool

	registry []registryEntry

	processedText string
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithNumberNormalizer overrides the default NumberNormalizer.
func WithNumberNormalizer(n NumberNormalizer) Option {
	return func(p *Parser) { p.numberNormalizer = n }
}

// WithCustomTagger registers an application-specific pattern set, extracted
// before the abstime/duration/reltime/set families in a "custom" category.
func WithCustomTagger(t Tagger) Option {
	return func(p *Parser) { p.customTagger = t }
}

// WithFilters overrides the default extract-rejection filter chain.
func WithFilters(filters []filter.Filter) Option {
	return func(p *Parser) { p.filters = filters }
}

// WithReference attaches a reference instant to every produced TIMEX.
func WithReference(reference time.Time) Option {
	return func(p *Parser) { p.reference = &reference }
}

// WithIgnoreKansuji disables kanji-numeral folding in normalization, so
// reltime/duration patterns written against literal kanji compounds (see
// internal/normalizer's protectedWords) are the only way such numerals are
// recognized.
func WithIgnoreKansuji(ignore bool) Option {
	return func(p *Parser) { p.ignoreKansuji = ignore }
}

// New constructs a Parser, defaulting every collaborator that wasn't
// supplied via an Option.
func New(opts ...Option) *Parser {
	p := &Parser{
		numberNormalizer: normalizer.New(),
		abstimeTagger:    abstime.New(),
		durationTagger:   duration.New(),
		reltimeTagger:    reltime.New(),
		setTagger:        set.New(),
		filters:          filter.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.numberNormalizer.SetIgnoreKansuji(p.ignoreKansuji)

	p.registry = buildRegistry(p)

	return p
}

// buildRegistry fixes the extraction order: custom (if configured), then
// abstime, duration, reltime, set. The order matters for dedup ties and for
// parseTags' deterministic iteration.
func buildRegistry(p *Parser) []registryEntry {
	var entries []registryEntry

	if p.customTagger != nil {
		entries = append(entries, registryEntry{category: tag.Custom, patterns: p.customTagger.Patterns()})
	}

	entries = append(entries,
		registryEntry{category: tag.Abstime, patterns: p.abstimeTagger.Patterns()},
		registryEntry{category: tag.Duration, patterns: p.durationTagger.Patterns()},
		registryEntry{category: tag.Reltime, patterns: p.reltimeTagger.Patterns()},
		registryEntry{category: tag.Set, patterns: p.setTagger.Patterns()},
	)

	return entries
}

// Parse extracts every temporal expression in rawText and returns the
// resulting tags in left-to-right (by span start) order with contiguous
// tid values.
func (p *Parser) Parse(rawText string) []*tag.TIMEX {
	processedText := p.numberNormalizer.Normalize(rawText)
	p.processedText = processedText
	runes := []rune(processedText)
	idx := newByteToCharIndex(processedText)

	extracts := extractAll(p.registry, processedText, idx)
	extracts = p.applyFilters(extracts, processedText)

	buckets := dedupe(extracts, idx.charLen())

	tags := p.parseTags(buckets)

	annotateRanges(tags, runes)
	tags = expandAbbreviations(tags, runes)
	tags = finalize(tags, p.reference)

	return tags
}

// ProcessedText returns the normalized text produced by the most recent
// Parse call, so callers can correlate a tag's Span against the text it was
// matched in. Unset (empty) until the first Parse call. Not safe to read
// concurrently with a Parse call on the same Parser — see the Parser doc.
func (p *Parser) ProcessedText() string {
	return p.processedText
}

func (p *Parser) applyFilters(extracts []tag.Extract, processedText string) []tag.Extract {
	var kept []tag.Extract

	for _, e := range extracts {
		rejected := false

		for _, f := range p.filters {
			if f.Filter(e, processedText) {
				rejected = true
				break
			}
		}

		if !rejected {
			kept = append(kept, e)
		}
	}

	return kept
}

// parseTags invokes each survivor's Pattern.Parse callback, walking the
// registry's fixed category order (not buckets' Go map order) so that
// output for a given input is deterministic across runs.
func (p *Parser) parseTags(buckets map[tag.Category][]tag.Extract) []*tag.TIMEX {
	var tags []*tag.TIMEX

	for _, entry := range p.registry {
		for _, e := range buckets[entry.category] {
			t := e.Pattern.Parse(e.Match, e.Pattern)
			if t == nil {
				continue
			}

			t.Span = &tag.Span{Start: e.Match.Start, End: e.Match.End}
			if t.Mod == "" {
				t.Mod = e.Pattern.Mod
			}
			if t.Quant == "" {
				t.Quant = e.Pattern.Quant
			}

			tags = append(tags, t)
		}
	}

	return tags
}
