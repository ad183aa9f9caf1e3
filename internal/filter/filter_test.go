package filter

import (
	"testing"

	"jatimex/internal/tag"
)

func TestDecimalFilter(t *testing.T) {
	f := DecimalFilter{}

	abstime := tag.Extract{Category: tag.Abstime, Match: tag.Match{Text: "0.5"}}
	if !f.Filter(abstime, "0.5") {
		t.Errorf("expected bare decimal abstime match to be rejected")
	}

	duration := tag.Extract{Category: tag.Duration, Match: tag.Match{Text: "0.5"}}
	if f.Filter(duration, "0.5") {
		t.Errorf("DURATION matches must be exempt from DecimalFilter")
	}

	nonDecimal := tag.Extract{Category: tag.Abstime, Match: tag.Match{Text: "2021"}}
	if f.Filter(nonDecimal, "2021") {
		t.Errorf("non-decimal abstime match should not be rejected")
	}
}

func TestNumexpFilter(t *testing.T) {
	f := NumexpFilter{}
	text := "12345"

	// A match for "234" sitting inside "12345" is adjacent to digits on
	// both sides and must be rejected.
	e := tag.Extract{Match: tag.Match{Start: 1, End: 4, Text: "234"}}
	if !f.Filter(e, text) {
		t.Errorf("expected digit-adjacent match to be rejected")
	}

	// A whole-string match has no extra digits outside it.
	whole := tag.Extract{Match: tag.Match{Start: 0, End: 5, Text: "12345"}}
	if f.Filter(whole, text) {
		t.Errorf("whole-string match should survive")
	}
}

func TestPartialNumFilter(t *testing.T) {
	f := PartialNumFilter{}
	text := "123日"

	// "23日" starting at rune index 1 has a digit immediately before it.
	e := tag.Extract{Match: tag.Match{Start: 1, End: 4, Text: "23日"}}
	if !f.Filter(e, text) {
		t.Errorf("expected partial numeric leading component to be rejected")
	}

	full := tag.Extract{Match: tag.Match{Start: 0, End: 4, Text: "123日"}}
	if f.Filter(full, text) {
		t.Errorf("full numeric leading component should survive")
	}
}

func TestDefaultExcept(t *testing.T) {
	if got := len(DefaultExcept(nil)); got != len(Default()) {
		t.Errorf("DefaultExcept(nil) returned %d filters, want %d", got, len(Default()))
	}

	only := DefaultExcept([]string{"numexp", "partial_num"})
	if len(only) != 1 {
		t.Fatalf("DefaultExcept([numexp, partial_num]) returned %d filters, want 1", len(only))
	}

	if _, ok := only[0].(DecimalFilter); !ok {
		t.Errorf("DefaultExcept([numexp, partial_num]) left %T, want DecimalFilter", only[0])
	}

	if got := len(DefaultExcept([]string{"not_a_real_filter"})); got != len(Default()) {
		t.Errorf("unrecognized name should be ignored, got %d filters, want %d", got, len(Default()))
	}
}
