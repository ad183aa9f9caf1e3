package timex

import (
	"testing"
	"time"

	"jatimex/internal/tag"
)

func tidsAndValues(t *testing.T, tags []*tag.TIMEX) []string {
	t.Helper()

	out := make([]string, len(tags))
	for i, tg := range tags {
		out[i] = tg.Value
	}

	return out
}

func TestParse_FullDate(t *testing.T) {
	p := New()

	got := p.Parse("2021年7月18日に行われた会議")
	if len(got) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "2021-07-18" {
		t.Errorf("Value = %q, want 2021-07-18", got[0].Value)
	}

	if got[0].Type != tag.Date {
		t.Errorf("Type = %q, want DATE", got[0].Type)
	}

	if got[0].TID != "t0" {
		t.Errorf("TID = %q, want t0", got[0].TID)
	}
}

func TestParse_AmbiguousDayWinsAsDate(t *testing.T) {
	p := New()

	got := p.Parse("28日に提出する")
	if len(got) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Type != tag.Date {
		t.Errorf("Type = %q, want DATE (abstime wins the tie over duration)", got[0].Type)
	}

	if got[0].Value != "XXXX-XX-28" {
		t.Errorf("Value = %q, want XXXX-XX-28", got[0].Value)
	}
}

func TestParse_CompletionSuffixWinsAsDuration(t *testing.T) {
	p := New()

	got := p.Parse("8日目にして完成した")
	if len(got) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Type != tag.DurationType {
		t.Errorf("Type = %q, want DURATION (longer match wins over day_only)", got[0].Type)
	}

	if got[0].Value != "P8D" {
		t.Errorf("Value = %q, want P8D", got[0].Value)
	}

	if got[0].Text != "8日目" {
		t.Errorf("Text = %q, want 8日目", got[0].Text)
	}
}

func TestParse_RangeExpressionAcrossTwoDates(t *testing.T) {
	p := New()

	got := p.Parse("1901年〜2000年")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	if !got[0].RangeStart {
		t.Errorf("tags[0].RangeStart = false, want true")
	}

	if !got[1].RangeEnd {
		t.Errorf("tags[1].RangeEnd = false, want true")
	}
}

func TestParse_RangeExpressionKaraDou(t *testing.T) {
	p := New()

	got := p.Parse("午後1時半から同3時半に再開する")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "T13-30-XX" || got[1].Value != "T03-30-XX" {
		t.Errorf("Values = %q, %q, want T13-30-XX, T03-30-XX", got[0].Value, got[1].Value)
	}

	if !got[0].RangeStart {
		t.Errorf("tags[0].RangeStart = false, want true (から同 links same-type TIME tags)")
	}

	if !got[1].RangeEnd {
		t.Errorf("tags[1].RangeEnd = false, want true (から同 links same-type TIME tags)")
	}
}

func TestParse_RangeExpressionKaraYoku(t *testing.T) {
	p := New()

	got := p.Parse("7月18日から翌7月19日にかけて")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "XXXX-07-18" || got[1].Value != "XXXX-07-19" {
		t.Errorf("Values = %q, %q, want XXXX-07-18, XXXX-07-19", got[0].Value, got[1].Value)
	}

	if !got[0].RangeStart {
		t.Errorf("tags[0].RangeStart = false, want true (から翌 links same-type DATE tags)")
	}

	if !got[1].RangeEnd {
		t.Errorf("tags[1].RangeEnd = false, want true (から翌 links same-type DATE tags)")
	}
}

func TestParse_FullWidthColonTime(t *testing.T) {
	p := New()

	got := p.Parse("１８：００に集合してください")
	if len(got) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "T18-00-XX" {
		t.Errorf("Value = %q, want T18-00-XX", got[0].Value)
	}
}

func TestParse_SlashDateRange(t *testing.T) {
	p := New()

	got := p.Parse("2/1〜2/14の開催期間")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "XXXX-02-01" || got[1].Value != "XXXX-02-14" {
		t.Errorf("Values = %q, %q, want XXXX-02-01, XXXX-02-14", got[0].Value, got[1].Value)
	}

	if !got[0].RangeStart || !got[1].RangeEnd {
		t.Errorf("slash-date range not annotated: tags[0].RangeStart=%v tags[1].RangeEnd=%v", got[0].RangeStart, got[1].RangeEnd)
	}
}

func TestParse_DurationNeverTakesRange(t *testing.T) {
	p := New()

	got := p.Parse("今週から3日間も雨が降り続いている")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].RangeStart {
		t.Errorf("tags[0].RangeStart = true, want false (DURATION never anchors a range)")
	}

	if got[1].RangeEnd {
		t.Errorf("tags[1].RangeEnd = true, want false (DURATION never anchors a range)")
	}
}

func TestParse_AbbreviatedRangeRecoversElidedUnit(t *testing.T) {
	p := New()

	got := p.Parse("1から2日前の出来事")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Text != "1" {
		t.Errorf("tags[0].Text = %q, want 1", got[0].Text)
	}

	if got[0].Value != "P1D" {
		t.Errorf("tags[0].Value = %q, want P1D", got[0].Value)
	}

	if got[0].Mod != tag.Before {
		t.Errorf("tags[0].Mod = %q, want BEFORE", got[0].Mod)
	}

	if got[1].Value != "P2D" || got[1].Mod != tag.Before {
		t.Errorf("tags[1] = %+v, want Value=P2D Mod=BEFORE", got[1])
	}
}

func TestParse_WeeklyFrequencyAndDurationTogether(t *testing.T) {
	p := New()

	got := p.Parse("彼は2008年4月から週に3回ジョギングを1時間行ってきた")
	if len(got) != 3 {
		t.Fatalf("got %d tags, want 3: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "2008-04-XX" {
		t.Errorf("tags[0].Value = %q, want 2008-04-XX", got[0].Value)
	}

	if got[1].Type != tag.SetType || got[1].Value != "P1W" || got[1].Freq != "3X" {
		t.Errorf("tags[1] = %+v, want Type=SET Value=P1W Freq=3X", got[1])
	}

	if got[2].Value != "PT1H" {
		t.Errorf("tags[2].Value = %q, want PT1H", got[2].Value)
	}
}

func TestParse_KansujiFoldedBeforeExtraction(t *testing.T) {
	p := New()

	got := p.Parse("二十三日に会おう")
	if len(got) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "XXXX-XX-23" {
		t.Errorf("Value = %q, want XXXX-XX-23", got[0].Value)
	}
}

func TestParse_RelativeKanjiPhrasesSurviveKansujiFolding(t *testing.T) {
	p := New()

	got := p.Parse("一昨日の出来事と一昨年の話")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "P2D" {
		t.Errorf("tags[0].Value = %q, want P2D", got[0].Value)
	}

	if got[1].Value != "P2Y" {
		t.Errorf("tags[1].Value = %q, want P2Y", got[1].Value)
	}
}

func TestParse_EraYearResolves(t *testing.T) {
	p := New()

	got := p.Parse("令和3年4月1日に開業した")
	if len(got) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "2021-04-01" {
		t.Errorf("Value = %q, want 2021-04-01", got[0].Value)
	}
}

func TestParse_EveryFixedRecurrence(t *testing.T) {
	p := New()

	got := p.Parse("毎年恒例の行事だ")
	if len(got) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Type != tag.SetType || got[0].Value != "P1Y" {
		t.Errorf("tags[0] = %+v, want Type=SET Value=P1Y", got[0])
	}
}

func TestParse_HalfHourDurationWithModifier(t *testing.T) {
	p := New()

	got := p.Parse("今から1時間半後に始めます")
	if len(got) != 1 {
		t.Fatalf("got %d tags, want 1: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].Value != "PT1.5H" {
		t.Errorf("Value = %q, want PT1.5H", got[0].Value)
	}

	if got[0].Mod != tag.After {
		t.Errorf("Mod = %q, want AFTER", got[0].Mod)
	}

	if got[0].Text != "1時間半後" {
		t.Errorf("Text = %q, want 1時間半後", got[0].Text)
	}
}

func TestParse_ReferenceAttachedToEveryTag(t *testing.T) {
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := New(WithReference(ref))

	got := p.Parse("2021年7月18日と2022年1月1日")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	for _, tg := range got {
		if tg.Reference == nil || !tg.Reference.Equal(ref) {
			t.Errorf("Reference = %v, want %v", tg.Reference, ref)
		}
	}
}

func TestParse_ProcessedTextReflectsNormalization(t *testing.T) {
	p := New()

	p.Parse("二十三日に会おう")

	want := "23日に会おう"
	if p.ProcessedText() != want {
		t.Errorf("ProcessedText() = %q, want %q", p.ProcessedText(), want)
	}
}

func TestParse_TidsAreContiguousInSpanOrder(t *testing.T) {
	p := New()

	got := p.Parse("2021年7月18日から2022年1月1日まで")
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(got), tidsAndValues(t, got))
	}

	if got[0].TID != "t0" || got[1].TID != "t1" {
		t.Errorf("TIDs = %q, %q, want t0, t1", got[0].TID, got[1].TID)
	}

	if got[0].Span.Start >= got[1].Span.Start {
		t.Errorf("tags not ordered by span start: %+v then %+v", got[0].Span, got[1].Span)
	}
}
