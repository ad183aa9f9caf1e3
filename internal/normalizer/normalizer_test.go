package normalizer

import "testing"

func TestNormalize_ZenkakuDigits(t *testing.T) {
	n := New()

	got := n.Normalize("2021年7月18日")
	want := "2021年7月18日"

	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", "2021年7月18日", got, want)
	}

	got = n.Normalize("２０２１年")
	if got != "2021年" {
		t.Errorf("Normalize full-width digits = %q, want 2021年", got)
	}
}

func TestNormalize_KansujiFolding(t *testing.T) {
	n := New()

	cases := map[string]string{
		"二十三": "23",
		"三百":  "300",
		"一万二千": "12000",
		"五":   "5",
	}

	for in, want := range cases {
		if got := n.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_ProtectedWordsSurviveFolding(t *testing.T) {
	n := New()

	for _, w := range protectedWords {
		if got := n.Normalize(w); got != w {
			t.Errorf("Normalize(%q) = %q, want unchanged %q", w, got, w)
		}
	}
}

func TestNormalize_IgnoreKansuji(t *testing.T) {
	n := New(WithIgnoreKansuji(true))

	got := n.Normalize("二十三")
	if got != "二十三" {
		t.Errorf("Normalize with ignore_kansuji = %q, want unchanged 二十三", got)
	}
}

func TestSetIgnoreKansuji(t *testing.T) {
	n := New()

	n.SetIgnoreKansuji(true)

	if got := n.Normalize("五"); got != "五" {
		t.Errorf("Normalize after SetIgnoreKansuji(true) = %q, want unchanged 五", got)
	}
}
