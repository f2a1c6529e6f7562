package validate_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"refind/internal/validate"
)

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+1 (555) 000-1234", "15550001234", true},
		{"5550001234", "5550001234", true},
		{"12345", "", false},
		{"12345678901234567890", "", false},
	}
	for _, c := range cases {
		got, ok := validate.Phone(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Phone(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestTitleBounds(t *testing.T) {
	if _, ok := validate.Title("   "); ok {
		t.Error("blank title accepted")
	}
	if _, ok := validate.Title(strings.Repeat("x", 101)); ok {
		t.Error("overlong title accepted")
	}
	if got, ok := validate.Title("  Blue Wallet "); !ok || got != "Blue Wallet" {
		t.Errorf("Title = %q,%v", got, ok)
	}
}

func TestDescriptionTruncatesOnRuneBoundary(t *testing.T) {
	// 999 ASCII bytes followed by a 3-byte rune: a byte-offset cut at
	// 1000 would land mid-rune.
	s := strings.Repeat("a", 999) + "€€€"
	got := validate.Description(s)
	if len(got) > 1000 {
		t.Fatalf("length %d exceeds cap", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncated description is not valid UTF-8: %q", got[990:])
	}
	if got != strings.Repeat("a", 999) {
		t.Fatalf("want cut before the split rune, got %d bytes", len(got))
	}

	// A cut that already sits on a boundary stays byte-exact.
	s = strings.Repeat("b", 1200)
	if got := validate.Description(s); len(got) != 1000 {
		t.Fatalf("ASCII cut: want 1000 bytes, got %d", len(got))
	}

	if got := validate.Description("  short  "); got != "short" {
		t.Fatalf("short input should only be trimmed, got %q", got)
	}
}

func TestCategoryEnum(t *testing.T) {
	if got, ok := validate.Category(" Electronics "); !ok || got != "electronics" {
		t.Errorf("Category = %q,%v", got, ok)
	}
	if _, ok := validate.Category("vehicles"); ok {
		t.Error("unknown category accepted")
	}
}

func TestID(t *testing.T) {
	if _, ok := validate.ID("item-42"); !ok {
		t.Error("plain id rejected")
	}
	if _, ok := validate.ID("x; DROP TABLE items"); ok {
		t.Error("id with spaces/punctuation accepted")
	}
}
