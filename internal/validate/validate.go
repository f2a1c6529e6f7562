package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reCat   = regexp.MustCompile(`^(electronics|documents|clothing|accessories|other)$`)
	reDigit = regexp.MustCompile(`[^0-9]`)
)

// Phone strips formatting and requires at least 10 digits, mirroring the
// login form's promise that the number is reachable.
func Phone(s string) (string, bool) {
	digits := reDigit.ReplaceAllString(s, "")
	if len(digits) < 10 || len(digits) > 15 {
		return "", false
	}
	return digits, true
}

// Title validates a short free-text item title.
func Title(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Location validates the free-text where-field.
func Location(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 150 {
		return "", false
	}
	return s, true
}

// Description is optional; overly long input is cut rather than rejected.
// The cut lands on a rune boundary so the stored text stays valid UTF-8.
func Description(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 1000 {
		cut := 1000
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// Category validates the fixed category enum.
func Category(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, reCat.MatchString(s)
}

// ID validates a record identifier (uuid or legacy short id).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}
