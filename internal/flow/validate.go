package flow

import (
	"regexp"
	"strings"
)

// Ethiopian mobile numbers: +251 or 0 prefix, operator digit 9 or 7,
// then eight digits.
var phonePattern = regexp.MustCompile(`^(\+251|0)[79]\d{8}$`)

// ValidPhone reports whether s is an acceptable phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// ValidEmail applies the minimal check: an @ with a dot somewhere after
// it. Full RFC validation is out of scope for a chat prompt.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at < 1 {
		return false
	}
	rest := s[at+1:]
	dot := strings.Index(rest, ".")
	return dot > 0 && dot < len(rest)-1
}

// ValidRating accepts the survey scale 1 to 5.
func ValidRating(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) == 1 && s[0] >= '1' && s[0] <= '5'
}

// ValidDone accepts only the Done token, so typed text at a
// button-driven step repeats the prompt instead of advancing.
func ValidDone(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "done")
}

// ValidYesNo accepts the public-visibility answers.
func ValidYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "no", "አዎ", "አይ":
		return true
	}
	return false
}
