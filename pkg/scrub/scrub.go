// Package scrub removes personally identifying data from text destined for
// decision logs and user-visible error messages. Patterns are compiled once
// at startup; scrubbing never fails open — an unmatchable input passes
// through, but a scrubber construction error is fatal at boot.
package scrub

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// pattern pairs a compiled regex with its replacement.
type pattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Scrubber applies the compiled pattern set.
type Scrubber struct {
	patterns []pattern
}

// builtinPatterns covers the identifiers that must never reach logs:
// emails, phone numbers, chat account ids, long digit runs and file paths.
var builtinPatterns = []struct {
	name        string
	expr        string
	replacement string
}{
	{"email", `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`, "[email]"},
	{"phone_jp", `0\d{1,4}[-\s]?\d{1,4}[-\s]?\d{3,4}`, "[phone]"},
	{"account_id", `\[(?:To:|rp aid=)\d+[^\]]*\]`, "[account]"},
	{"long_digits", `\b\d{8,}\b`, "[number]"},
	{"unix_path", `(?:/[\w.\-]+){3,}`, "[path]"},
}

// New compiles the builtin pattern set.
func New() (*Scrubber, error) {
	s := &Scrubber{patterns: make([]pattern, 0, len(builtinPatterns))}
	for _, p := range builtinPatterns {
		re, err := regexp.Compile(p.expr)
		if err != nil {
			return nil, err
		}
		s.patterns = append(s.patterns, pattern{name: p.name, regex: re, replacement: p.replacement})
	}
	return s, nil
}

// Text applies every pattern to the input.
func (s *Scrubber) Text(in string) string {
	out := in
	for _, p := range s.patterns {
		out = p.regex.ReplaceAllString(out, p.replacement)
	}
	return out
}

// Excerpt scrubs and truncates to at most maxRunes runes, for the
// decision-log message excerpt.
func (s *Scrubber) Excerpt(in string, maxRunes int) string {
	out := s.Text(strings.TrimSpace(in))
	if utf8.RuneCountInString(out) <= maxRunes {
		return out
	}
	runes := []rune(out)
	return string(runes[:maxRunes]) + "…"
}

// Params scrubs every string value of a parameter map, recursing one level
// into nested maps and slices. Keys are preserved.
func (s *Scrubber) Params(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = s.value(v)
	}
	return out
}

func (s *Scrubber) value(v any) any {
	switch t := v.(type) {
	case string:
		return s.Text(t)
	case map[string]any:
		return s.Params(t)
	case []any:
		res := make([]any, len(t))
		for i, e := range t {
			res[i] = s.value(e)
		}
		return res
	case []string:
		res := make([]string, len(t))
		for i, e := range t {
			res[i] = s.Text(e)
		}
		return res
	default:
		return v
	}
}
