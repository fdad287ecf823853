package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	minAmount = 100
	maxAmount = 1_000_000
)

// fieldRule is one row of a pattern table: the patterns tried for a field, most
// specific first, and the predicate that accepts a candidate into the record.
type fieldRule[T any] struct {
	field    string
	patterns []*regexp.Regexp
	accept   func(rec *T, candidate string) bool
}

// apply tries each pattern in order. Only the first match of a pattern is
// considered; a rejected candidate moves on to the next pattern.
func (r fieldRule[T]) apply(text string, rec *T) bool {
	for _, re := range r.patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if r.accept(rec, strings.TrimSpace(m[1])) {
			return true
		}
	}
	return false
}

// applyRules runs every rule against text and returns the fields left at
// their defaults.
func applyRules[T any](text string, rec *T, rules []fieldRule[T]) []string {
	var defaulted []string
	for _, r := range rules {
		if !r.apply(text, rec) {
			defaulted = append(defaulted, r.field)
		}
	}
	return defaulted
}

// textField accepts candidates whose rune length lies strictly between 3 and limit.
func textField[T any](limit int, set func(*T, string)) func(*T, string) bool {
	return func(rec *T, candidate string) bool {
		n := utf8.RuneCountInString(candidate)
		if n <= 3 || n >= limit {
			return false
		}
		set(rec, candidate)
		return true
	}
}

// amountField accepts decimal amounts with optional thousands separators in
// [minAmount, maxAmount], truncated to whole currency units.
func amountField[T any](set func(*T, int)) func(*T, string) bool {
	return func(rec *T, candidate string) bool {
		v, err := strconv.ParseFloat(strings.ReplaceAll(candidate, ",", ""), 64)
		if err != nil || v < minAmount || v > maxAmount {
			return false
		}
		set(rec, int(v))
		return true
	}
}

// dateField accepts tokens that normalize to a valid ISO date.
func dateField[T any](set func(*T, string)) func(*T, string) bool {
	return func(rec *T, candidate string) bool {
		iso, ok := NormalizeDate(candidate)
		if !ok {
			return false
		}
		set(rec, iso)
		return true
	}
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}
