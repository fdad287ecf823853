package extractor

import (
	"strings"
	"time"

	"claimflow/internal/domain"
)

// NormalizeDate rewrites a matched date token to YYYY-MM-DD.
//
// Tokens are split on "/" when present, otherwise on "-", and must have three
// components. A four-character last component is read as month/day/year;
// anything else is read as year/month/day. The rewritten value must be a real
// calendar date.
func NormalizeDate(token string) (string, bool) {
	var sep string
	switch {
	case strings.Contains(token, "/"):
		sep = "/"
	case strings.Contains(token, "-"):
		sep = "-"
	default:
		return "", false
	}

	parts := strings.Split(token, sep)
	if len(parts) != 3 {
		return "", false
	}

	var iso string
	if len(parts[2]) == 4 {
		iso = parts[2] + "-" + zeroPad(parts[0]) + "-" + zeroPad(parts[1])
	} else {
		iso = parts[0] + "-" + zeroPad(parts[1]) + "-" + zeroPad(parts[2])
	}

	t, err := time.Parse(domain.DateLayout, iso)
	if err != nil || t.Year() < 1 {
		return "", false
	}
	return iso, true
}

func zeroPad(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
