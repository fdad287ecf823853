// Package classifier maps a claim document's filename and text to its document type.
package classifier

import (
	"strings"

	"claimflow/internal/domain"
)

var (
	billIndicators = []string{
		"bill", "invoice", "charges", "payment", "amount due", "total amount",
		"medical bill", "hospital bill", "billing", "statement",
	}
	dischargeIndicators = []string{
		"discharge", "summary", "admission", "patient", "diagnosis",
		"discharge summary", "medical record", "hospital course",
	}
	idCardIndicators = []string{
		"id card", "insurance card", "member", "policy", "coverage",
		"insurance", "member id", "policy number",
	}
)

// Indicators returns the indicator phrases owned by t.
func Indicators(t domain.DocumentType) []string {
	switch t {
	case domain.DocumentTypeBill:
		return billIndicators
	case domain.DocumentTypeDischargeSummary:
		return dischargeIndicators
	case domain.DocumentTypeIDCard:
		return idCardIndicators
	default:
		return nil
	}
}

// Scores counts, per document type, how many of its indicators occur in text.
// Each indicator contributes at most one point.
type Scores struct {
	Bill             int `json:"bill"`
	DischargeSummary int `json:"discharge_summary"`
	IDCard           int `json:"id_card"`
}

// Best resolves the scores to a type. Ties go to bill, then discharge_summary.
func (s Scores) Best() domain.DocumentType {
	switch {
	case s.Bill >= s.DischargeSummary && s.Bill >= s.IDCard:
		return domain.DocumentTypeBill
	case s.DischargeSummary >= s.IDCard:
		return domain.DocumentTypeDischargeSummary
	default:
		return domain.DocumentTypeIDCard
	}
}

// Classify determines the document type from the filename, falling back to
// indicator scoring of the text. It always returns one of the known types.
func Classify(filename, text string) domain.DocumentType {
	if t, ok := ClassifyFilename(filename); ok {
		return t
	}
	return ScoreText(text).Best()
}

// ClassifyFilename reports the type whose indicator appears in the lower-cased
// filename, checking bill, discharge summary, then ID card.
func ClassifyFilename(filename string) (domain.DocumentType, bool) {
	name := strings.ToLower(filename)
	for _, t := range domain.DocumentTypes {
		if containsAny(name, Indicators(t)) {
			return t, true
		}
	}
	return "", false
}

// ScoreText computes indicator presence scores for the lower-cased text.
func ScoreText(text string) Scores {
	body := strings.ToLower(text)
	return Scores{
		Bill:             countPresent(body, billIndicators),
		DischargeSummary: countPresent(body, dischargeIndicators),
		IDCard:           countPresent(body, idCardIndicators),
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func countPresent(s string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(s, p) {
			n++
		}
	}
	return n
}
