package validator

import (
	"claimflow/internal/domain"
)

// Rule is a single cross-document consistency check. Check returns the
// discrepancies found, or nil when the batch passes.
type Rule interface {
	Check(records []domain.Record) []string
	RuleKey() string
	RuleName() string
}
