// Package decision renders the approve/reject verdict for a validated claim batch.
package decision

import (
	"strings"

	"claimflow/internal/domain"
)

// Decision reasons.
const (
	ReasonMissingPrefix     = "Missing required documents: "
	ReasonDiscrepancyPrefix = "Data discrepancies found: "
	ReasonInvalidAmount     = "Invalid or missing bill amount"
	ReasonApproved          = "All required documents present and data is consistent"
)

// Decide applies the decision rules in precedence order; the first rule that
// triggers determines the outcome:
//
//  1. missing required documents
//  2. cross-document discrepancies
//  3. a non-positive amount on the first bill
//
// Otherwise the claim is approved.
func Decide(records []domain.Record, validation domain.ValidationResult) domain.ClaimDecision {
	if len(validation.MissingDocuments) > 0 {
		names := make([]string, len(validation.MissingDocuments))
		for i, t := range validation.MissingDocuments {
			names[i] = string(t)
		}
		return rejected(ReasonMissingPrefix + strings.Join(names, ", "))
	}

	if len(validation.Discrepancies) > 0 {
		return rejected(ReasonDiscrepancyPrefix + strings.Join(validation.Discrepancies, ", "))
	}

	if bill, ok := domain.FirstBill(records); ok && bill.TotalAmount <= 0 {
		return rejected(ReasonInvalidAmount)
	}

	return domain.ClaimDecision{Status: domain.ClaimStatusApproved, Reason: ReasonApproved}
}

func rejected(reason string) domain.ClaimDecision {
	return domain.ClaimDecision{Status: domain.ClaimStatusRejected, Reason: reason}
}
