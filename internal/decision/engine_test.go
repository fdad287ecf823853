package decision_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"claimflow/internal/decision"
	"claimflow/internal/domain"
)

func TestDecide_Precedence(t *testing.T) {
	validBill := domain.BillRecord{HospitalName: "City Hospital", TotalAmount: 1000, DateOfService: "2024-04-05"}
	zeroBill := domain.BillRecord{HospitalName: "City Hospital", TotalAmount: 0, DateOfService: "2024-04-05"}
	summary := domain.DischargeSummaryRecord{PatientName: "Jane Smith"}

	tests := []struct {
		name       string
		records    []domain.Record
		validation domain.ValidationResult
		want       domain.ClaimDecision
	}{
		{
			name:    "missing documents first",
			records: []domain.Record{zeroBill},
			validation: domain.ValidationResult{
				MissingDocuments: []domain.DocumentType{domain.DocumentTypeDischargeSummary},
				Discrepancies:    []string{"Inconsistent patient names across documents"},
			},
			want: domain.ClaimDecision{
				Status: domain.ClaimStatusRejected,
				Reason: "Missing required documents: discharge_summary",
			},
		},
		{
			name: "all missing joined in order",
			validation: domain.ValidationResult{
				MissingDocuments: []domain.DocumentType{domain.DocumentTypeBill, domain.DocumentTypeDischargeSummary},
			},
			want: domain.ClaimDecision{
				Status: domain.ClaimStatusRejected,
				Reason: "Missing required documents: bill, discharge_summary",
			},
		},
		{
			name:    "discrepancies second",
			records: []domain.Record{zeroBill, summary},
			validation: domain.ValidationResult{
				MissingDocuments: []domain.DocumentType{},
				Discrepancies: []string{
					"Discharge date is before admission date",
					"Service date is outside admission period",
				},
			},
			want: domain.ClaimDecision{
				Status: domain.ClaimStatusRejected,
				Reason: "Data discrepancies found: Discharge date is before admission date, Service date is outside admission period",
			},
		},
		{
			name:       "non-positive amount third",
			records:    []domain.Record{zeroBill, summary},
			validation: domain.ValidationResult{MissingDocuments: []domain.DocumentType{}, Discrepancies: []string{}},
			want:       domain.ClaimDecision{Status: domain.ClaimStatusRejected, Reason: decision.ReasonInvalidAmount},
		},
		{
			name:       "only first bill amount checked",
			records:    []domain.Record{validBill, zeroBill, summary},
			validation: domain.ValidationResult{},
			want:       domain.ClaimDecision{Status: domain.ClaimStatusApproved, Reason: decision.ReasonApproved},
		},
		{
			name:       "approved",
			records:    []domain.Record{validBill, summary},
			validation: domain.ValidationResult{},
			want: domain.ClaimDecision{
				Status: domain.ClaimStatusApproved,
				Reason: "All required documents present and data is consistent",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decision.Decide(tt.records, tt.validation))
		})
	}
}

func TestDecide_MissingDischargeSummaryAlwaysRejects(t *testing.T) {
	bills := []domain.Record{
		domain.BillRecord{TotalAmount: 500},
		domain.BillRecord{TotalAmount: 1_000_000},
	}
	got := decision.Decide(bills, domain.ValidationResult{
		MissingDocuments: []domain.DocumentType{domain.DocumentTypeDischargeSummary},
	})
	assert.Equal(t, domain.ClaimStatusRejected, got.Status)
	assert.Contains(t, got.Reason, "discharge_summary")
}
