package claim

import (
	"time"

	"claimflow/internal/domain"
)

// Discrepancy messages reported by the built-in rules.
const (
	MsgInconsistentPatientNames = "Inconsistent patient names across documents"
	MsgDischargeBeforeAdmission = "Discharge date is before admission date"
	MsgServiceOutsideAdmission  = "Service date is outside admission period"
)

// CrossDocumentRules returns the patient identity and date consistency rules.
func CrossDocumentRules() []*BuiltinRule {
	return []*BuiltinRule{
		{
			key:  "xdoc.patient_name.consistent",
			name: "Cross-Document: Patient Name Consistency",
			fn:   checkPatientNames,
		},
		{
			key:  "xdoc.dates.admission_period",
			name: "Cross-Document: Admission Period Dates",
			fn:   checkAdmissionPeriod,
		},
	}
}

// checkPatientNames flags batches carrying more than one distinct patient name.
// Default names count like extracted ones.
func checkPatientNames(records []domain.Record) []string {
	names := make(map[string]struct{})
	for _, r := range records {
		if name, ok := domain.PatientName(r); ok {
			names[name] = struct{}{}
		}
	}
	if len(names) > 1 {
		return []string{MsgInconsistentPatientNames}
	}
	return nil
}

// checkAdmissionPeriod compares the first bill's service date with the first
// discharge summary's admission period. Any unparseable date skips the check.
func checkAdmissionPeriod(records []domain.Record) []string {
	bill, okBill := domain.FirstBill(records)
	summary, okSummary := domain.FirstDischargeSummary(records)
	if !okBill || !okSummary {
		return nil
	}

	service, err := time.Parse(domain.DateLayout, bill.DateOfService)
	if err != nil {
		return nil
	}
	admitted, err := time.Parse(domain.DateLayout, summary.AdmissionDate)
	if err != nil {
		return nil
	}
	discharged, err := time.Parse(domain.DateLayout, summary.DischargeDate)
	if err != nil {
		return nil
	}

	var out []string
	if discharged.Before(admitted) {
		out = append(out, MsgDischargeBeforeAdmission)
	}
	if service.Before(admitted) || service.After(discharged) {
		out = append(out, MsgServiceOutsideAdmission)
	}
	return out
}
