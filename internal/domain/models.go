package domain

import "encoding/json"

// DateLayout is the ISO calendar date format used by every record date field.
const DateLayout = "2006-01-02"

// Record is the structured field set extracted from one claim document.
// Concrete types are BillRecord, DischargeSummaryRecord and IDCardRecord.
type Record interface {
	DocumentType() DocumentType
}

// BillRecord holds fields extracted from a hospital bill.
type BillRecord struct {
	HospitalName  string `json:"hospital_name"`
	TotalAmount   int    `json:"total_amount"`
	DateOfService string `json:"date_of_service"`
}

// DischargeSummaryRecord holds fields extracted from a discharge summary.
type DischargeSummaryRecord struct {
	PatientName   string `json:"patient_name"`
	Diagnosis     string `json:"diagnosis"`
	AdmissionDate string `json:"admission_date"`
	DischargeDate string `json:"discharge_date"`
}

// IDCardRecord holds fields extracted from an insurance ID card.
type IDCardRecord struct {
	PatientName       string `json:"patient_name"`
	IDNumber          string `json:"id_number"`
	InsuranceProvider string `json:"insurance_provider"`
}

func (BillRecord) DocumentType() DocumentType             { return DocumentTypeBill }
func (DischargeSummaryRecord) DocumentType() DocumentType { return DocumentTypeDischargeSummary }
func (IDCardRecord) DocumentType() DocumentType           { return DocumentTypeIDCard }

// MarshalJSON emits the record with a leading "type" tag.
func (r BillRecord) MarshalJSON() ([]byte, error) {
	type fields BillRecord
	return json.Marshal(struct {
		Type DocumentType `json:"type"`
		fields
	}{DocumentTypeBill, fields(r)})
}

// MarshalJSON emits the record with a leading "type" tag.
func (r DischargeSummaryRecord) MarshalJSON() ([]byte, error) {
	type fields DischargeSummaryRecord
	return json.Marshal(struct {
		Type DocumentType `json:"type"`
		fields
	}{DocumentTypeDischargeSummary, fields(r)})
}

// MarshalJSON emits the record with a leading "type" tag.
func (r IDCardRecord) MarshalJSON() ([]byte, error) {
	type fields IDCardRecord
	return json.Marshal(struct {
		Type DocumentType `json:"type"`
		fields
	}{DocumentTypeIDCard, fields(r)})
}

// PatientName returns the patient name carried by r, if its type has one.
func PatientName(r Record) (string, bool) {
	switch rec := r.(type) {
	case DischargeSummaryRecord:
		return rec.PatientName, true
	case IDCardRecord:
		return rec.PatientName, true
	default:
		return "", false
	}
}

// FirstBill returns the first bill record in records.
func FirstBill(records []Record) (BillRecord, bool) {
	for _, r := range records {
		if b, ok := r.(BillRecord); ok {
			return b, true
		}
	}
	return BillRecord{}, false
}

// FirstDischargeSummary returns the first discharge summary record in records.
func FirstDischargeSummary(records []Record) (DischargeSummaryRecord, bool) {
	for _, r := range records {
		if s, ok := r.(DischargeSummaryRecord); ok {
			return s, true
		}
	}
	return DischargeSummaryRecord{}, false
}

// ValidationResult is the outcome of cross-checking a batch of records.
type ValidationResult struct {
	MissingDocuments []DocumentType `json:"missing_documents"`
	Discrepancies    []string       `json:"discrepancies"`
}

// ClaimDecision is the final approve/reject verdict with its single reason.
type ClaimDecision struct {
	Status ClaimStatus `json:"status"`
	Reason string      `json:"reason"`
}

// ClaimResult is the full response for one processed claim batch.
type ClaimResult struct {
	Documents     []Record         `json:"documents"`
	Validation    ValidationResult `json:"validation"`
	ClaimDecision ClaimDecision    `json:"claim_decision"`
}

// InputFile is one uploaded document in a claim batch.
type InputFile struct {
	Filename string
	Content  []byte
}
