package extractor

import "claimflow/internal/domain"

// Building blocks shared across the pattern tables.
const (
	restOfLine = `([^\n\r]+?)(?:\n|\r|$)`
	amountNum  = `(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`
	isoDate    = `(\d{4}-\d{2}-\d{2})`
	usDate     = `(\d{1,2}[/-]\d{1,2}[/-]\d{4})`
	facility   = `(?:hospital|medical center|clinic|health center|healthcare)`
)

// Field length limits (exclusive).
const (
	maxOrgNameLen    = 100
	maxPersonNameLen = 50
	maxDiagnosisLen  = 100
	maxIDNumberLen   = 30
	maxProviderLen   = 100
)

var billRules = []fieldRule[domain.BillRecord]{
	{
		field:    "hospital_name",
		patterns: compile(
			`(?i)`+facility+`[:\s]*`+restOfLine,
			`(?i)([^\n\r]*`+facility+`[^\n\r]*)`,
			`(?i)(?:facility|provider)[:\s]*`+restOfLine,
			`(?i)bill\s+from[:\s]*`+restOfLine,
		),
		accept: textField(maxOrgNameLen, func(r *domain.BillRecord, v string) { r.HospitalName = v }),
	},
	{
		field:    "total_amount",
		patterns: compile(
			`(?i)total[^\d]*?`+amountNum,
			`(?i)amount\s+due[^\d]*?`+amountNum,
			`(?i)balance[^\d]*?`+amountNum,
			`\$\s*`+amountNum,
			`(?i)charges[^\d]*?`+amountNum,
			amountNum+`\s*(?:total|amount|due)`,
		),
		accept: amountField(func(r *domain.BillRecord, v int) { r.TotalAmount = v }),
	},
	{
		field:    "date_of_service",
		patterns: compile(
			`(?i)(?:date\s+of\s+service|service\s+date)[^\d]*?`+isoDate,
			`(?i)(?:date\s+of\s+service|service\s+date)[^\d]*?`+usDate,
			isoDate,
			usDate,
		),
		accept: dateField(func(r *domain.BillRecord, v string) { r.DateOfService = v }),
	},
}

var dischargeRules = []fieldRule[domain.DischargeSummaryRecord]{
	{
		field:    "patient_name",
		patterns: compile(
			`(?i)patient[^\w]*name[^\w]*:?\s*`+restOfLine,
			`(?i)patient[^\w]*:?\s*`+restOfLine,
			`(?i)name[^\w]*:?\s*`+restOfLine,
		),
		accept: textField(maxPersonNameLen, func(r *domain.DischargeSummaryRecord, v string) { r.PatientName = v }),
	},
	{
		field:    "diagnosis",
		patterns: compile(
			`(?i)(?:primary\s+)?diagnosis[^\w]*:?\s*`+restOfLine,
			`(?i)condition[^\w]*:?\s*`+restOfLine,
			`(?i)medical\s+condition[^\w]*:?\s*`+restOfLine,
		),
		accept: textField(maxDiagnosisLen, func(r *domain.DischargeSummaryRecord, v string) { r.Diagnosis = v }),
	},
	{
		field:    "admission_date",
		patterns: compile(
			`(?i)admission\s+date[^\d]*?`+isoDate,
			`(?i)admitted[^\d]*?`+isoDate,
			`(?i)admission[^\d]*?`+usDate,
		),
		accept: dateField(func(r *domain.DischargeSummaryRecord, v string) { r.AdmissionDate = v }),
	},
	{
		field:    "discharge_date",
		patterns: compile(
			`(?i)discharge\s+date[^\d]*?`+isoDate,
			`(?i)discharged[^\d]*?`+isoDate,
			`(?i)discharge[^\d]*?`+usDate,
		),
		accept: dateField(func(r *domain.DischargeSummaryRecord, v string) { r.DischargeDate = v }),
	},
}

var idCardRules = []fieldRule[domain.IDCardRecord]{
	{
		field:    "patient_name",
		patterns: compile(
			`(?i)(?:name|member)[^\w]*:?\s*`+restOfLine,
			`(?i)cardholder[^\w]*:?\s*`+restOfLine,
		),
		accept: textField(maxPersonNameLen, func(r *domain.IDCardRecord, v string) { r.PatientName = v }),
	},
	{
		field:    "id_number",
		patterns: compile(
			`(?i)(?:id|member|policy)\s*(?:number|#)[^\w]*:?\s*([^\n\r\s]+)`,
			`(?i)(?:id|member|policy)[^\w]*:?\s*([^\n\r\s]+)`,
		),
		accept: textField(maxIDNumberLen, func(r *domain.IDCardRecord, v string) { r.IDNumber = v }),
	},
	{
		field:    "insurance_provider",
		patterns: compile(
			`(?i)(?:insurance|provider|company)[^\w]*:?\s*`+restOfLine,
		),
		accept: textField(maxProviderLen, func(r *domain.IDCardRecord, v string) { r.InsuranceProvider = v }),
	},
}
