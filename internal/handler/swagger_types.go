package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"shutting down"`
}

// ClaimResultDoc mirrors domain.ClaimResult for documentation.
type ClaimResultDoc struct {
	Documents     []DocumentDoc    `json:"documents"`
	Validation    ValidationDoc    `json:"validation"`
	ClaimDecision ClaimDecisionDoc `json:"claim_decision"`
}

// DocumentDoc is the union of all document record fields. Only the fields of
// the record's type are present.
type DocumentDoc struct {
	Type              string `json:"type" example:"bill"`
	HospitalName      string `json:"hospital_name,omitempty" example:"City General Hospital"`
	TotalAmount       int    `json:"total_amount,omitempty" example:"12500"`
	DateOfService     string `json:"date_of_service,omitempty" example:"2024-04-05"`
	PatientName       string `json:"patient_name,omitempty" example:"Jane Smith"`
	Diagnosis         string `json:"diagnosis,omitempty" example:"Acute appendicitis"`
	AdmissionDate     string `json:"admission_date,omitempty" example:"2024-04-01"`
	DischargeDate     string `json:"discharge_date,omitempty" example:"2024-04-10"`
	IDNumber          string `json:"id_number,omitempty" example:"ABC123456"`
	InsuranceProvider string `json:"insurance_provider,omitempty" example:"Blue Shield"`
}

// ValidationDoc mirrors domain.ValidationResult.
type ValidationDoc struct {
	MissingDocuments []string `json:"missing_documents" example:"discharge_summary"`
	Discrepancies    []string `json:"discrepancies" example:"Discharge date is before admission date"`
}

// ClaimDecisionDoc mirrors domain.ClaimDecision.
type ClaimDecisionDoc struct {
	Status string `json:"status" example:"approved"`
	Reason string `json:"reason" example:"All required documents present and data is consistent"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
