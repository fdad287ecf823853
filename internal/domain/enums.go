package domain

// DocumentType identifies the semantic kind of a claim document.
type DocumentType string

const (
	DocumentTypeBill             DocumentType = "bill"
	DocumentTypeDischargeSummary DocumentType = "discharge_summary"
	DocumentTypeIDCard           DocumentType = "id_card"
)

// DocumentTypes lists every document type in classification priority order.
var DocumentTypes = []DocumentType{
	DocumentTypeBill,
	DocumentTypeDischargeSummary,
	DocumentTypeIDCard,
}

// RequiredDocumentTypes are the types a claim batch must contain, in reporting order.
var RequiredDocumentTypes = []DocumentType{
	DocumentTypeBill,
	DocumentTypeDischargeSummary,
}

// ClaimStatus is the outcome of a claim decision.
type ClaimStatus string

const (
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// ExportFormat is the file format of a claim report download.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportContentTypes maps ExportFormat to its MIME content type.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatCSV:  "text/csv; charset=utf-8",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}
