package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"claimflow/internal/config"
	"claimflow/internal/decision"
	"claimflow/internal/domain"
	"claimflow/internal/port"
	"claimflow/internal/service"
	"claimflow/internal/textextract"
	"claimflow/internal/validator"
	"claimflow/mocks"
)

const (
	billText = "Hospital: St. Mary Medical Center\nDate of Service: 2024-04-05\nTotal Amount: $1,250.00\n"

	dischargeText = "DISCHARGE SUMMARY\nPatient Name: Jane Smith\nDiagnosis: Acute appendicitis\n" +
		"Admission Date: 2024-04-01\nDischarge Date: 2024-04-10\n"

	idCardText = "Name: Jane Smith\nID Number: ABC123456\nProvider: Blue Shield\n"
)

// extractFunc adapts a function to port.TextExtractor.
type extractFunc func(ctx context.Context, content []byte) (string, error)

func (f extractFunc) ExtractText(ctx context.Context, content []byte) (string, error) {
	return f(ctx, content)
}

func newService(te port.TextExtractor, concurrency int) service.ClaimService {
	return service.NewClaimService(
		te,
		validator.NewDefaultEngine(nil),
		config.PipelineConfig{Concurrency: concurrency},
		nil,
	)
}

func TestClaimService_ProcessClaim_ApprovedBatch(t *testing.T) {
	svc := newService(textextract.New(), 4)

	result, err := svc.ProcessClaim(context.Background(), []domain.InputFile{
		{Filename: "hospital_bill.txt", Content: []byte(billText)},
		{Filename: "discharge_summary.txt", Content: []byte(dischargeText)},
		{Filename: "insurance_card.txt", Content: []byte(idCardText)},
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 3)
	assert.Equal(t, domain.BillRecord{
		HospitalName:  "St. Mary Medical Center",
		TotalAmount:   1250,
		DateOfService: "2024-04-05",
	}, result.Documents[0])
	assert.Equal(t, domain.DocumentTypeDischargeSummary, result.Documents[1].DocumentType())
	assert.Equal(t, domain.DocumentTypeIDCard, result.Documents[2].DocumentType())

	assert.Empty(t, result.Validation.MissingDocuments)
	assert.Empty(t, result.Validation.Discrepancies)
	assert.Equal(t, domain.ClaimDecision{
		Status: domain.ClaimStatusApproved,
		Reason: decision.ReasonApproved,
	}, result.ClaimDecision)
}

func TestClaimService_ProcessClaim_IDCardOnly(t *testing.T) {
	svc := newService(textextract.New(), 1)

	result, err := svc.ProcessClaim(context.Background(), []domain.InputFile{
		{Filename: "insurance_card.txt", Content: []byte(idCardText)},
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 1)
	assert.Equal(t, []domain.DocumentType{domain.DocumentTypeBill, domain.DocumentTypeDischargeSummary},
		result.Validation.MissingDocuments)
	assert.Equal(t, domain.ClaimStatusRejected, result.ClaimDecision.Status)
	assert.Equal(t, "Missing required documents: bill, discharge_summary", result.ClaimDecision.Reason)
}

func TestClaimService_ProcessClaim_DischargeBeforeAdmission(t *testing.T) {
	svc := newService(textextract.New(), 2)

	swapped := "Patient Name: Jane Smith\nAdmission Date: 2024-04-10\nDischarge Date: 2024-04-01\n"
	result, err := svc.ProcessClaim(context.Background(), []domain.InputFile{
		{Filename: "hospital_bill.txt", Content: []byte(billText)},
		{Filename: "discharge_summary.txt", Content: []byte(swapped)},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Validation.Discrepancies, "Discharge date is before admission date")
	assert.Equal(t, domain.ClaimStatusRejected, result.ClaimDecision.Status)
	assert.Contains(t, result.ClaimDecision.Reason, decision.ReasonDiscrepancyPrefix)
}

func TestClaimService_ProcessClaim_NoFiles(t *testing.T) {
	svc := newService(new(mocks.MockTextExtractor), 1)

	_, err := svc.ProcessClaim(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoFiles)

	_, err = svc.ProcessClaim(context.Background(), []domain.InputFile{{Filename: "", Content: []byte("x")}})
	assert.ErrorIs(t, err, domain.ErrNoFiles)
}

func TestClaimService_ProcessClaim_AllFilesSkipped(t *testing.T) {
	te := new(mocks.MockTextExtractor)
	te.On("ExtractText", mock.Anything, mock.Anything).Return("", errors.New("corrupt"))
	svc := newService(te, 1)

	result, err := svc.ProcessClaim(context.Background(), []domain.InputFile{
		{Filename: "a.pdf", Content: []byte("a")},
		{Filename: "b.pdf", Content: []byte("b")},
	})
	require.NoError(t, err)

	assert.NotNil(t, result.Documents)
	assert.Empty(t, result.Documents)
	assert.Equal(t, domain.ClaimStatusRejected, result.ClaimDecision.Status)
	assert.Equal(t, "Missing required documents: bill, discharge_summary", result.ClaimDecision.Reason)
	te.AssertExpectations(t)
}

func TestClaimService_ProcessClaim_SkipsUnreadableFiles(t *testing.T) {
	te := new(mocks.MockTextExtractor)
	te.On("ExtractText", mock.Anything, []byte("bill")).Return(billText, nil)
	te.On("ExtractText", mock.Anything, []byte("broken")).Return("", domain.ErrUnsupportedFileType)
	te.On("ExtractText", mock.Anything, []byte("blank")).Return("  \n\t ", nil)
	te.On("ExtractText", mock.Anything, []byte("summary")).Return(dischargeText, nil)
	svc := newService(te, 2)

	result, err := svc.ProcessClaim(context.Background(), []domain.InputFile{
		{Filename: "hospital_bill.pdf", Content: []byte("bill")},
		{Filename: "photo.jpg", Content: []byte("broken")},
		{Filename: "blank.pdf", Content: []byte("blank")},
		{Filename: "", Content: []byte("ignored")},
		{Filename: "discharge_summary.pdf", Content: []byte("summary")},
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, domain.DocumentTypeBill, result.Documents[0].DocumentType())
	assert.Equal(t, domain.DocumentTypeDischargeSummary, result.Documents[1].DocumentType())
	assert.Equal(t, domain.ClaimStatusApproved, result.ClaimDecision.Status)
	te.AssertNumberOfCalls(t, "ExtractText", 4)
}

func TestClaimService_ProcessClaim_LogsSkipReason(t *testing.T) {
	te := new(mocks.MockTextExtractor)
	te.On("ExtractText", mock.Anything, []byte("broken")).Return("", domain.ErrUnsupportedFileType)
	te.On("ExtractText", mock.Anything, []byte("blank")).Return("  \n ", nil)

	var logs bytes.Buffer
	svc := service.NewClaimService(
		te,
		validator.NewDefaultEngine(nil),
		config.PipelineConfig{Concurrency: 1},
		slog.New(slog.NewTextHandler(&logs, nil)),
	)

	result, err := svc.ProcessClaim(context.Background(), []domain.InputFile{
		{Filename: "photo.jpg", Content: []byte("broken")},
		{Filename: "blank.pdf", Content: []byte("blank")},
	})
	require.NoError(t, err)

	assert.Empty(t, result.Documents)
	assert.Contains(t, logs.String(), domain.ErrUnsupportedFileType.Error())
	assert.Contains(t, logs.String(), domain.ErrEmptyText.Error())
	te.AssertExpectations(t)
}

func TestClaimService_ProcessClaim_RecoversPanics(t *testing.T) {
	te := extractFunc(func(_ context.Context, content []byte) (string, error) {
		if string(content) == "boom" {
			panic("malformed document")
		}
		return string(content), nil
	})
	svc := newService(te, 2)

	result, err := svc.ProcessClaim(context.Background(), []domain.InputFile{
		{Filename: "hospital_bill.txt", Content: []byte(billText)},
		{Filename: "crash.pdf", Content: []byte("boom")},
		{Filename: "discharge_summary.txt", Content: []byte(dischargeText)},
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Equal(t, domain.ClaimStatusApproved, result.ClaimDecision.Status)
}

func TestClaimService_ProcessClaim_PreservesInputOrder(t *testing.T) {
	// Earlier files finish last.
	delays := map[string]time.Duration{
		"first":  30 * time.Millisecond,
		"second": 15 * time.Millisecond,
		"third":  0,
	}
	te := extractFunc(func(_ context.Context, content []byte) (string, error) {
		time.Sleep(delays[string(content)])
		return "some text", nil
	})
	svc := newService(te, 3)

	result, err := svc.ProcessClaim(context.Background(), []domain.InputFile{
		{Filename: "policy.pdf", Content: []byte("first")},
		{Filename: "discharge_summary.pdf", Content: []byte("second")},
		{Filename: "invoice.pdf", Content: []byte("third")},
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 3)
	assert.Equal(t, domain.DocumentTypeIDCard, result.Documents[0].DocumentType())
	assert.Equal(t, domain.DocumentTypeDischargeSummary, result.Documents[1].DocumentType())
	assert.Equal(t, domain.DocumentTypeBill, result.Documents[2].DocumentType())
}

func TestClaimService_ProcessClaim_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	te := extractFunc(func(ctx context.Context, _ []byte) (string, error) {
		return "", ctx.Err()
	})
	svc := newService(te, 1)

	result, err := svc.ProcessClaim(ctx, []domain.InputFile{{Filename: "hospital_bill.txt", Content: []byte(billText)}})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}
