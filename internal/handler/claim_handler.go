package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"claimflow/internal/config"
	"claimflow/internal/domain"
	"claimflow/internal/export"
	"claimflow/internal/service"
)

// FilesField is the multipart field carrying claim documents.
const FilesField = "files"

// ClaimHandler handles claim processing endpoints.
type ClaimHandler struct {
	claimService service.ClaimService
	uploadCfg    config.UploadConfig
	logger       *slog.Logger
}

// NewClaimHandler creates a new ClaimHandler. A nil logger falls back to
// slog.Default().
func NewClaimHandler(claimService service.ClaimService, uploadCfg config.UploadConfig, logger *slog.Logger) *ClaimHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaimHandler{claimService: claimService, uploadCfg: uploadCfg, logger: logger}
}

// Process handles POST /api/v1/claims/process
// @Summary Process a claim batch
// @Description Classify and extract every uploaded document, cross-check the batch and return the claim decision
// @Tags claims
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Claim documents (PDF or plain text); repeat the field for each file"
// @Success 200 {object} Response{data=ClaimResultDoc} "Claim processed"
// @Failure 400 {object} ErrorResponseBody "No files or too many files"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Internal error"
// @Router /claims/process [post]
func (h *ClaimHandler) Process(c *gin.Context) {
	files, err := h.readBatch(c)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	result, err := h.claimService.ProcessClaim(c.Request.Context(), files)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondOK(c, result)
}

// Export handles POST /api/v1/claims/export
// @Summary Process a claim batch and download the report
// @Description Same processing as /claims/process; the result is returned as a CSV or XLSX attachment
// @Tags claims
// @Accept multipart/form-data
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Report format: csv (default) or xlsx"
// @Param files formData file true "Claim documents (PDF or plain text); repeat the field for each file"
// @Success 200 {file} file "Claim report"
// @Failure 400 {object} ErrorResponseBody "No files, too many files or unsupported format"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Internal error"
// @Router /claims/export [post]
func (h *ClaimHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	files, err := h.readBatch(c)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	result, err := h.claimService.ProcessClaim(c.Request.Context(), files)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, result); err != nil {
		HandleError(c, h.logger, fmt.Errorf("rendering %s report: %w", format, err))
		return
	}

	filename := export.BuildFilename(format, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, domain.ExportContentTypes[format], buf.Bytes())
}

// BatchBodyLimit is the largest request body a batch within uploadCfg can need.
func BatchBodyLimit(uploadCfg config.UploadConfig) int64 {
	if uploadCfg.MaxFiles <= 0 || uploadCfg.MaxFileSizeMB <= 0 {
		return 0
	}
	const multipartOverhead = 1 << 20
	return int64(uploadCfg.MaxFiles)*uploadCfg.MaxFileSizeBytes() + multipartOverhead
}

// readBatch reads every file of the multipart "files" field, enforcing the
// configured file count and per-file size limits.
func (h *ClaimHandler) readBatch(c *gin.Context) ([]domain.InputFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, domain.ErrNoFiles
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: request body over %d bytes", domain.ErrFileTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("reading multipart form: %w", err)
	}

	headers := form.File[FilesField]
	if len(headers) == 0 {
		return nil, domain.ErrNoFiles
	}
	if h.uploadCfg.MaxFiles > 0 && len(headers) > h.uploadCfg.MaxFiles {
		return nil, fmt.Errorf("%w: got %d, limit %d", domain.ErrTooManyFiles, len(headers), h.uploadCfg.MaxFiles)
	}

	maxSize := h.uploadCfg.MaxFileSizeBytes()
	files := make([]domain.InputFile, 0, len(headers))
	for _, fh := range headers {
		if maxSize > 0 && fh.Size > maxSize {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileTooLarge, fh.Filename)
		}
		content, err := readPart(fh)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fh.Filename, err)
		}
		files = append(files, domain.InputFile{Filename: fh.Filename, Content: content})
	}
	return files, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}
