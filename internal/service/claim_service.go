package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"claimflow/internal/classifier"
	"claimflow/internal/config"
	"claimflow/internal/decision"
	"claimflow/internal/domain"
	"claimflow/internal/extractor"
	"claimflow/internal/port"
	"claimflow/internal/validator"
)

// ClaimService defines the claim processing contract.
type ClaimService interface {
	ProcessClaim(ctx context.Context, files []domain.InputFile) (*domain.ClaimResult, error)
}

type claimService struct {
	textExtractor port.TextExtractor
	engine        *validator.Engine
	concurrency   int
	logger        *slog.Logger
}

// NewClaimService creates a new ClaimService implementation.
func NewClaimService(
	textExtractor port.TextExtractor,
	engine *validator.Engine,
	cfg config.PipelineConfig,
	logger *slog.Logger,
) ClaimService {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &claimService{
		textExtractor: textExtractor,
		engine:        engine,
		concurrency:   concurrency,
		logger:        logger,
	}
}

// ProcessClaim classifies and extracts every file, then validates the records
// and renders the claim decision. Files that cannot be read are dropped from
// the batch; records keep the order of their input files.
func (s *claimService) ProcessClaim(ctx context.Context, files []domain.InputFile) (*domain.ClaimResult, error) {
	batch := make([]domain.InputFile, 0, len(files))
	for _, f := range files {
		if f.Filename != "" {
			batch = append(batch, f)
		}
	}
	if len(batch) == 0 {
		return nil, domain.ErrNoFiles
	}

	log := s.logger.With("batch_id", uuid.New().String())
	log.Info("claimService.ProcessClaim: processing batch", "files", len(batch))

	slots := make([]domain.Record, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range batch {
		g.Go(func() error {
			slots[i] = s.processFile(gctx, log, batch[i])
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing claim batch: %w", err)
	}

	records := make([]domain.Record, 0, len(slots))
	for _, rec := range slots {
		if rec != nil {
			records = append(records, rec)
		}
	}

	validation := s.engine.Validate(records)
	verdict := decision.Decide(records, validation)

	log.Info("claimService.ProcessClaim: claim decided",
		"documents", len(records),
		"skipped", len(batch)-len(records),
		"missing", len(validation.MissingDocuments),
		"discrepancies", len(validation.Discrepancies),
		"status", verdict.Status,
	)

	return &domain.ClaimResult{
		Documents:     records,
		Validation:    validation,
		ClaimDecision: verdict,
	}, nil
}

// processFile returns the record for one file, or nil when the file is skipped.
// A panic while handling the file is logged and skips only that file.
func (s *claimService) processFile(ctx context.Context, log *slog.Logger, f domain.InputFile) (rec domain.Record) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("claimService.processFile: recovered panic, skipping file",
				"file", f.Filename, "panic", r)
			rec = nil
		}
	}()

	text, err := s.readText(ctx, f)
	if err != nil {
		log.Warn("claimService.processFile: skipping file",
			"file", f.Filename, "error", err)
		return nil
	}

	docType := classifier.Classify(f.Filename, text)
	rec, defaulted := extractor.For(docType).ExtractWithTrace(text)
	log.Debug("claimService.processFile: extracted document",
		"file", f.Filename, "type", docType, "defaulted_fields", defaulted)

	return rec
}

// readText returns the file's text, or domain.ErrEmptyText when nothing but
// whitespace was extracted.
func (s *claimService) readText(ctx context.Context, f domain.InputFile) (string, error) {
	text, err := s.textExtractor.ExtractText(ctx, f.Content)
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyText
	}
	return text, nil
}
