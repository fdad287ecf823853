package validator

import (
	"log/slog"

	"claimflow/internal/domain"
	"claimflow/internal/validator/claim"
)

// Engine cross-checks a batch of extracted records.
type Engine struct {
	registry *Registry
	logger   *slog.Logger
}

// NewEngine creates a validation engine over the given registry.
func NewEngine(registry *Registry, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{registry: registry, logger: logger}
}

// NewDefaultEngine creates an engine with every built-in claim rule registered.
func NewDefaultEngine(logger *slog.Logger) *Engine {
	reg := NewRegistry()
	for _, r := range claim.AllBuiltinRules() {
		reg.Register(r)
	}
	return NewEngine(reg, logger)
}

// Validate reports required document types absent from records, then runs
// every registered rule in order.
func (e *Engine) Validate(records []domain.Record) domain.ValidationResult {
	result := domain.ValidationResult{
		MissingDocuments: MissingDocuments(records),
		Discrepancies:    []string{},
	}

	for _, rule := range e.registry.All() {
		found := rule.Check(records)
		if len(found) > 0 {
			e.logger.Debug("validator.Engine: rule reported discrepancies",
				"rule", rule.RuleKey(), "count", len(found))
		}
		result.Discrepancies = append(result.Discrepancies, found...)
	}

	return result
}

// MissingDocuments returns the required types not present in records, in
// required-set order. The result is never nil.
func MissingDocuments(records []domain.Record) []domain.DocumentType {
	present := make(map[domain.DocumentType]bool, len(records))
	for _, r := range records {
		present[r.DocumentType()] = true
	}

	missing := []domain.DocumentType{}
	for _, t := range domain.RequiredDocumentTypes {
		if !present[t] {
			missing = append(missing, t)
		}
	}
	return missing
}
