// Package claim holds the built-in cross-document rules for claim batches.
package claim

import "claimflow/internal/domain"

// BuiltinRule wraps a rule function and its metadata for the registry.
type BuiltinRule struct {
	key  string
	name string
	fn   func([]domain.Record) []string
}

func (b *BuiltinRule) Check(records []domain.Record) []string { return b.fn(records) }
func (b *BuiltinRule) RuleKey() string                        { return b.key }
func (b *BuiltinRule) RuleName() string                       { return b.name }

// AllBuiltinRules returns every built-in claim rule in evaluation order.
func AllBuiltinRules() []*BuiltinRule {
	return CrossDocumentRules()
}
