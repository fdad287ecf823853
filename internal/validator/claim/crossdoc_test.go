package claim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"claimflow/internal/domain"
	"claimflow/internal/validator/claim"
)

func ruleByKey(t *testing.T, key string) *claim.BuiltinRule {
	t.Helper()
	for _, r := range claim.AllBuiltinRules() {
		if r.RuleKey() == key {
			return r
		}
	}
	t.Fatalf("rule %q not registered", key)
	return nil
}

func TestAllBuiltinRules_Order(t *testing.T) {
	rules := claim.AllBuiltinRules()
	keys := make([]string, len(rules))
	for i, r := range rules {
		keys[i] = r.RuleKey()
		assert.NotEmpty(t, r.RuleName())
	}
	assert.Equal(t, []string{"xdoc.patient_name.consistent", "xdoc.dates.admission_period"}, keys)
}

func TestPatientNameRule(t *testing.T) {
	rule := ruleByKey(t, "xdoc.patient_name.consistent")

	tests := []struct {
		name    string
		records []domain.Record
		want    []string
	}{
		{
			name:    "no records",
			records: nil,
		},
		{
			name: "same name",
			records: []domain.Record{
				domain.DischargeSummaryRecord{PatientName: "Jane Smith"},
				domain.IDCardRecord{PatientName: "Jane Smith"},
			},
		},
		{
			name: "bills carry no name",
			records: []domain.Record{
				domain.BillRecord{HospitalName: "City Hospital"},
				domain.DischargeSummaryRecord{PatientName: "Jane Smith"},
			},
		},
		{
			name: "different names",
			records: []domain.Record{
				domain.DischargeSummaryRecord{PatientName: "Jane Smith"},
				domain.IDCardRecord{PatientName: "John Smith"},
			},
			want: []string{claim.MsgInconsistentPatientNames},
		},
		{
			name: "default name counts",
			records: []domain.Record{
				domain.DischargeSummaryRecord{PatientName: "John Doe"},
				domain.IDCardRecord{PatientName: "Jane Smith"},
			},
			want: []string{claim.MsgInconsistentPatientNames},
		},
		{
			name: "names compared exactly",
			records: []domain.Record{
				domain.DischargeSummaryRecord{PatientName: "Jane Smith"},
				domain.IDCardRecord{PatientName: "jane smith"},
			},
			want: []string{claim.MsgInconsistentPatientNames},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Check(tt.records))
		})
	}
}

func TestAdmissionPeriodRule(t *testing.T) {
	rule := ruleByKey(t, "xdoc.dates.admission_period")

	summary := func(admitted, discharged string) domain.DischargeSummaryRecord {
		return domain.DischargeSummaryRecord{PatientName: "Jane Smith", AdmissionDate: admitted, DischargeDate: discharged}
	}
	bill := func(service string) domain.BillRecord {
		return domain.BillRecord{HospitalName: "City Hospital", TotalAmount: 1000, DateOfService: service}
	}

	tests := []struct {
		name    string
		records []domain.Record
		want    []string
	}{
		{
			name:    "service within period",
			records: []domain.Record{bill("2024-04-05"), summary("2024-04-01", "2024-04-10")},
		},
		{
			name:    "service on boundaries",
			records: []domain.Record{bill("2024-04-01"), summary("2024-04-01", "2024-04-01")},
		},
		{
			name:    "discharge before admission",
			records: []domain.Record{bill("2024-04-05"), summary("2024-04-10", "2024-04-01")},
			want:    []string{claim.MsgDischargeBeforeAdmission, claim.MsgServiceOutsideAdmission},
		},
		{
			name:    "service after discharge",
			records: []domain.Record{bill("2024-04-11"), summary("2024-04-01", "2024-04-10")},
			want:    []string{claim.MsgServiceOutsideAdmission},
		},
		{
			name:    "service before admission",
			records: []domain.Record{summary("2024-04-01", "2024-04-10"), bill("2024-03-31")},
			want:    []string{claim.MsgServiceOutsideAdmission},
		},
		{
			name:    "unparseable date skips check",
			records: []domain.Record{bill("sometime"), summary("2024-04-10", "2024-04-01")},
		},
		{
			name:    "no discharge summary",
			records: []domain.Record{bill("2024-04-05")},
		},
		{
			name: "only first bill considered",
			records: []domain.Record{
				bill("2024-04-05"),
				bill("2025-01-01"),
				summary("2024-04-01", "2024-04-10"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Check(tt.records))
		})
	}
}
