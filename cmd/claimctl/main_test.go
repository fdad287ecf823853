package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimflow/internal/domain"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func fixtures(t *testing.T) []string {
	dir := t.TempDir()
	return []string{
		writeFixture(t, dir, "hospital_bill.txt",
			"Hospital: City General Hospital\nDate of Service: 2024-04-05\nTotal: $2,400.00\n"),
		writeFixture(t, dir, "discharge_summary.txt",
			"Patient Name: Jane Smith\nDiagnosis: Pneumonia\nAdmission Date: 2024-04-01\nDischarge Date: 2024-04-10\n"),
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CLAIMFLOW_LOG_LEVEL", "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProcess_JSON(t *testing.T) {
	out, err := execute(t, append([]string{"process"}, fixtures(t)...)...)
	require.NoError(t, err)

	var result struct {
		Documents     []map[string]any     `json:"documents"`
		ClaimDecision domain.ClaimDecision `json:"claim_decision"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Documents, 2)
	assert.Equal(t, "bill", result.Documents[0]["type"])
	assert.Equal(t, domain.ClaimStatusApproved, result.ClaimDecision.Status)
}

func TestProcess_YAML(t *testing.T) {
	out, err := execute(t, append([]string{"process", "--output", "yaml"}, fixtures(t)...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "claim_decision:")
	assert.Contains(t, out, "status: approved")
	assert.Contains(t, out, "type: bill")
}

func TestProcess_CSVToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.csv")
	_, err := execute(t, append([]string{"process", "-o", "csv", "--out", target, "--concurrency", "1"}, fixtures(t)...)...)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "City General Hospital")
	assert.Contains(t, string(data), "Document Type")
}

func TestProcess_UnknownOutput(t *testing.T) {
	_, err := execute(t, append([]string{"process", "--output", "toml"}, fixtures(t)...)...)
	assert.ErrorContains(t, err, "unknown output format")
}

func TestProcess_MissingFile(t *testing.T) {
	_, err := execute(t, "process", filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	out, err := execute(t, append([]string{"classify"}, fixtures(t)...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "FILE")
	assert.Regexp(t, `hospital_bill\.txt\s+bill\s+`, out)
	assert.Regexp(t, `discharge_summary\.txt\s+discharge_summary\s+`, out)
}

func TestParseOutput(t *testing.T) {
	for _, in := range []string{"json", "YAML", " csv ", "xlsx"} {
		_, err := parseOutput(in)
		assert.NoError(t, err, in)
	}
	_, err := parseOutput("")
	assert.Error(t, err)
}
