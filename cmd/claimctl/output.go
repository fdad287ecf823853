package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"claimflow/internal/domain"
	"claimflow/internal/export"
)

type outputFormat string

const (
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
	outputCSV  outputFormat = outputFormat(domain.ExportFormatCSV)
	outputXLSX outputFormat = outputFormat(domain.ExportFormatXLSX)
)

func parseOutput(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputJSON, outputYAML, outputCSV, outputXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml, csv or xlsx)", s)
	}
}

// render writes result to w in the given format. YAML goes through the JSON
// encoding so records keep their leading "type" key.
func render(w io.Writer, format outputFormat, result *domain.ClaimResult) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case outputYAML:
		raw, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		out, err := yaml.JSONToYAML(raw)
		if err != nil {
			return fmt.Errorf("converting result to yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case outputCSV, outputXLSX:
		return export.Write(w, domain.ExportFormat(format), result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
