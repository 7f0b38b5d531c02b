package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/model"
)

// Format is an export file format
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DefaultBasename is used when no file name is given
const DefaultBasename = "meeting_insights"

const (
	rowSummary    = "Summary"
	rowObjection  = "Objection"
	rowActionItem = "Action Item"
	sheetName     = "Insights"
)

var header = []string{"Type", "Content"}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", apperrors.InvalidField("format", "must be csv, json, or xlsx")
	}
}

// ContentType returns the MIME type sent with a download
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv;charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// Filename returns <basename>.<format>. Path elements and a trailing export extension
// are stripped.
func (f Format) Filename(basename string) string {
	base := filepath.Base(strings.TrimSpace(basename))
	if ext := strings.ToLower(filepath.Ext(base)); ext != "" {
		if _, err := ParseFormat(ext[1:]); err == nil {
			base = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = DefaultBasename
	}
	return base + "." + string(f)
}

// Write serializes result in the given format
func Write(w io.Writer, format Format, result *model.ExtractionResult) error {
	switch format {
	case FormatJSON:
		return JSON(w, result)
	case FormatCSV:
		return CSV(w, result)
	case FormatXLSX:
		return XLSX(w, result)
	default:
		return apperrors.InvalidField("format", fmt.Sprintf("unsupported export format: %s", format))
	}
}

// JSON writes the result pretty-printed with a two-space indent.
func JSON(w io.Writer, result *model.ExtractionResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// CSV writes Type,Content rows with CRLF line endings. Fields containing a comma, a
// quote or a line break are quoted and inner quotes are doubled.
func CSV(w io.Writer, result *model.ExtractionResult) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.UseCRLF = true

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := csvWriter.WriteAll(Rows(result)); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}

// XLSX writes the CSV rows into a single worksheet
func XLSX(w io.Writer, result *model.ExtractionResult) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	for _, record := range append([][]string{header}, Rows(result)...) {
		row := sheet.AddRow()
		for _, value := range record {
			row.AddCell().Value = value
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

// Rows returns the export records without the header: the summary, each objection
// and each action item in their original order.
func Rows(result *model.ExtractionResult) [][]string {
	rows := make([][]string, 0, 1+len(result.Objections)+len(result.ActionItems))
	rows = append(rows, []string{rowSummary, result.Summary})
	rows = append(rows, lo.Map(result.Objections, func(o string, _ int) []string {
		return []string{rowObjection, o}
	})...)
	rows = append(rows, lo.Map(result.ActionItems, func(a string, _ int) []string {
		return []string{rowActionItem, a}
	})...)
	return rows
}
