package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"trending/internal/apperr"
	"trending/internal/domain"
	"trending/internal/port"
)

const (
	FormatList  = "list"
	FormatTable = "table"
	FormatJSON  = "json"
)

// NoResultsMessage is printed by the text formats when nothing was counted.
const NoResultsMessage = "No hashtags found."

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{FormatList, FormatTable, FormatJSON}
}

// NewReporter returns a reporter that writes result in the named format to w.
func NewReporter(format string, w io.Writer) (port.Reporter, error) {
	switch format {
	case FormatList, "":
		return &ListReporter{w: w}, nil
	case FormatTable:
		return &TableReporter{w: w}, nil
	case FormatJSON:
		return &JSONReporter{w: w}, nil
	default:
		return nil, apperr.NewInvalidArgument(fmt.Sprintf("unknown output format %q", format))
	}
}

// ListReporter prints one "token: count" line per entry.
type ListReporter struct {
	w io.Writer
}

func (r *ListReporter) Report(result domain.TopKResult) error {
	if len(result) == 0 {
		_, err := fmt.Fprintln(r.w, NoResultsMessage)
		return err
	}
	for _, e := range result {
		if _, err := fmt.Fprintln(r.w, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// TableReporter prints a ranked table.
type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(result domain.TopKResult) error {
	if len(result) == 0 {
		_, err := fmt.Fprintln(r.w, NoResultsMessage)
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetOutputMirror(r.w)
	t.AppendHeader(table.Row{"Rank", "Hashtag", "Count"})
	for i, e := range result {
		t.AppendRow(table.Row{i + 1, e.Token, e.Count})
	}
	t.Render()
	return nil
}

// JSONReporter prints the result as an indented JSON array.
type JSONReporter struct {
	w io.Writer
}

func (r *JSONReporter) Report(result domain.TopKResult) error {
	if result == nil {
		result = domain.TopKResult{}
	}
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(r.w, string(output))
	return err
}
