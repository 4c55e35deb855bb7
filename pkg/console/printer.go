// Package console renders lines and tables to a terminal. Tables default to
// aligned columns with uppercased headers; JSON and YAML formats emit one
// object per row keyed by column name.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Printer is the console collaborator used by documents and orchestrators.
// Output is a side effect only; write failures are not reported.
type Printer interface {
	Line(msg string)
	Table(columns []string, rows [][]string)
}

// Format selects how tables are serialized.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Option configures a Writer.
type Option func(*Writer)

// WithOutput redirects output; nil keeps the current writer.
func WithOutput(out io.Writer) Option {
	return func(w *Writer) {
		if out != nil {
			w.out = out
		}
	}
}

// WithFormat selects the table serialization format.
func WithFormat(format Format) Option {
	return func(w *Writer) {
		if format != "" {
			w.format = format
		}
	}
}

// Writer implements Printer on top of an io.Writer (stdout by default).
type Writer struct {
	out    io.Writer
	format Format
}

var _ Printer = (*Writer)(nil)

// New constructs a Writer.
func New(options ...Option) *Writer {
	w := &Writer{
		out:    os.Stdout,
		format: FormatTable,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Line writes msg followed by a newline.
func (w *Writer) Line(msg string) {
	_, _ = fmt.Fprintln(w.out, msg)
}

// Table renders rows under columns. Nothing is written when columns is empty;
// rows shorter than columns are padded with empty cells.
func (w *Writer) Table(columns []string, rows [][]string) {
	if len(columns) == 0 {
		return
	}
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		_ = enc.Encode(records(columns, rows))
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		_ = enc.Encode(records(columns, rows))
		_ = enc.Close()
	default:
		w.writeAligned(columns, rows)
	}
}

func (w *Writer) writeAligned(columns []string, rows [][]string) {
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = strings.ToUpper(col)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(normalize(row, len(columns)), "\t"))
	}
	_ = tw.Flush()
}

func records(columns []string, rows [][]string) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		cells := normalize(row, len(columns))
		rec := make(map[string]string, len(columns))
		for i, col := range columns {
			rec[col] = cells[i]
		}
		out = append(out, rec)
	}
	return out
}

func normalize(row []string, width int) []string {
	cells := make([]string, width)
	copy(cells, row)
	return cells
}
