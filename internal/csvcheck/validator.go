// Package csvcheck validates CSV files against a per-column schema in one
// pass. It reports findings instead of failing fast: every problem row is
// catalogued up to the configured error cap, so one bad cell does not hide
// the rest of the file.
package csvcheck

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/moringa-school/karibu/internal/logging"
)

// Type names the value format a column must parse as.
type Type string

const (
	TypeString Type = "string"
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeBool   Type = "bool"
	TypeTime   Type = "time"
)

// boolValues are the accepted spellings for TypeBool, case-insensitive.
var boolValues = map[string]struct{}{
	"true": {}, "false": {}, "1": {}, "0": {}, "yes": {}, "no": {},
}

// timeFormats are tried in order for TypeTime columns.
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
}

// Rule constrains one column. A zero rule means: optional free-form text.
type Rule struct {
	Type     Type
	Required bool
	// Validator runs after the type check on non-empty values. A non-nil
	// error fails the cell with the error text as the message.
	Validator func(value string) error
}

// Schema maps column names to their rules.
type Schema map[string]Rule

// Kind classifies a finding.
type Kind string

const (
	KindFile       Kind = "file"
	KindStructural Kind = "structural"
	KindType       Kind = "type"
	KindRequired   Kind = "required"
	KindCustom     Kind = "custom"
)

// Issue is one finding. Line 0 means the file as a whole; line 1 is the
// header row; data rows start at 2.
type Issue struct {
	Line    int
	Column  string
	Kind    Kind
	Message string
	Value   string
}

// Report is the outcome of validating one file.
type Report struct {
	Valid         bool
	FilePath      string
	TotalRows     int
	RowsValidated int
	Summary       map[Kind]int
	Issues        []Issue
}

// ErrorCount returns the number of findings.
func (r *Report) ErrorCount() int {
	return len(r.Issues)
}

func (r *Report) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
	r.Summary[issue.Kind]++
	r.Valid = false
}

// Validator checks CSV files against one schema.
type Validator struct {
	schema  Schema
	columns []string // schema columns in stable order
	comma   rune
	// maxErrors stops collection once reached; 0 collects everything.
	maxErrors int
	log       *slog.Logger
}

// Option configures the Validator.
type Option func(*Validator)

// WithMaxErrors caps how many findings are collected before the scan stops.
func WithMaxErrors(n int) Option {
	return func(v *Validator) {
		v.maxErrors = n
	}
}

// WithComma sets the field delimiter.
func WithComma(c rune) Option {
	return func(v *Validator) {
		v.comma = c
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.log = logger
	}
}

// New creates a validator for the given schema.
func New(schema Schema, opts ...Option) *Validator {
	v := &Validator{
		schema: schema,
		comma:  ',',
		log:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.columns = make([]string, 0, len(schema))
	for col := range schema {
		v.columns = append(v.columns, col)
	}
	sort.Strings(v.columns)

	return v
}

// ValidateFile runs the full check against the file at path. It always
// returns a report; file-level problems appear as findings rather than
// an error return.
func (v *Validator) ValidateFile(path string) *Report {
	report := &Report{
		Valid:    true,
		FilePath: path,
		Summary:  make(map[Kind]int),
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		report.add(Issue{Kind: KindFile, Message: fmt.Sprintf("File not found: %s", path)})
		return report
	case err != nil:
		report.add(Issue{Kind: KindFile, Message: fmt.Sprintf("File access error: %v", err)})
		return report
	case info.IsDir():
		report.add(Issue{Kind: KindFile, Message: fmt.Sprintf("Path is not a file: %s", path)})
		return report
	case info.Size() == 0:
		report.add(Issue{Kind: KindFile, Message: "File is empty"})
		return report
	}

	f, err := os.Open(path)
	if err != nil {
		report.add(Issue{Kind: KindFile, Message: fmt.Sprintf("Error opening file: %v", err)})
		return report
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = v.comma
	// Ragged rows are a cell-level finding, not a parse abort.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		report.add(Issue{Line: 1, Kind: KindStructural, Message: "No headers found in CSV file"})
		return report
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, col := range v.columns {
		if _, ok := index[col]; !ok {
			report.add(Issue{
				Line:    1,
				Column:  col,
				Kind:    KindStructural,
				Message: fmt.Sprintf("Required column %q not found in CSV headers", col),
			})
		}
	}
	for name := range index {
		if _, ok := v.schema[name]; !ok {
			v.log.Debug("column not covered by schema", "column", name)
		}
	}
	if report.Summary[KindStructural] > 0 {
		// Cell checks against a broken header would only repeat the same
		// finding per row.
		return report
	}

	v.checkRows(r, index, report)
	return report
}

func (v *Validator) checkRows(r *csv.Reader, index map[string]int, report *Report) {
	full := func() bool {
		return v.maxErrors > 0 && report.ErrorCount() >= v.maxErrors
	}

	// Data rows start at line 2; line 1 is the header.
	for line := 2; ; line++ {
		if full() {
			return
		}

		record, err := r.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			report.add(Issue{Line: line, Kind: KindStructural, Message: fmt.Sprintf("CSV parsing error: %v", err)})
			return
		}

		report.TotalRows++
		rowValid := true

		for _, col := range v.columns {
			value := ""
			if i := index[col]; i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			rule := v.schema[col]

			if value == "" {
				if rule.Required {
					report.add(Issue{
						Line:    line,
						Column:  col,
						Kind:    KindRequired,
						Message: fmt.Sprintf("Required field %q is empty or missing", col),
					})
					rowValid = false
					if full() {
						break
					}
				}
				continue
			}

			if err := checkType(rule.Type, value); err != nil {
				report.add(Issue{
					Line:    line,
					Column:  col,
					Kind:    KindType,
					Message: fmt.Sprintf("Invalid type for %q. Expected %s, got %q", col, rule.Type, value),
					Value:   value,
				})
				rowValid = false
				if full() {
					break
				}
				continue
			}

			if rule.Validator != nil {
				if err := rule.Validator(value); err != nil {
					report.add(Issue{
						Line:    line,
						Column:  col,
						Kind:    KindCustom,
						Message: fmt.Sprintf("Custom validation failed for %q: %v", col, err),
						Value:   value,
					})
					rowValid = false
					if full() {
						break
					}
				}
			}
		}

		if rowValid {
			report.RowsValidated++
		}
	}
}

func checkType(t Type, value string) error {
	switch t {
	case "", TypeString:
		return nil
	case TypeInt:
		_, err := strconv.Atoi(value)
		return err
	case TypeFloat:
		_, err := strconv.ParseFloat(value, 64)
		return err
	case TypeBool:
		if _, ok := boolValues[strings.ToLower(value)]; !ok {
			return fmt.Errorf("invalid boolean value %q", value)
		}
		return nil
	case TypeTime:
		for _, format := range timeFormats {
			if _, err := time.Parse(format, value); err == nil {
				return nil
			}
		}
		return fmt.Errorf("invalid date format %q", value)
	default:
		return fmt.Errorf("unknown column type %q", t)
	}
}
