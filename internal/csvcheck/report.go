package csvcheck

import (
	"fmt"
	"io"
	"strings"
)

// maxDetailedIssues bounds the detailed section of a verbose report.
const maxDetailedIssues = 100

var reportKinds = []Kind{KindFile, KindStructural, KindType, KindRequired, KindCustom}

// WriteReport renders the report for terminal reading. Verbose adds the
// per-issue detail section.
func WriteReport(w io.Writer, report *Report, verbose bool) {
	heavy := strings.Repeat("=", 70)
	light := strings.Repeat("-", 70)

	fmt.Fprintln(w)
	fmt.Fprintln(w, heavy)
	fmt.Fprintln(w, "CSV VALIDATION REPORT")
	fmt.Fprintln(w, heavy)
	fmt.Fprintf(w, "File: %s\n", report.FilePath)
	if report.Valid {
		fmt.Fprintln(w, "Status: ✓ VALID")
	} else {
		fmt.Fprintln(w, "Status: ✗ INVALID")
	}
	fmt.Fprintf(w, "Total Rows: %d\n", report.TotalRows)
	fmt.Fprintf(w, "Rows Validated: %d\n", report.RowsValidated)
	fmt.Fprintf(w, "Total Errors: %d\n", report.ErrorCount())

	if report.ErrorCount() > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, light)
		fmt.Fprintln(w, "ERROR SUMMARY")
		fmt.Fprintln(w, light)
		for _, kind := range reportKinds {
			if count := report.Summary[kind]; count > 0 {
				fmt.Fprintf(w, "%s Errors: %d\n", titleKind(kind), count)
			}
		}

		if verbose {
			fmt.Fprintln(w)
			fmt.Fprintln(w, light)
			fmt.Fprintln(w, "DETAILED ERRORS")
			fmt.Fprintln(w, light)
			for i, issue := range report.Issues {
				if i == maxDetailedIssues {
					break
				}
				fmt.Fprintf(w, "\n%d. Line %d, Column %q\n", i+1, issue.Line, issue.Column)
				fmt.Fprintf(w, "   Type: %s\n", issue.Kind)
				fmt.Fprintf(w, "   Message: %s\n", issue.Message)
				if issue.Value != "" {
					fmt.Fprintf(w, "   Value: %s\n", issue.Value)
				}
			}
			if extra := len(report.Issues) - maxDetailedIssues; extra > 0 {
				fmt.Fprintf(w, "\n... and %d more errors\n", extra)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, heavy)
	fmt.Fprintln(w)
}

func titleKind(kind Kind) string {
	s := string(kind)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
