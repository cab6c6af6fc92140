package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rohankatakam/gitprice/internal/models"
)

// TextFormatter prints the breakdown selected by verbosity followed by the totals
type TextFormatter struct {
	verbosity Verbosity
}

// NewTextFormatter creates a text formatter
func NewTextFormatter(verbosity Verbosity) *TextFormatter {
	return &TextFormatter{verbosity: verbosity}
}

func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	report := result.Report
	if report == nil {
		report = &models.Report{}
	}

	for _, event := range report.Events {
		switch event.Kind {
		case models.EventHourly:
			f.formatHourly(w, event)
		case models.EventLines:
			f.formatLines(w, event, int64(result.GapThreshold.Seconds()))
		}
	}

	fmt.Fprintln(w)
	if IsTerminal(w) {
		fmt.Fprintln(w, strings.Repeat("─", ruleWidth(w)))
	}
	fmt.Fprintf(w, "Totals:\n\n")
	fmt.Fprintf(w, "pay=%.2f\n", report.Pay)
	fmt.Fprintf(w, "total_time=%.4f\n", report.TotalHours)
	fmt.Fprintf(w, "total_lines=%d\n", report.TotalLines)
	return nil
}

func (f *TextFormatter) formatHourly(w io.Writer, event models.BillingEvent) {
	if !f.verbosity.Has(ShowHourly) {
		return
	}
	fmt.Fprintln(w)
	if f.verbosity.Has(ShowHourly | ShowCommits) {
		fmt.Fprintf(w, "%s %s\n", event.From, event.To)
	}
	fmt.Fprintf(w, "time=%s\n", formatFloat(event.Hours))
	fmt.Fprintf(w, "pay=%s\n", formatFloat(event.Pay))
}

func (f *TextFormatter) formatLines(w io.Writer, event models.BillingEvent, gapSeconds int64) {
	if !f.verbosity.Has(ShowLines) {
		return
	}
	fmt.Fprintln(w)
	if f.verbosity.Has(ShowLines | ShowCommits) {
		fmt.Fprintf(w, "%s %s\n", event.From, event.To)
	}
	fmt.Fprintf(w, "%d - %d = %d > %d\n", event.ToTimestamp, event.FromTimestamp, event.Elapsed, gapSeconds)
	fmt.Fprintf(w, "lines=%d\n", event.Lines)
	fmt.Fprintf(w, "pay=%s\n", formatFloat(event.Pay))
}

// formatFloat prints the shortest exact representation, e.g. 0.5 or 12.25
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
