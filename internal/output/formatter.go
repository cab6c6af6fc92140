package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rohankatakam/gitprice/internal/models"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format selects how results are rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value
func ParseFormat(value string) (Format, error) {
	switch f := Format(value); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", value)
	}
}

// Result is one author's estimate together with the inputs that produced it
type Result struct {
	Author       string         `json:"author" yaml:"author"`
	Commits      int            `json:"commits" yaml:"commits"`
	Cutoff       int64          `json:"cutoff" yaml:"cutoff"`
	HourlyRate   float64        `json:"hourly_rate" yaml:"hourly_rate"`
	LineRate     float64        `json:"line_rate" yaml:"line_rate"`
	GapThreshold time.Duration  `json:"-" yaml:"-"`
	Report       *models.Report `json:"report" yaml:"report"`
}

// Formatter renders an estimate
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter creates the formatter for format. Only the text formatter
// prints breakdowns inline; structured formats embed the selected events.
func NewFormatter(format Format, verbosity Verbosity) Formatter {
	switch format {
	case FormatJSON, FormatYAML:
		return &StructuredFormatter{format: format, verbosity: verbosity}
	default:
		return &TextFormatter{verbosity: verbosity}
	}
}

// StructuredFormatter renders JSON or YAML
type StructuredFormatter struct {
	format    Format
	verbosity Verbosity
}

func (f *StructuredFormatter) Format(w io.Writer, result *Result) error {
	out := *result
	if result.Report != nil {
		report := *result.Report
		report.Events = selectEvents(report.Events, f.verbosity)
		out.Report = &report
	}
	return Encode(w, f.format, &out)
}

// selectEvents keeps the events enabled by verbosity, dropping commit ids
// unless ShowCommits is set
func selectEvents(events []models.BillingEvent, verbosity Verbosity) []models.BillingEvent {
	var selected []models.BillingEvent
	for _, event := range events {
		if event.Kind == models.EventHourly && !verbosity.Has(ShowHourly) {
			continue
		}
		if event.Kind == models.EventLines && !verbosity.Has(ShowLines) {
			continue
		}
		if !verbosity.Has(ShowCommits) {
			event.From, event.To = "", ""
		}
		selected = append(selected, event)
	}
	return selected
}

// Encode writes v as JSON or YAML
func Encode(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ruleWidth is the width of separator rules, capped to the terminal
func ruleWidth(w io.Writer) int {
	const maxWidth = 65
	f, ok := w.(*os.File)
	if !ok {
		return maxWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || width > maxWidth {
		return maxWidth
	}
	return width
}
