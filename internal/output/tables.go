package output

import (
	"fmt"
	"io"

	"github.com/rohankatakam/gitprice/internal/models"
)

const tableTime = "2006-01-02 15:04"

// SummaryRow is one author's line in the summary table
type SummaryRow struct {
	Author  string         `json:"author" yaml:"author"`
	Commits int            `json:"commits" yaml:"commits"`
	Report  *models.Report `json:"report" yaml:"report"`
}

// FormatAuthors prints one line per author
func FormatAuthors(w io.Writer, authors []models.AuthorStats) {
	if len(authors) == 0 {
		fmt.Fprintln(w, "No commits found")
		return
	}

	fmt.Fprintf(w, "%7s  %-16s  %-16s  %s\n", "COMMITS", "FIRST", "LAST", "AUTHOR")
	for _, a := range authors {
		fmt.Fprintf(w, "%7d  %-16s  %-16s  %s\n",
			a.TotalCommits,
			a.FirstCommit.UTC().Format(tableTime),
			a.LastCommit.UTC().Format(tableTime),
			a.Author)
	}
}

// FormatSummary prints the per-author estimate table and a grand total
func FormatSummary(w io.Writer, rows []SummaryRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No commits found")
		return
	}

	fmt.Fprintf(w, "%10s  %10s  %7s  %7s  %s\n", "PAY", "HOURS", "LINES", "COMMITS", "AUTHOR")

	var pay, hours float64
	var lines, commits int
	for _, row := range rows {
		fmt.Fprintf(w, "%10.2f  %10.4f  %7d  %7d  %s\n",
			row.Report.Pay, row.Report.TotalHours, row.Report.TotalLines, row.Commits, row.Author)
		pay += row.Report.Pay
		hours += row.Report.TotalHours
		lines += row.Report.TotalLines
		commits += row.Commits
	}

	fmt.Fprintf(w, "%10.2f  %10.4f  %7d  %7d  %s\n", pay, hours, lines, commits, "TOTAL")
}

// FormatHistory prints recorded estimates
func FormatHistory(w io.Writer, estimates []models.Estimate) {
	if len(estimates) == 0 {
		fmt.Fprintln(w, "No recorded estimates")
		return
	}

	fmt.Fprintf(w, "%-8s  %-16s  %10s  %10s  %7s  %s\n", "ID", "RECORDED", "PAY", "HOURS", "LINES", "AUTHOR")
	for _, e := range estimates {
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(w, "%-8s  %-16s  %10.2f  %10.4f  %7d  %s\n",
			id, e.CreatedAt.UTC().Format(tableTime), e.Pay, e.TotalHours, e.TotalLines, e.Author)
	}
}
