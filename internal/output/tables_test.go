package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rohankatakam/gitprice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAuthors(t *testing.T) {
	var buf bytes.Buffer
	FormatAuthors(&buf, []models.AuthorStats{
		{
			Author:       "Alice <alice@example.com>",
			TotalCommits: 12,
			FirstCommit:  time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
			LastCommit:   time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC),
		},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "COMMITS")
	assert.Contains(t, lines[1], "12")
	assert.Contains(t, lines[1], "2024-01-02 09:00")
	assert.Contains(t, lines[1], "2024-03-04 17:30")
	assert.True(t, strings.HasSuffix(lines[1], "Alice <alice@example.com>"))
}

func TestFormatAuthorsEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatAuthors(&buf, nil)
	assert.Equal(t, "No commits found\n", buf.String())
}

func TestFormatSummaryTotals(t *testing.T) {
	var buf bytes.Buffer
	FormatSummary(&buf, []SummaryRow{
		{Author: "Alice", Commits: 3, Report: &models.Report{Pay: 12.5, TotalHours: 1.25, TotalLines: 0}},
		{Author: "Bob", Commits: 2, Report: &models.Report{Pay: 1, TotalHours: 0, TotalLines: 20}},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	total := lines[3]
	assert.True(t, strings.HasSuffix(total, "TOTAL"))
	assert.Contains(t, total, "13.50")
	assert.Contains(t, total, "1.2500")
	assert.Contains(t, total, "20")
	assert.Contains(t, total, "5")
}

func TestFormatHistory(t *testing.T) {
	var buf bytes.Buffer
	FormatHistory(&buf, []models.Estimate{
		{
			ID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
			Author:     "Alice",
			Pay:        17,
			TotalHours: 1.5,
			TotalLines: 40,
			CreatedAt:  time.Date(2024, 5, 6, 7, 8, 0, 0, time.UTC),
		},
	})

	out := buf.String()
	assert.Contains(t, out, "0f8fad5b ")
	assert.NotContains(t, out, "d9cb")
	assert.Contains(t, out, "2024-05-06 07:08")
	assert.Contains(t, out, "17.00")
}

func TestFormatHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatHistory(&buf, nil)
	assert.Equal(t, "No recorded estimates\n", buf.String())
}
