package git

import (
	"context"
	"strings"
)

// AddedLines returns the number of added content lines between two commits
func (c *Client) AddedLines(ctx context.Context, older, newer string) (int, error) {
	diff, err := c.run(ctx, "diff", "--no-color", "--no-ext-diff", older, newer)
	if err != nil {
		return 0, err
	}

	lines := CountAddedLines(diff)
	c.logger.WithField("from", older).WithField("to", newer).WithField("lines", lines).Debug("Counted diff")
	return lines, nil
}

// CountAddedLines counts the added lines in a unified diff.
// The "+++" file header is not an added line and neither is a bare "+".
func CountAddedLines(diff string) int {
	if diff == "" {
		return 0
	}

	added := 0
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+++") {
			continue
		}
		if len(line) > 1 && line[0] == '+' {
			added++
		}
	}
	return added
}
