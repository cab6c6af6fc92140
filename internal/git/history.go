package git

import (
	"bufio"
	"context"
	"strings"

	"github.com/rohankatakam/gitprice/internal/errors"
	"github.com/rohankatakam/gitprice/internal/models"
	"github.com/sirupsen/logrus"
)

// Commits reads every commit reachable from HEAD, newest first.
//
// Dates are requested in the default format regardless of the user's
// log.date setting so that ParseLog always sees DateLayout.
func (c *Client) Commits(ctx context.Context) ([]models.Commit, error) {
	output, err := c.run(ctx, "log", "--date=default", "--no-color")
	if err != nil {
		return nil, err
	}

	commits, err := ParseLog(output)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("commits", len(commits)).Debug("Parsed git log")
	if c.trace {
		for _, commit := range commits {
			c.logger.WithFields(logrus.Fields{
				"id":        commit.ID,
				"author":    commit.Author,
				"timestamp": commit.Timestamp,
			}).Debug("Commit")
		}
	}
	return commits, nil
}

// ParseLog parses the output of `git log` in its default (medium) format.
//
// Only the "commit", "Author:" and "Date:" header lines are used; merge lines
// and the indented message body are ignored. A date that does not parse makes
// the whole log invalid.
func ParseLog(output string) ([]models.Commit, error) {
	var commits []models.Commit
	var current *models.Commit
	var sawDate bool

	flush := func() error {
		if current == nil {
			return nil
		}
		if !sawDate {
			return errors.ValidationErrorf("commit %s has no Date line", current.ID).
				WithContext("commit", current.ID)
		}
		commits = append(commits, *current)
		return nil
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "commit "):
			if err := flush(); err != nil {
				return nil, err
			}
			// "commit <hash>" optionally followed by decorations
			fields := strings.Fields(line)
			current = &models.Commit{ID: fields[1]}
			sawDate = false

		case current == nil:
			continue

		case strings.HasPrefix(line, "Author:"):
			current.Author = strings.TrimSpace(strings.TrimPrefix(line, "Author:"))

		case strings.HasPrefix(line, "Date:"):
			date := strings.TrimSpace(strings.TrimPrefix(line, "Date:"))
			ts, err := ParseDate(date)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeValidation, errors.SeverityCritical,
					"malformed date in commit "+current.ID).
					WithContext("commit", current.ID).
					WithContext("date", date)
			}
			current.Timestamp = ts
			sawDate = true
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.InternalErrorf("scanning git log output: %v", err)
	}

	// Don't forget the last commit
	if err := flush(); err != nil {
		return nil, err
	}

	return commits, nil
}
