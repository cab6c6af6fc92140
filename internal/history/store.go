package history

import (
	"context"
	"sort"
	"strings"

	"github.com/rohankatakam/gitprice/internal/models"
)

// Source produces the commits of a repository in any order
type Source interface {
	Commits(ctx context.Context) ([]models.Commit, error)
}

// Store holds the commits of one repository in memory
type Store struct {
	commits []models.Commit
}

// Load reads all commits from src into a new Store
func Load(ctx context.Context, src Source) (*Store, error) {
	commits, err := src.Commits(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(commits), nil
}

// NewStore creates a Store from commits in log order (newest first)
func NewStore(commits []models.Commit) *Store {
	// Reverse into oldest-first so that the stable sort in ForAuthor keeps
	// topological order between commits sharing a timestamp.
	ordered := make([]models.Commit, len(commits))
	for i, c := range commits {
		ordered[len(commits)-1-i] = c
	}
	return &Store{commits: ordered}
}

// Len returns the number of commits in the store
func (s *Store) Len() int {
	return len(s.commits)
}

// ForAuthor returns the author's commits sorted by ascending timestamp.
// An unknown author yields an empty slice.
func (s *Store) ForAuthor(author string) []models.Commit {
	var result []models.Commit
	for _, c := range s.commits {
		if MatchAuthor(c.Author, author) {
			result = append(result, c)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp < result[j].Timestamp
	})
	return result
}

// Authors summarizes every author in the store, most commits first
func (s *Store) Authors() []models.AuthorStats {
	byAuthor := make(map[string]*models.AuthorStats)

	for _, c := range s.commits {
		ts := c.Time()
		if stats, exists := byAuthor[c.Author]; exists {
			stats.TotalCommits++
			if ts.After(stats.LastCommit) {
				stats.LastCommit = ts
			}
			if ts.Before(stats.FirstCommit) {
				stats.FirstCommit = ts
			}
		} else {
			byAuthor[c.Author] = &models.AuthorStats{
				Author:       c.Author,
				TotalCommits: 1,
				FirstCommit:  ts,
				LastCommit:   ts,
			}
		}
	}

	authors := make([]models.AuthorStats, 0, len(byAuthor))
	for _, stats := range byAuthor {
		authors = append(authors, *stats)
	}

	sort.Slice(authors, func(i, j int) bool {
		if authors[i].TotalCommits != authors[j].TotalCommits {
			return authors[i].TotalCommits > authors[j].TotalCommits
		}
		return authors[i].Author < authors[j].Author
	})
	return authors
}

// SplitAuthor splits a "Name <email>" display string
func SplitAuthor(display string) (name, email string) {
	open := strings.LastIndex(display, "<")
	if open < 0 || !strings.HasSuffix(display, ">") {
		return strings.TrimSpace(display), ""
	}
	return strings.TrimSpace(display[:open]), display[open+1 : len(display)-1]
}

// MatchAuthor reports whether query names the author of a commit.
// The full display string, the bare name, or the email (case-insensitive) all match.
func MatchAuthor(display, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}
	if display == query {
		return true
	}

	name, email := SplitAuthor(display)
	if name == query {
		return true
	}
	return email != "" && strings.EqualFold(email, query)
}
