package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rohankatakam/gitprice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	john = "John Doe <john@example.com>"
	jane = "Jane Smith <jane@example.com>"
)

// logOrder is newest first, as git log prints it
var logOrder = []models.Commit{
	{ID: "e", Author: john, Timestamp: 500},
	{ID: "d", Author: jane, Timestamp: 400},
	{ID: "c2", Author: john, Timestamp: 300},
	{ID: "c1", Author: john, Timestamp: 300},
	{ID: "b", Author: jane, Timestamp: 200},
	{ID: "a", Author: john, Timestamp: 100},
}

type fakeSource struct {
	commits []models.Commit
	err     error
}

func (f fakeSource) Commits(ctx context.Context) ([]models.Commit, error) {
	return f.commits, f.err
}

func ids(commits []models.Commit) []string {
	out := make([]string, len(commits))
	for i, c := range commits {
		out[i] = c.ID
	}
	return out
}

func TestForAuthorSortsAscending(t *testing.T) {
	store := NewStore(logOrder)

	assert.Equal(t, []string{"a", "c1", "c2", "e"}, ids(store.ForAuthor(john)))
	assert.Equal(t, []string{"b", "d"}, ids(store.ForAuthor(jane)))
}

func TestForAuthorMatching(t *testing.T) {
	store := NewStore(logOrder)

	tests := []struct {
		query string
		want  int
	}{
		{john, 4},
		{"John Doe", 4},
		{"JOHN@example.com", 4},
		{"john", 0},
		{"", 0},
		{"Nobody <nobody@example.com>", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Len(t, store.ForAuthor(tt.query), tt.want)
		})
	}
}

func TestForAuthorDoesNotMutateStore(t *testing.T) {
	store := NewStore(logOrder)
	first := store.ForAuthor(john)
	first[0].ID = "changed"

	assert.Equal(t, "a", store.ForAuthor(john)[0].ID)
	assert.Equal(t, 6, store.Len())
}

func TestAuthors(t *testing.T) {
	store := NewStore(logOrder)
	authors := store.Authors()

	require.Len(t, authors, 2)
	assert.Equal(t, john, authors[0].Author)
	assert.Equal(t, 4, authors[0].TotalCommits)
	assert.True(t, authors[0].FirstCommit.Equal(time.Unix(100, 0)))
	assert.True(t, authors[0].LastCommit.Equal(time.Unix(500, 0)))
	assert.Equal(t, jane, authors[1].Author)
	assert.Equal(t, 2, authors[1].TotalCommits)
}

func TestLoad(t *testing.T) {
	store, err := Load(context.Background(), fakeSource{commits: logOrder})
	require.NoError(t, err)
	assert.Equal(t, 6, store.Len())

	_, err = Load(context.Background(), fakeSource{err: fmt.Errorf("git log failed")})
	assert.Error(t, err)
}

func TestSplitAuthor(t *testing.T) {
	name, email := SplitAuthor(john)
	assert.Equal(t, "John Doe", name)
	assert.Equal(t, "john@example.com", email)

	name, email = SplitAuthor("buildbot")
	assert.Equal(t, "buildbot", name)
	assert.Empty(t, email)
}
