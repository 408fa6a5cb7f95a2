package commit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rpggio/worklog/internal/domain/commit"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_FixedHistory(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	p := commit.NewMockProvider(func() time.Time { return now })

	commits, err := p.FetchRecentCommits(context.Background(), commit.Repo{})
	require.NoError(t, err)
	require.Len(t, commits, 4)

	hashes := make([]string, 0, len(commits))
	for _, c := range commits {
		hashes = append(hashes, c.Hash)
		require.Equal(t, "Developer", c.Author)
	}
	require.Equal(t, []string{"a1b2c3d", "e4f5g6h", "i7j8k9l", "m1n2o3p"}, hashes)
	require.Equal(t, now.Add(-7*24*time.Hour), commits[0].Date)
	require.Equal(t, now.Add(-24*time.Hour), commits[3].Date)
	require.Equal(t, []string{"git.js", "app.js"}, commits[3].Files)
}

func TestNewProvider(t *testing.T) {
	p, err := commit.NewProvider("", 0)
	require.NoError(t, err)
	require.IsType(t, &commit.MockProvider{}, p)

	p, err = commit.NewProvider(commit.ProviderLocal, 10)
	require.NoError(t, err)
	require.IsType(t, &commit.GitProvider{}, p)

	_, err = commit.NewProvider("github", 0)
	require.ErrorIs(t, err, commit.ErrUnknownProvider)
}

func initRepo(t *testing.T, messages ...string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	when := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, msg := range messages {
		name := filepath.Join(dir, "file"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(name, []byte(msg+"\n"), 0o644))
		_, err := wt.Add(filepath.Base(name))
		require.NoError(t, err)
		_, err = wt.Commit(msg+"\n", &git.CommitOptions{
			Author: &object.Signature{
				Name:  "Tester",
				Email: "tester@example.com",
				When:  when.Add(time.Duration(i) * time.Hour),
			},
		})
		require.NoError(t, err)
	}
	return dir
}

func TestGitProvider_ReadsLocalHistory(t *testing.T) {
	dir := initRepo(t, "first", "second", "third")
	p := commit.NewGitProvider(0)

	commits, err := p.FetchRecentCommits(context.Background(), commit.Repo{URL: dir, Branch: "main"})
	require.NoError(t, err)
	require.Len(t, commits, 3)

	require.Equal(t, "first", commits[0].Message)
	require.Equal(t, "third", commits[2].Message)
	require.Equal(t, "Tester", commits[0].Author)
	require.Len(t, commits[0].Hash, 7)
	require.Equal(t, []string{"filea.txt"}, commits[0].Files)
	require.True(t, commits[0].Date.Before(commits[2].Date))
}

func TestGitProvider_Limit(t *testing.T) {
	dir := initRepo(t, "one", "two", "three")
	p := commit.NewGitProvider(2)

	commits, err := p.FetchRecentCommits(context.Background(), commit.Repo{URL: "file://" + filepath.ToSlash(dir)})
	require.NoError(t, err)
	require.Len(t, commits, 2)
	require.Equal(t, "two", commits[0].Message)
	require.Equal(t, "three", commits[1].Message)
}

func TestGitProvider_RejectsRemote(t *testing.T) {
	p := commit.NewGitProvider(0)
	for _, url := range []string{"https://github.com/user/repo.git", "git@github.com:user/repo.git", ""} {
		_, err := p.FetchRecentCommits(context.Background(), commit.Repo{URL: url})
		require.ErrorIs(t, err, commit.ErrUnsupportedRemote, url)
	}
}
