package commit

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	// DefaultLogLimit bounds how many commits a GitProvider walks.
	DefaultLogLimit = 50
	shortHashLen    = 7
)

// GitProvider reads commit history from a repository on local disk.
type GitProvider struct {
	limit int
}

// NewGitProvider creates a GitProvider walking at most limit commits.
func NewGitProvider(limit int) *GitProvider {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	return &GitProvider{limit: limit}
}

// FetchRecentCommits walks the connected branch (or HEAD) and returns the
// most recent commits, oldest first.
func (p *GitProvider) FetchRecentCommits(ctx context.Context, repo Repo) ([]CommitRecord, error) {
	path, err := localPath(repo.URL)
	if err != nil {
		return nil, err
	}

	r, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	opts := &git.LogOptions{}
	if repo.Branch != "" {
		if ref, err := r.Reference(plumbing.NewBranchReferenceName(repo.Branch), true); err == nil {
			opts.From = ref.Hash()
		}
	}

	iter, err := r.Log(opts)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}
	defer iter.Close()

	var commits []CommitRecord
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(commits) >= p.limit {
			return io.EOF
		}
		rec, err := toCommitRecord(c)
		if err != nil {
			return err
		}
		commits = append(commits, rec)
		return nil
	})
	if err != nil && err != io.EOF {
		return nil, err
	}

	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
	return commits, nil
}

func toCommitRecord(c *object.Commit) (CommitRecord, error) {
	stats, err := c.Stats()
	if err != nil {
		return CommitRecord{}, fmt.Errorf("commit stats %s: %w", c.Hash, err)
	}
	files := make([]string, 0, len(stats))
	for _, st := range stats {
		files = append(files, st.Name)
	}

	hash := c.Hash.String()
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}

	return CommitRecord{
		Hash:    hash,
		Message: strings.TrimSpace(c.Message),
		Author:  c.Author.Name,
		Date:    c.Author.When.UTC(),
		Files:   files,
	}, nil
}

// localPath accepts plain filesystem paths and file:// URLs.
func localPath(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty url", ErrUnsupportedRemote)
	}
	if strings.HasPrefix(raw, "file://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnsupportedRemote, err)
		}
		return filepath.FromSlash(u.Path), nil
	}
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "git@") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedRemote, raw)
	}
	return filepath.Clean(raw), nil
}
