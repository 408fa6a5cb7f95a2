package project

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rpggio/worklog/internal/domain/commit"
)

const (
	defaultBranch      = "main"
	recentCommitsShown = 3
)

// RepoName derives a display name from a repository URL: the last path
// segment without its .git suffix, and for scp-like URLs the part after the
// last colon.
func RepoName(url string) string {
	name := url[strings.LastIndex(url, "/")+1:]
	name = strings.TrimSuffix(name, ".git")
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = strings.TrimSuffix(name[i+1:], ".git")
	}
	return name
}

// ConnectGitRepo connects a repository to the project and imports its
// commit history. It returns the number of imported logs. The connection is
// kept even if the import fails.
func (s *Service) ConnectGitRepo(ctx context.Context, name, url string) (int, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return 0, ErrInvalidInput
	}

	err := s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		p.GitRepo = &GitRepo{
			URL:       url,
			Name:      RepoName(url),
			Branch:    defaultBranch,
			Connected: true,
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("git repository connected", "project", name, "url", url)

	return s.ImportCommitHistory(ctx, name)
}

// ImportCommitHistory appends a log for every fetched commit whose hash is
// not already present. It returns the number of logs added.
func (s *Service) ImportCommitHistory(ctx context.Context, name string) (int, error) {
	proj, err := s.Project(name)
	if err != nil {
		return 0, err
	}
	if proj.GitRepo == nil {
		return 0, fmt.Errorf("%w: %s", ErrGitNotConnected, name)
	}

	commits, err := s.commits.FetchRecentCommits(ctx, commit.Repo{
		URL:    proj.GitRepo.URL,
		Name:   proj.GitRepo.Name,
		Branch: proj.GitRepo.Branch,
	})
	if err != nil {
		return 0, fmt.Errorf("fetching commits: %w", err)
	}

	added := 0
	err = s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		if p.GitRepo == nil {
			return fmt.Errorf("%w: %s", ErrGitNotConnected, name)
		}
		for _, c := range commits {
			if hasCommit(p.Logs, c.Hash) {
				continue
			}
			p.Logs = append(p.Logs, s.commitLog(c))
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("commit history imported", "project", name, "fetched", len(commits), "added", added)
	return added, nil
}

func hasCommit(logs []Log, hash string) bool {
	return slices.ContainsFunc(logs, func(l Log) bool {
		return l.IsCommit() && l.CommitHash == hash
	})
}

func (s *Service) commitLog(c commit.CommitRecord) Log {
	var files []string
	if len(c.Files) > 0 {
		files = slices.Clone(c.Files)
	}
	return Log{
		ID:            s.newID(),
		Text:          "Git commit: " + c.Message,
		Timestamp:     c.Date.UTC().Truncate(timestampPrecision),
		Tags:          []string{"git", "commit"},
		Type:          LogTypeCommit,
		CommitHash:    c.Hash,
		CommitMessage: c.Message,
		CommitAuthor:  c.Author,
		CommitFiles:   files,
	}
}

// GitStatus reports the connected repository and its commit logs.
func (s *Service) GitStatus(name string) (GitStatus, error) {
	p, err := s.Project(name)
	if err != nil {
		return GitStatus{}, err
	}
	if p.GitRepo == nil {
		return GitStatus{}, fmt.Errorf("%w: %s", ErrGitNotConnected, name)
	}

	var commits []Log
	for _, l := range p.Logs {
		if l.IsCommit() {
			commits = append(commits, l)
		}
	}
	recent := commits
	if len(recent) > recentCommitsShown {
		recent = recent[len(recent)-recentCommitsShown:]
	}
	return GitStatus{
		Repo:          *p.GitRepo,
		TotalCommits:  len(commits),
		RecentCommits: recent,
	}, nil
}
