package project_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpggio/worklog/internal/domain/commit"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRepoName(t *testing.T) {
	cases := map[string]string{
		"https://github.com/user/worklog.git": "worklog",
		"https://github.com/user/worklog":     "worklog",
		"git@github.com:user/worklog.git":     "worklog",
		"git@host:worklog.git":                "worklog",
		"/home/me/src/my.github.io.git":       "my.github.io",
	}
	for url, want := range cases {
		require.Equal(t, want, project.RepoName(url), url)
	}
}

func TestProjectService_ConnectGitRepoImportsCommits(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)

	added, err := svc.ConnectGitRepo(ctx, "Alpha", "https://github.com/user/worklog.git")
	require.NoError(t, err)
	require.Equal(t, 4, added)

	proj, err := svc.Project("Alpha")
	require.NoError(t, err)
	require.Equal(t, &project.GitRepo{
		URL:       "https://github.com/user/worklog.git",
		Name:      "worklog",
		Branch:    "main",
		Connected: true,
	}, proj.GitRepo)

	first := proj.Logs[0]
	require.Equal(t, "Git commit: Initial commit", first.Text)
	require.Equal(t, []string{"git", "commit"}, first.Tags)
	require.Equal(t, project.LogTypeCommit, first.Type)
	require.Equal(t, "a1b2c3d", first.CommitHash)
	require.Equal(t, "Developer", first.CommitAuthor)
	require.Equal(t, []string{"README.md", "package.json"}, first.CommitFiles)
	require.Equal(t, testNow.Add(-7*24*time.Hour), first.Timestamp)
}

func TestProjectService_ImportCommitHistoryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	_, err = svc.AddLog(ctx, "Alpha", "manual entry", nil)
	require.NoError(t, err)

	_, err = svc.ConnectGitRepo(ctx, "Alpha", "git@github.com:user/worklog.git")
	require.NoError(t, err)
	before, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Len(t, before, 5)

	added, err := svc.ImportCommitHistory(ctx, "Alpha")
	require.NoError(t, err)
	require.Zero(t, added)

	after, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestProjectService_ImportCommitHistoryNotConnected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)

	_, err = svc.ImportCommitHistory(ctx, "Alpha")
	require.ErrorIs(t, err, project.ErrGitNotConnected)
	_, err = svc.GitStatus("Alpha")
	require.ErrorIs(t, err, project.ErrGitNotConnected)
}

func TestProjectService_ImportUsesProviderAndKeepsConnectionOnFailure(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewMemoryStorage()
	provider := &mocks.CommitProvider{}
	provider.On("FetchRecentCommits", ctx, commit.Repo{URL: "/src/tool", Name: "tool", Branch: "main"}).
		Return(nil, errors.New("repository missing")).Once()

	svc := project.NewService(storage, provider, nil)
	require.NoError(t, svc.Load(ctx))
	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)

	_, err = svc.ConnectGitRepo(ctx, "Alpha", "/src/tool")
	require.Error(t, err)

	proj, err := svc.Project("Alpha")
	require.NoError(t, err)
	require.NotNil(t, proj.GitRepo)
	require.Empty(t, proj.Logs)

	provider.On("FetchRecentCommits", ctx, mock.Anything).Return([]commit.CommitRecord{
		{Hash: "abc1234", Message: "local work", Author: "Me", Date: testNow},
	}, nil)
	added, err := svc.ImportCommitHistory(ctx, "Alpha")
	require.NoError(t, err)
	require.Equal(t, 1, added)

	logs, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Nil(t, logs[0].CommitFiles)
	provider.AssertExpectations(t)
}

func TestProjectService_GitStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	_, err = svc.ConnectGitRepo(ctx, "Alpha", "https://github.com/user/worklog")
	require.NoError(t, err)

	status, err := svc.GitStatus("Alpha")
	require.NoError(t, err)
	require.Equal(t, 4, status.TotalCommits)
	require.Len(t, status.RecentCommits, 3)
	require.Equal(t, "e4f5g6h", status.RecentCommits[0].CommitHash)
	require.Equal(t, "m1n2o3p", status.RecentCommits[2].CommitHash)
	require.Equal(t, "worklog", status.Repo.Name)
}

func TestProjectService_ConnectGitRepoValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.ConnectGitRepo(ctx, "Alpha", " ")
	require.ErrorIs(t, err, project.ErrInvalidInput)
	_, err = svc.ConnectGitRepo(ctx, "Alpha", "https://x/y.git")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
	_, err = svc.ConnectGitRepo(ctx, "", "https://x/y.git")
	require.ErrorIs(t, err, project.ErrNoProjectSelected)
}
