package project_test

import (
	"context"
	"testing"

	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func TestProjectService_AddLog(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	require.NoError(t, svc.AddTag(ctx, "Alpha", "bug"))

	entry, err := svc.AddLog(ctx, "Alpha", "  fixed the parser ", []string{"bug", "bug"})
	require.NoError(t, err)
	require.Equal(t, "log-1", entry.ID)
	require.Equal(t, "fixed the parser", entry.Text)
	require.Equal(t, testNow, entry.Timestamp)
	require.Equal(t, []string{"bug"}, entry.Tags)
	require.False(t, entry.IsCommit())
}

func TestProjectService_AddLogValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)

	_, err = svc.AddLog(ctx, "Alpha", "  ", nil)
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.AddLog(ctx, "", "text", nil)
	require.ErrorIs(t, err, project.ErrNoProjectSelected)

	_, err = svc.AddLog(ctx, "Missing", "text", nil)
	require.ErrorIs(t, err, project.ErrProjectNotFound)

	_, err = svc.AddLog(ctx, "Alpha", "text", []string{"undefined"})
	require.ErrorIs(t, err, project.ErrTagNotFound)

	logs, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Empty(t, logs)
}

func TestProjectService_AddThenDeleteAtRestoresLogs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.AddLog(ctx, "Alpha", text, nil)
		require.NoError(t, err)
	}
	before, err := svc.Logs("Alpha")
	require.NoError(t, err)

	_, err = svc.AddLog(ctx, "Alpha", "four", nil)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteLogAt(ctx, "Alpha", len(before)))

	after, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestProjectService_DeleteLogAtOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	_, err = svc.AddLog(ctx, "Alpha", "one", nil)
	require.NoError(t, err)
	puts := storage.Puts

	require.ErrorIs(t, svc.DeleteLogAt(ctx, "Alpha", 1), project.ErrLogNotFound)
	require.ErrorIs(t, svc.DeleteLogAt(ctx, "Alpha", -1), project.ErrLogNotFound)
	require.Equal(t, puts, storage.Puts)

	logs, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func TestProjectService_DeleteLogByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	first, err := svc.AddLog(ctx, "Alpha", "one", nil)
	require.NoError(t, err)
	second, err := svc.AddLog(ctx, "Alpha", "two", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLog(ctx, "Alpha", first.ID))

	logs, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, second.ID, logs[0].ID)

	require.ErrorIs(t, svc.DeleteLog(ctx, "Alpha", first.ID), project.ErrLogNotFound)
	require.ErrorIs(t, svc.DeleteLog(ctx, "Alpha", ""), project.ErrLogNotFound)
}

func TestProjectService_DeleteLogByIDPrefix(t *testing.T) {
	ctx := context.Background()
	ids := []string{"1a2b3c4d-0000", "1a2b9999-0000", "7f00aa11-0000"}
	next := 0
	svc := project.NewService(mocks.NewMemoryStorage(), nil, nil, project.WithIDGenerator(func() string {
		id := ids[next]
		next++
		return id
	}))
	require.NoError(t, svc.Load(ctx))
	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.AddLog(ctx, "Alpha", text, nil)
		require.NoError(t, err)
	}

	require.ErrorIs(t, svc.DeleteLog(ctx, "Alpha", "1a2b"), project.ErrLogNotFound)
	require.ErrorIs(t, svc.DeleteLog(ctx, "Alpha", "ffff"), project.ErrLogNotFound)

	require.NoError(t, svc.DeleteLog(ctx, "Alpha", "7f00aa11"))
	require.NoError(t, svc.DeleteLog(ctx, "Alpha", "1a2b3"))

	logs, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "two", logs[0].Text)
}
