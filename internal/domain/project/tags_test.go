package project_test

import (
	"context"
	"testing"

	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestProjectService_AddTag(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)

	require.NoError(t, svc.AddTag(ctx, "Alpha", "bug"))
	require.NoError(t, svc.AddTag(ctx, "Alpha", "feature"))
	require.ErrorIs(t, svc.AddTag(ctx, "Alpha", "bug"), project.ErrTagExists)
	require.ErrorIs(t, svc.AddTag(ctx, "Alpha", " "), project.ErrInvalidInput)
	require.ErrorIs(t, svc.AddTag(ctx, "", "x"), project.ErrNoProjectSelected)

	tags, err := svc.Tags("Alpha")
	require.NoError(t, err)
	require.Equal(t, []string{"bug", "feature"}, tags)
}

func TestProjectService_DeleteTagCascades(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	require.NoError(t, svc.AddTag(ctx, "Alpha", "bug"))
	require.NoError(t, svc.AddTag(ctx, "Alpha", "ui"))

	_, err = svc.AddLog(ctx, "Alpha", "bug in ui", []string{"bug", "ui"})
	require.NoError(t, err)
	_, err = svc.AddLog(ctx, "Alpha", "another bug", []string{"bug"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTag(ctx, "Alpha", "bug"))

	proj, err := svc.Project("Alpha")
	require.NoError(t, err)
	require.Equal(t, []string{"ui"}, proj.Tags)
	require.Equal(t, []string{"ui"}, proj.Logs[0].Tags)
	require.Empty(t, proj.Logs[1].Tags)
	require.Equal(t, "bug in ui", proj.Logs[0].Text)
	require.Equal(t, "another bug", proj.Logs[1].Text)

	// Idempotent.
	require.NoError(t, svc.DeleteTag(ctx, "Alpha", "bug"))
	again, err := svc.Project("Alpha")
	require.NoError(t, err)
	require.Equal(t, proj, again)
}
