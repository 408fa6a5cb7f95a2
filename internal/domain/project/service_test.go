package project_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rpggio/worklog/internal/domain/commit"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("log-%d", n)
	}
}

func newTestService(t *testing.T) (*project.Service, *mocks.MemoryStorage) {
	t.Helper()
	storage := mocks.NewMemoryStorage()
	svc := project.NewService(storage, commit.NewMockProvider(func() time.Time { return testNow }), nil,
		project.WithClock(func() time.Time { return testNow }),
		project.WithIDGenerator(sequentialIDs()),
	)
	require.NoError(t, svc.Load(context.Background()))
	return svc, storage
}

func TestProjectService_AddProject(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	proj, err := svc.AddProject(ctx, "  Alpha ")
	require.NoError(t, err)
	require.Equal(t, project.DefaultVersion, proj.Version)
	require.Equal(t, testNow, proj.CreatedAt)
	require.Empty(t, proj.Logs)
	require.Empty(t, proj.Tags)
	require.NotNil(t, proj.Planning)
	require.Equal(t, "Alpha", svc.CurrentProject())
	require.Contains(t, storage.Values[project.KeyProjects], `"Alpha"`)
	require.Equal(t, "Alpha", storage.Values[project.KeyCurrentProject])
}

func TestProjectService_AddProjectValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "   ")
	require.ErrorIs(t, err, project.ErrInvalidInput)
	require.Equal(t, 0, svc.Snapshot().Len())
}

func TestProjectService_AddProjectDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	_, err = svc.AddLog(ctx, "Alpha", "first", nil)
	require.NoError(t, err)

	before := svc.Snapshot()
	puts := storage.Puts

	_, err = svc.AddProject(ctx, "Alpha")
	require.ErrorIs(t, err, project.ErrProjectExists)
	require.Equal(t, before, svc.Snapshot())
	require.Equal(t, puts, storage.Puts)
}

func TestProjectService_DeleteProjectClearsSelection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	_, err = svc.AddProject(ctx, "Beta")
	require.NoError(t, err)
	require.Equal(t, "Beta", svc.CurrentProject())

	require.NoError(t, svc.DeleteProject(ctx, "Alpha"))
	require.Equal(t, "Beta", svc.CurrentProject())

	require.NoError(t, svc.DeleteProject(ctx, "Beta"))
	require.Equal(t, "", svc.CurrentProject())
	require.Equal(t, 0, svc.Snapshot().Len())

	require.ErrorIs(t, svc.DeleteProject(ctx, "Beta"), project.ErrProjectNotFound)
}

func TestProjectService_SelectProject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	_, err = svc.AddProject(ctx, "Beta")
	require.NoError(t, err)

	require.NoError(t, svc.SelectProject(ctx, "Alpha"))
	require.Equal(t, "Alpha", svc.CurrentProject())
	require.ErrorIs(t, svc.SelectProject(ctx, "Gamma"), project.ErrProjectNotFound)
	require.ErrorIs(t, svc.SelectProject(ctx, ""), project.ErrNoProjectSelected)

	require.NoError(t, svc.ClearSelection(ctx))
	require.Equal(t, "", svc.CurrentProject())
}

func TestProjectService_LoadRestoresState(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	require.NoError(t, svc.AddTag(ctx, "Alpha", "bug"))
	_, err = svc.AddLog(ctx, "Alpha", "fixed it", []string{"bug"})
	require.NoError(t, err)
	require.NoError(t, svc.DismissNotice(ctx))

	reloaded := project.NewService(storage, nil, nil)
	require.NoError(t, reloaded.Load(ctx))
	require.Equal(t, svc.Snapshot(), reloaded.Snapshot())
	require.Equal(t, "Alpha", reloaded.CurrentProject())
	require.True(t, reloaded.NoticeDismissed())
}

func TestProjectService_LoadDropsUnknownSelection(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewMemoryStorage()
	storage.Values[project.KeyProjects] = `{"Alpha":{"logs":[{"text":"legacy","timestamp":"2025-06-01T10:00:00.000Z","tags":[]}],"tags":[],"version":"1.0.0","createdAt":"2025-06-01T09:00:00.000Z","gitRepo":null}}`
	storage.Values[project.KeyCurrentProject] = "Gone"

	svc := project.NewService(storage, nil, nil, project.WithIDGenerator(sequentialIDs()))
	require.NoError(t, svc.Load(ctx))
	require.Equal(t, "", svc.CurrentProject())

	logs, err := svc.Logs("Alpha")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "log-1", logs[0].ID)
}

func TestProjectService_LoadPersistsAssignedIDs(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewMemoryStorage()
	storage.Values[project.KeyProjects] = `{"Alpha":{"logs":[{"text":"legacy","timestamp":"2025-06-01T10:00:00.000Z","tags":[]}],"tags":[],"version":"1.0.0","createdAt":"2025-06-01T09:00:00.000Z","gitRepo":null}}`
	storage.Values[project.KeyCurrentProject] = "Alpha"

	first := project.NewService(storage, nil, nil, project.WithIDGenerator(sequentialIDs()))
	require.NoError(t, first.Load(ctx))
	require.Contains(t, storage.Values[project.KeyProjects], `"id":"log-1"`)
	require.Equal(t, "Alpha", storage.Values[project.KeyCurrentProject])

	// A second load with a different generator must see the same id.
	second := project.NewService(storage, nil, nil, project.WithIDGenerator(func() string { return "other" }))
	require.NoError(t, second.Load(ctx))
	logs, err := second.Logs("Alpha")
	require.NoError(t, err)
	require.Equal(t, "log-1", logs[0].ID)
	require.NoError(t, second.DeleteLog(ctx, "Alpha", "log-1"))
}

func TestProjectService_LoadStorageError(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.Storage{}
	storage.On("Get", ctx, project.KeyProjects).Return("", errors.New("disk gone"))

	svc := project.NewService(storage, nil, nil)
	require.Error(t, svc.Load(ctx))
	storage.AssertExpectations(t)
}

func TestProjectService_PersistFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	before := svc.Snapshot()

	storage.FailPut = errors.New("quota exceeded")
	_, err = svc.AddLog(ctx, "Alpha", "lost", nil)
	require.Error(t, err)
	_, err = svc.AddProject(ctx, "Beta")
	require.Error(t, err)

	require.Equal(t, before, svc.Snapshot())
	require.Equal(t, "Alpha", svc.CurrentProject())
}

func TestProjectService_PersistWritesProjectsAndSelectionTogether(t *testing.T) {
	ctx := context.Background()
	storage := &mocks.Storage{}
	storage.On("Get", ctx, mock.Anything).Return("", nil)
	storage.On("Put", ctx, mock.MatchedBy(func(entries []project.Entry) bool {
		return len(entries) == 2 &&
			entries[0].Key == project.KeyProjects &&
			entries[1].Key == project.KeyCurrentProject &&
			entries[1].Value == "Alpha"
	})).Return(nil).Once()

	svc := project.NewService(storage, nil, nil)
	require.NoError(t, svc.Load(ctx))
	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestProjectService_SetVersion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)

	require.NoError(t, svc.SetVersion(ctx, "Alpha", "2.1.0"))
	proj, err := svc.Project("Alpha")
	require.NoError(t, err)
	require.Equal(t, "2.1.0", proj.Version)

	require.NoError(t, svc.SetVersion(ctx, "Alpha", "v3.0.0-beta.1"))
	proj, err = svc.Project("Alpha")
	require.NoError(t, err)
	require.Equal(t, "3.0.0-beta.1", proj.Version)

	for _, bad := range []string{"banana", "1", "1.2", "v3", "2.1", "1.2.3.4", "01.2.3"} {
		require.ErrorIs(t, svc.SetVersion(ctx, "Alpha", bad), project.ErrInvalidVersion, bad)
	}
	require.NoError(t, svc.SetVersion(ctx, "Alpha", "1.2.3+build.7"))
	require.ErrorIs(t, svc.SetVersion(ctx, "Missing", "1.0.0"), project.ErrProjectNotFound)
}

func TestProjectService_List(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, name := range []string{"Zeta", "Alpha"} {
		_, err := svc.AddProject(ctx, name)
		require.NoError(t, err)
	}
	_, err := svc.AddLog(ctx, "Zeta", "one", nil)
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 2)
	require.Equal(t, "Zeta", list[0].Name)
	require.Equal(t, 1, list[0].LogCount)
	require.False(t, list[0].Selected)
	require.Equal(t, "Alpha", list[1].Name)
	require.True(t, list[1].Selected)
}

func TestProjectService_MergeOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)
	require.NoError(t, svc.AddTag(ctx, "Alpha", "old"))
	_, err = svc.AddProject(ctx, "Beta")
	require.NoError(t, err)

	incoming := project.NewProjectSet()
	incoming.Put("Gamma", &project.Project{Version: "0.1.0", Logs: []project.Log{{Text: "imported"}}})
	incoming.Put("Alpha", &project.Project{Version: "9.9.9"})

	require.NoError(t, svc.Merge(ctx, incoming))

	snap := svc.Snapshot()
	require.Equal(t, []string{"Alpha", "Beta", "Gamma"}, snap.Names())
	alpha, _ := snap.Get("Alpha")
	require.Equal(t, "9.9.9", alpha.Version)
	require.Empty(t, alpha.Tags)
	gamma, _ := snap.Get("Gamma")
	require.NotEmpty(t, gamma.Logs[0].ID)

	// The caller's set is not modified.
	g, _ := incoming.Get("Gamma")
	require.Empty(t, g.Logs[0].ID)
}

func TestProjectService_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)

	incoming := project.NewProjectSet()
	incoming.Put("Beta", &project.Project{Version: "1.0.0"})
	require.NoError(t, svc.ReplaceAll(ctx, incoming))

	require.Equal(t, []string{"Beta"}, svc.Snapshot().Names())
	require.Equal(t, "", svc.CurrentProject())
}

func TestProjectService_SnapshotIsIsolated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.AddProject(ctx, "Alpha")
	require.NoError(t, err)

	snap := svc.Snapshot()
	p, _ := snap.Get("Alpha")
	p.Version = "mutated"
	p.Tags = append(p.Tags, "x")

	fresh, err := svc.Project("Alpha")
	require.NoError(t, err)
	require.Equal(t, project.DefaultVersion, fresh.Version)
	require.Empty(t, fresh.Tags)
}
