package project_test

import (
	"encoding/json"
	"testing"

	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestProjectSet_OrderAndOverwrite(t *testing.T) {
	var set project.ProjectSet
	set.Put("b", &project.Project{Version: "1"})
	set.Put("a", &project.Project{Version: "2"})
	set.Put("b", &project.Project{Version: "3"})

	require.Equal(t, []string{"b", "a"}, set.Names())
	b, ok := set.Get("b")
	require.True(t, ok)
	require.Equal(t, "3", b.Version)

	require.True(t, set.Delete("b"))
	require.False(t, set.Delete("b"))
	require.Equal(t, []string{"a"}, set.Names())
}

func TestProjectSet_JSONKeepsKeyOrder(t *testing.T) {
	raw := `{"zeta":{"logs":[],"tags":[],"version":"1.0.0","createdAt":"2025-06-01T09:00:00Z","gitRepo":null},` +
		`"alpha":{"logs":[],"tags":["x"],"version":"2.0.0","createdAt":"2025-06-02T09:00:00Z","gitRepo":null},` +
		`"mid.dle":{"logs":[],"tags":[],"version":"3.0.0","createdAt":"2025-06-03T09:00:00Z","gitRepo":null}}`

	var set project.ProjectSet
	require.NoError(t, json.Unmarshal([]byte(raw), &set))
	require.Equal(t, []string{"zeta", "alpha", "mid.dle"}, set.Names())

	out, err := json.Marshal(&set)
	require.NoError(t, err)
	require.JSONEq(t, raw, string(out))

	again, err := project.DecodeProjectSet(out)
	require.NoError(t, err)
	require.Equal(t, &set, again)
}

func TestDecodeProjectSet_Errors(t *testing.T) {
	_, err := project.DecodeProjectSet([]byte(`{"a":`))
	require.ErrorIs(t, err, project.ErrInvalidProjectData)

	_, err = project.DecodeProjectSet([]byte(`[1,2]`))
	require.ErrorIs(t, err, project.ErrInvalidProjectData)

	_, err = project.DecodeProjectSet([]byte(`{"a":"not a project"}`))
	require.ErrorIs(t, err, project.ErrInvalidProjectData)

	set, err := project.DecodeProjectSet([]byte(`null`))
	require.NoError(t, err)
	require.Equal(t, 0, set.Len())
}
