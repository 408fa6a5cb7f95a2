package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/domain/project"
)

type toolset struct {
	projects ProjectService
	activity ActivityService
}

func registerTools(server *sdkmcp.Server, services Services) {
	t := &toolset{projects: services.Projects, activity: services.Activity}

	// Projects
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects in creation order with log and tag counts",
	}, t.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a project and select it",
	}, t.createProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project with all of its logs, tags and planning items",
	}, t.deleteProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "select_project",
		Description: "Select the project used when a tool's project argument is omitted",
	}, t.selectProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a project with its logs, tags, planning board and repository",
	}, t.getProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_version",
		Description: "Set the semantic version of a project",
	}, t.setVersion)

	// Logs
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_log",
		Description: "Append a timestamped log entry; tags must already exist on the project",
	}, t.addLog)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_log",
		Description: "Delete a log entry by id",
	}, t.deleteLog)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_logs",
		Description: "Filter a project's logs by keyword, date prefix and tag, newest first",
	}, t.searchLogs)

	// Tags
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_tag",
		Description: "Define a tag on a project",
	}, t.addTag)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_tag",
		Description: "Remove a tag from a project and from every log carrying it",
	}, t.deleteTag)

	// Planning
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_planning_item",
		Description: "Add an item to the backlog, inProgress or completed list",
	}, t.addPlanningItem)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_planning_item",
		Description: "Delete a planning item by category and index",
	}, t.deletePlanningItem)

	// Git
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "connect_git_repo",
		Description: "Connect a repository to a project and import its recent commits as logs",
	}, t.connectGitRepo)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_commits",
		Description: "Import commits not yet logged from the connected repository",
	}, t.importCommits)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_git_status",
		Description: "Get the connected repository, its commit count and the last three commits",
	}, t.gitStatus)

	// Dashboard
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard",
		Description: "Get totals, weekly activity, recent entries and progress across all projects",
	}, t.getDashboard)
}

// target resolves an omitted project name to the current selection.
func (t *toolset) target(name string) string {
	if strings.TrimSpace(name) == "" {
		return t.projects.CurrentProject()
	}
	return name
}

func (t *toolset) listProjects(_ context.Context, _ *sdkmcp.CallToolRequest, _ ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResponse, error) {
	summaries := t.projects.List()
	resp := ListProjectsResponse{
		Projects: make([]ProjectSummaryResponse, 0, len(summaries)),
		Current:  t.projects.CurrentProject(),
	}
	for _, s := range summaries {
		resp.Projects = append(resp.Projects, ProjectSummaryResponse{
			Name:      s.Name,
			Version:   s.Version,
			LogCount:  s.LogCount,
			TagCount:  s.TagCount,
			GitRepo:   s.GitRepo,
			Selected:  s.Selected,
			CreatedAt: activity.FormatTimestamp(s.CreatedAt),
		})
	}
	return nil, resp, nil
}

func (t *toolset) createProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p, err := t.projects.AddProject(ctx, in.Name)
	if err != nil {
		return nil, ProjectResponse{}, toolError(err)
	}
	return nil, toProjectResponse(strings.TrimSpace(in.Name), p), nil
}

func (t *toolset) deleteProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteProjectParams) (*sdkmcp.CallToolResult, OKResponse, error) {
	if err := t.projects.DeleteProject(ctx, in.Name); err != nil {
		return nil, OKResponse{}, toolError(err)
	}
	return nil, OKResponse{OK: true}, nil
}

func (t *toolset) selectProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in SelectProjectParams) (*sdkmcp.CallToolResult, OKResponse, error) {
	if err := t.projects.SelectProject(ctx, in.Name); err != nil {
		return nil, OKResponse{}, toolError(err)
	}
	return nil, OKResponse{OK: true}, nil
}

func (t *toolset) getProject(_ context.Context, _ *sdkmcp.CallToolRequest, in GetProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	name := t.target(in.Project)
	p, err := t.projects.Project(name)
	if err != nil {
		return nil, ProjectResponse{}, toolError(err)
	}
	return nil, toProjectResponse(name, p), nil
}

func (t *toolset) setVersion(ctx context.Context, _ *sdkmcp.CallToolRequest, in SetVersionParams) (*sdkmcp.CallToolResult, OKResponse, error) {
	if err := t.projects.SetVersion(ctx, t.target(in.Project), in.Version); err != nil {
		return nil, OKResponse{}, toolError(err)
	}
	return nil, OKResponse{OK: true}, nil
}

func (t *toolset) addLog(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddLogParams) (*sdkmcp.CallToolResult, LogResponse, error) {
	l, err := t.projects.AddLog(ctx, t.target(in.Project), in.Text, in.Tags)
	if err != nil {
		return nil, LogResponse{}, toolError(err)
	}
	return nil, toLogResponse(l), nil
}

func (t *toolset) deleteLog(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteLogParams) (*sdkmcp.CallToolResult, OKResponse, error) {
	if err := t.projects.DeleteLog(ctx, t.target(in.Project), in.ID); err != nil {
		return nil, OKResponse{}, toolError(err)
	}
	return nil, OKResponse{OK: true}, nil
}

func (t *toolset) searchLogs(_ context.Context, _ *sdkmcp.CallToolRequest, in SearchLogsParams) (*sdkmcp.CallToolResult, SearchLogsResponse, error) {
	found, err := t.activity.Search(t.target(in.Project), activity.Filter{
		Keyword: in.Keyword,
		Date:    in.Date,
		Tag:     in.Tag,
	})
	if err != nil {
		return nil, SearchLogsResponse{}, toolError(err)
	}
	resp := SearchLogsResponse{Logs: make([]FilteredLogResponse, 0, len(found))}
	for _, f := range found {
		resp.Logs = append(resp.Logs, FilteredLogResponse{Index: f.Index, Log: toLogResponse(f.Log)})
	}
	return nil, resp, nil
}

func (t *toolset) addTag(ctx context.Context, _ *sdkmcp.CallToolRequest, in TagParams) (*sdkmcp.CallToolResult, OKResponse, error) {
	if err := t.projects.AddTag(ctx, t.target(in.Project), in.Tag); err != nil {
		return nil, OKResponse{}, toolError(err)
	}
	return nil, OKResponse{OK: true}, nil
}

func (t *toolset) deleteTag(ctx context.Context, _ *sdkmcp.CallToolRequest, in TagParams) (*sdkmcp.CallToolResult, OKResponse, error) {
	if err := t.projects.DeleteTag(ctx, t.target(in.Project), in.Tag); err != nil {
		return nil, OKResponse{}, toolError(err)
	}
	return nil, OKResponse{OK: true}, nil
}

func (t *toolset) addPlanningItem(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddPlanningItemParams) (*sdkmcp.CallToolResult, PlanningItemResponse, error) {
	name := t.target(in.Project)
	category := project.Category(in.Category)
	item, err := t.projects.AddPlanningItem(ctx, name, category, in.Title, in.Description)
	if err != nil {
		return nil, PlanningItemResponse{}, toolError(err)
	}
	resp := toPlanningItems([]project.PlanningItem{item})[0]
	if p, err := t.projects.Project(name); err == nil {
		resp.Index = len(p.Planning.Items(category)) - 1
	}
	return nil, resp, nil
}

func (t *toolset) deletePlanningItem(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeletePlanningItemParams) (*sdkmcp.CallToolResult, OKResponse, error) {
	err := t.projects.DeletePlanningItem(ctx, t.target(in.Project), project.Category(in.Category), in.Index)
	if err != nil {
		return nil, OKResponse{}, toolError(err)
	}
	return nil, OKResponse{OK: true}, nil
}

func (t *toolset) connectGitRepo(ctx context.Context, _ *sdkmcp.CallToolRequest, in ConnectGitRepoParams) (*sdkmcp.CallToolResult, ImportResponse, error) {
	name := t.target(in.Project)
	added, err := t.projects.ConnectGitRepo(ctx, name, in.URL)
	if err != nil {
		return nil, ImportResponse{}, toolError(err)
	}
	return nil, t.importResponse(name, added), nil
}

func (t *toolset) importCommits(ctx context.Context, _ *sdkmcp.CallToolRequest, in ImportCommitsParams) (*sdkmcp.CallToolResult, ImportResponse, error) {
	name := t.target(in.Project)
	added, err := t.projects.ImportCommitHistory(ctx, name)
	if err != nil {
		return nil, ImportResponse{}, toolError(err)
	}
	return nil, t.importResponse(name, added), nil
}

func (t *toolset) importResponse(name string, added int) ImportResponse {
	resp := ImportResponse{Imported: added}
	if status, err := t.projects.GitStatus(name); err == nil {
		resp.TotalCommits = status.TotalCommits
		resp.GitRepo = toGitRepoResponse(&status.Repo)
	}
	return resp
}

func (t *toolset) gitStatus(_ context.Context, _ *sdkmcp.CallToolRequest, in GitStatusParams) (*sdkmcp.CallToolResult, GitStatusResponse, error) {
	status, err := t.projects.GitStatus(t.target(in.Project))
	if err != nil {
		return nil, GitStatusResponse{}, toolError(err)
	}
	resp := GitStatusResponse{
		Repo:          *toGitRepoResponse(&status.Repo),
		TotalCommits:  status.TotalCommits,
		RecentCommits: make([]LogResponse, 0, len(status.RecentCommits)),
	}
	for _, l := range status.RecentCommits {
		resp.RecentCommits = append(resp.RecentCommits, toLogResponse(l))
	}
	return nil, resp, nil
}

func (t *toolset) getDashboard(_ context.Context, _ *sdkmcp.CallToolRequest, in GetDashboardParams) (*sdkmcp.CallToolResult, DashboardResponse, error) {
	sum := t.activity.Summary(in.Limit)
	resp := DashboardResponse{
		Stats:    sum.Stats,
		Recent:   make([]RecentEntryResponse, 0, len(sum.Recent)),
		Progress: sum.Progress,
	}
	for _, e := range sum.Recent {
		resp.Recent = append(resp.Recent, RecentEntryResponse{
			Project: e.Project,
			Log:     toLogResponse(e.Log),
			TimeAgo: t.activity.TimeAgo(e.Log.Timestamp),
		})
	}
	return nil, resp, nil
}
