package mcp

import (
	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/domain/project"
)

type ListProjectsParams struct{}

type CreateProjectParams struct {
	Name string `json:"name" jsonschema:"unique project name"`
}

type SelectProjectParams struct {
	Name string `json:"name" jsonschema:"project to select"`
}

type DeleteProjectParams struct {
	Name string `json:"name" jsonschema:"project to delete"`
}

type GetProjectParams struct {
	Project string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
}

type SetVersionParams struct {
	Project string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
	Version string `json:"version" jsonschema:"semantic version such as 1.2.0"`
}

type AddLogParams struct {
	Project string   `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
	Text    string   `json:"text" jsonschema:"log entry text"`
	Tags    []string `json:"tags,omitempty" jsonschema:"tags already defined on the project"`
}

type DeleteLogParams struct {
	Project string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
	ID      string `json:"id" jsonschema:"log id"`
}

type SearchLogsParams struct {
	Project string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
	Keyword string `json:"keyword,omitempty" jsonschema:"case-insensitive text match"`
	Date    string `json:"date,omitempty" jsonschema:"timestamp prefix such as 2025-06 or 2025-06-01"`
	Tag     string `json:"tag,omitempty" jsonschema:"exact tag"`
}

type TagParams struct {
	Project string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
	Tag     string `json:"tag" jsonschema:"tag name"`
}

type AddPlanningItemParams struct {
	Project     string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
	Category    string `json:"category" jsonschema:"backlog, inProgress or completed"`
	Title       string `json:"title" jsonschema:"item title"`
	Description string `json:"description,omitempty" jsonschema:"item description"`
}

type DeletePlanningItemParams struct {
	Project  string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
	Category string `json:"category" jsonschema:"backlog, inProgress or completed"`
	Index    int    `json:"index" jsonschema:"zero-based position in the category"`
}

type ConnectGitRepoParams struct {
	Project string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
	URL     string `json:"url" jsonschema:"repository URL or local path"`
}

type ImportCommitsParams struct {
	Project string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
}

type GitStatusParams struct {
	Project string `json:"project,omitempty" jsonschema:"project name; defaults to the selected project"`
}

type GetDashboardParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of recent entries, default 5"`
}

// Responses. Timestamps are RFC 3339 strings in UTC.

type ProjectSummaryResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	LogCount  int    `json:"log_count"`
	TagCount  int    `json:"tag_count"`
	GitRepo   string `json:"git_repo,omitempty"`
	Selected  bool   `json:"selected"`
	CreatedAt string `json:"created_at"`
}

type ListProjectsResponse struct {
	Projects []ProjectSummaryResponse `json:"projects"`
	Current  string                   `json:"current,omitempty"`
}

type GitRepoResponse struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	Branch    string `json:"branch"`
	Connected bool   `json:"connected"`
}

type LogResponse struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Timestamp     string   `json:"timestamp"`
	Tags          []string `json:"tags"`
	Type          string   `json:"type,omitempty"`
	CommitHash    string   `json:"commit_hash,omitempty"`
	CommitAuthor  string   `json:"commit_author,omitempty"`
	CommitMessage string   `json:"commit_message,omitempty"`
	CommitFiles   []string `json:"commit_files,omitempty"`
}

type PlanningItemResponse struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type PlanningResponse struct {
	Backlog    []PlanningItemResponse `json:"backlog"`
	InProgress []PlanningItemResponse `json:"inProgress"`
	Completed  []PlanningItemResponse `json:"completed"`
}

type ProjectResponse struct {
	Name      string           `json:"name"`
	Version   string           `json:"version"`
	CreatedAt string           `json:"created_at"`
	Tags      []string         `json:"tags"`
	Logs      []LogResponse    `json:"logs"`
	GitRepo   *GitRepoResponse `json:"git_repo,omitempty"`
	Planning  PlanningResponse `json:"planning"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type SearchLogsResponse struct {
	Logs []FilteredLogResponse `json:"logs"`
}

type FilteredLogResponse struct {
	Index int         `json:"index"`
	Log   LogResponse `json:"log"`
}

type ImportResponse struct {
	Imported     int              `json:"imported"`
	TotalCommits int              `json:"total_commits"`
	GitRepo      *GitRepoResponse `json:"git_repo,omitempty"`
}

type GitStatusResponse struct {
	Repo          GitRepoResponse `json:"repo"`
	TotalCommits  int             `json:"total_commits"`
	RecentCommits []LogResponse   `json:"recent_commits"`
}

type RecentEntryResponse struct {
	Project string      `json:"project"`
	Log     LogResponse `json:"log"`
	TimeAgo string      `json:"time_ago"`
}

type DashboardResponse struct {
	Stats    activity.Stats          `json:"stats"`
	Recent   []RecentEntryResponse   `json:"recent"`
	Progress activity.ProgressReport `json:"progress"`
}

func toProjectResponse(name string, p *project.Project) ProjectResponse {
	resp := ProjectResponse{
		Name:      name,
		Version:   p.Version,
		CreatedAt: activity.FormatTimestamp(p.CreatedAt),
		Tags:      nonNil(p.Tags),
		Logs:      make([]LogResponse, 0, len(p.Logs)),
		GitRepo:   toGitRepoResponse(p.GitRepo),
		Planning: PlanningResponse{
			Backlog:    toPlanningItems(p.Planning.Items(project.CategoryBacklog)),
			InProgress: toPlanningItems(p.Planning.Items(project.CategoryInProgress)),
			Completed:  toPlanningItems(p.Planning.Items(project.CategoryCompleted)),
		},
	}
	for _, l := range p.Logs {
		resp.Logs = append(resp.Logs, toLogResponse(l))
	}
	return resp
}

func toLogResponse(l project.Log) LogResponse {
	return LogResponse{
		ID:            l.ID,
		Text:          l.Text,
		Timestamp:     activity.FormatTimestamp(l.Timestamp),
		Tags:          nonNil(l.Tags),
		Type:          l.Type,
		CommitHash:    l.CommitHash,
		CommitAuthor:  l.CommitAuthor,
		CommitMessage: l.CommitMessage,
		CommitFiles:   l.CommitFiles,
	}
}

func toGitRepoResponse(r *project.GitRepo) *GitRepoResponse {
	if r == nil {
		return nil
	}
	return &GitRepoResponse{URL: r.URL, Name: r.Name, Branch: r.Branch, Connected: r.Connected}
}

func toPlanningItems(items []project.PlanningItem) []PlanningItemResponse {
	out := make([]PlanningItemResponse, 0, len(items))
	for i, it := range items {
		out = append(out, PlanningItemResponse{
			Index:       i,
			Title:       it.Title,
			Description: it.Description,
			CreatedAt:   activity.FormatTimestamp(it.CreatedAt),
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
