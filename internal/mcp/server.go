package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/worklog/internal/domain/activity"
	"github.com/rpggio/worklog/internal/domain/project"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	List() []project.ProjectSummary
	CurrentProject() string
	Project(name string) (*project.Project, error)
	AddProject(ctx context.Context, name string) (*project.Project, error)
	DeleteProject(ctx context.Context, name string) error
	SelectProject(ctx context.Context, name string) error
	SetVersion(ctx context.Context, name, version string) error
	AddLog(ctx context.Context, name, text string, tags []string) (project.Log, error)
	DeleteLog(ctx context.Context, name, id string) error
	AddTag(ctx context.Context, name, tag string) error
	DeleteTag(ctx context.Context, name, tag string) error
	AddPlanningItem(ctx context.Context, name string, category project.Category, title, description string) (project.PlanningItem, error)
	DeletePlanningItem(ctx context.Context, name string, category project.Category, index int) error
	ConnectGitRepo(ctx context.Context, name, url string) (int, error)
	ImportCommitHistory(ctx context.Context, name string) (int, error)
	GitStatus(name string) (project.GitStatus, error)
}

// ActivityService defines dashboard operations needed by MCP.
type ActivityService interface {
	Summary(limit int) activity.Summary
	Search(name string, f activity.Filter) ([]activity.FilteredLog, error)
	TimeAgo(ts time.Time) string
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Token         string // bearer token required in HTTP mode; empty disables auth
	TransportMode string // "stdio" or "http"
	Version       string
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "worklog",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio is local only and never authenticates.
	if cfg.TransportMode == TransportHTTP && cfg.Token != "" {
		server.AddReceivingMiddleware(authMiddleware(cfg.Token))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
