package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `worklog keeps a development diary per project: timestamped logs, tags, a
version, a three-column planning board and an optional git repository.

Conventions:
- Most tools take an optional project; omitted means the selected project.
  create_project selects the new project; select_project switches.
- Tags must be defined with add_tag before a log can carry them. delete_tag
  also strips the tag from every log.
- Logs have stable ids. Use them with delete_log.
- Planning categories are backlog, inProgress and completed. Items are
  addressed by zero-based index within their category.
- connect_git_repo imports recent commits as logs tagged git and commit.
  import_commits only adds commits not already logged.
- Timestamps are RFC 3339 in UTC.

Docs:
- worklog://docs/guide
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "worklog://docs/guide",
		Name:        "guide",
		Title:       "worklog guide",
		Description: "How projects, logs, tags, planning and git import fit together.",
		Content: `# worklog guide

## Projects

A project is identified by its name. Names are unique and trimmed. Each
project starts at version 1.0.0 with no logs, tags or planning items.

- list_projects: names in creation order, with counts and the selection.
- get_project: everything about one project.
- select_project: change the project used when none is given.
- set_version: semantic versions only (1.2.0, 2.0.0-rc.1).

## Logs

- add_log appends an entry stamped with the current time.
- search_logs filters by keyword (case-insensitive), date prefix
  (` + "`2025-06`" + ` or ` + "`2025-06-01`" + `) and tag. All filters must match. Results
  are newest first and carry the log's index in insertion order.

## Tags

Tags are defined per project. A log may only carry defined tags.

## Planning

Three lists: backlog, inProgress and completed. Items have a title, an
optional description and a creation time.

## Git

connect_git_repo records the repository (branch main) and imports its
recent commits. Each commit becomes a log with the text
"Git commit: <message>" tagged git and commit. Running import_commits again
skips commits that were already imported. get_git_status shows the
repository, the commit count and the last three commits.

## Errors

Failures carry a code such as PROJECT_NOT_FOUND, TAG_NOT_FOUND,
LOG_NOT_FOUND, INVALID_CATEGORY or GIT_NOT_CONNECTED, followed by a hint.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
