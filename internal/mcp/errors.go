package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/worklog/internal/domain/commit"
	"github.com/rpggio/worklog/internal/domain/project"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

type errorCode struct {
	target error
	code   string
	hint   string
}

var errorCodes = []errorCode{
	{project.ErrProjectNotFound, "PROJECT_NOT_FOUND", "Call list_projects for valid names"},
	{project.ErrProjectExists, "PROJECT_EXISTS", "Pick another name"},
	{project.ErrNoProjectSelected, "NO_PROJECT_SELECTED", "Pass project or create one first"},
	{project.ErrInvalidInput, "INVALID_INPUT", ""},
	{project.ErrLogNotFound, "LOG_NOT_FOUND", "Use ids from get_project or search_logs"},
	{project.ErrTagExists, "TAG_EXISTS", ""},
	{project.ErrTagNotFound, "TAG_NOT_FOUND", "Call add_tag first"},
	{project.ErrInvalidCategory, "INVALID_CATEGORY", "Use backlog, inProgress or completed"},
	{project.ErrPlanningItemNotFound, "PLANNING_ITEM_NOT_FOUND", "Check the item index"},
	{project.ErrInvalidVersion, "INVALID_VERSION", "Use MAJOR.MINOR.PATCH"},
	{project.ErrGitNotConnected, "GIT_NOT_CONNECTED", "Call connect_git_repo first"},
	{commit.ErrUnsupportedRemote, "UNSUPPORTED_REMOTE", "Use a local repository path"},
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	for _, c := range errorCodes {
		if errors.Is(err, c.target) {
			return &APIError{Code: c.code, Message: err.Error(), RecoveryHint: c.hint}
		}
	}
	return nil
}

// toolError converts a domain error into the error reported by a tool.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
