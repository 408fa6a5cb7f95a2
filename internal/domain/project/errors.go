package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectExists indicates a project with the same name already exists.
	ErrProjectExists = errors.New("project already exists")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrNoProjectSelected indicates an operation needs a project and none was given.
	ErrNoProjectSelected = errors.New("no project selected")
	// ErrLogNotFound indicates the log doesn't exist.
	ErrLogNotFound = errors.New("log not found")
	// ErrTagExists indicates the tag is already defined on the project.
	ErrTagExists = errors.New("tag already exists")
	// ErrTagNotFound indicates the tag is not defined on the project.
	ErrTagNotFound = errors.New("tag not found")
	// ErrInvalidCategory indicates an unknown planning category.
	ErrInvalidCategory = errors.New("invalid planning category")
	// ErrPlanningItemNotFound indicates the planning item doesn't exist.
	ErrPlanningItemNotFound = errors.New("planning item not found")
	// ErrInvalidVersion indicates a version that is not a semantic version.
	ErrInvalidVersion = errors.New("invalid semantic version")
	// ErrGitNotConnected indicates the project has no repository connected.
	ErrGitNotConnected = errors.New("git repository not connected")
)
