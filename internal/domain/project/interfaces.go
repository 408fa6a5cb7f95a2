package project

import "context"

// Storage keys for persisted state.
const (
	KeyProjects       = "worklog_projects"
	KeyCurrentProject = "worklog_current_project"
	KeyNoticeSeen     = "worklog_notice_seen"
)

// Entry is a single key/value pair written to Storage.
type Entry struct {
	Key   string
	Value string
}

// Storage is the key-value store persisted state lives in. Put writes all
// entries atomically. Get returns repository.ErrNotFound for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, entries ...Entry) error
}
