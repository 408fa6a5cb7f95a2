package activity

import "github.com/rpggio/worklog/internal/domain/project"

// Source provides read access to the project store.
type Source interface {
	Snapshot() *project.ProjectSet
	Logs(name string) ([]project.Log, error)
}
