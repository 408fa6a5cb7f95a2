package activity

import "github.com/rpggio/worklog/internal/domain/project"

// Stats are the headline dashboard counters.
type Stats struct {
	Projects   int `json:"projects"`
	TotalLogs  int `json:"total_logs"`
	WeeklyLogs int `json:"weekly_logs"`
	Tags       int `json:"tags"`
}

// Entry is a log together with the project it belongs to.
type Entry struct {
	Project string      `json:"project"`
	Log     project.Log `json:"log"`
}

// ProgressReport summarizes how logging is spread across projects.
// MostActive is empty when no project has any logs.
type ProgressReport struct {
	AverageLogs    float64 `json:"average_logs"`
	MostActive     string  `json:"most_active,omitempty"`
	MostActiveLogs int     `json:"most_active_logs,omitempty"`
	TotalLogs      int     `json:"total_logs"`
}

// FilteredLog is a log that matched a Filter. Index is its position in the
// project's insertion order.
type FilteredLog struct {
	Index int         `json:"index"`
	Log   project.Log `json:"log"`
}

// Summary is everything the dashboard shows at once.
type Summary struct {
	Stats    Stats          `json:"stats"`
	Recent   []Entry        `json:"recent"`
	Progress ProgressReport `json:"progress"`
}
