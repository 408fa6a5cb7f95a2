package project

import (
	"slices"
	"time"
)

// DefaultVersion is assigned to newly created projects.
const DefaultVersion = "1.0.0"

// LogTypeCommit marks logs synthesized from commit history.
const LogTypeCommit = "commit"

// Category names a planning list.
type Category string

const (
	CategoryBacklog    Category = "backlog"
	CategoryInProgress Category = "inProgress"
	CategoryCompleted  Category = "completed"
)

// Categories lists planning categories in display order.
var Categories = []Category{CategoryBacklog, CategoryInProgress, CategoryCompleted}

// Valid reports whether c is a known planning category.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Project is a named container of logs, tags, version and planning items.
// The name is the key it is stored under and is not part of the record.
type Project struct {
	Logs      []Log     `json:"logs"`
	Tags      []string  `json:"tags"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	GitRepo   *GitRepo  `json:"gitRepo"`
	Planning  *Planning `json:"planning,omitempty"`
}

// GitRepo describes the repository a project is connected to.
type GitRepo struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	Branch    string `json:"branch"`
	Connected bool   `json:"connected"`
}

// Planning holds the three planning lists.
type Planning struct {
	Backlog    []PlanningItem `json:"backlog"`
	InProgress []PlanningItem `json:"inProgress"`
	Completed  []PlanningItem `json:"completed"`
}

// PlanningItem is a lightweight task card.
type PlanningItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Log is a timestamped free-text entry. Commit fields are only set on logs
// synthesized from commit history.
type Log struct {
	ID            string    `json:"id,omitempty"`
	Text          string    `json:"text"`
	Timestamp     time.Time `json:"timestamp"`
	Tags          []string  `json:"tags"`
	Type          string    `json:"type,omitempty"`
	CommitHash    string    `json:"commitHash,omitempty"`
	CommitMessage string    `json:"commitMessage,omitempty"`
	CommitAuthor  string    `json:"commitAuthor,omitempty"`
	CommitFiles   []string  `json:"commitFiles,omitempty"`
}

// IsCommit reports whether the log was derived from a commit.
func (l Log) IsCommit() bool {
	return l.Type == LogTypeCommit
}

// HasTag reports whether the log carries tag.
func (l Log) HasTag(tag string) bool {
	return slices.Contains(l.Tags, tag)
}

// GitStatus summarizes commit-derived logs of a project.
type GitStatus struct {
	Repo          GitRepo `json:"repo"`
	TotalCommits  int     `json:"total_commits"`
	RecentCommits []Log   `json:"recent_commits"`
}

// list returns the planning list for c.
func (p *Planning) list(c Category) *[]PlanningItem {
	switch c {
	case CategoryBacklog:
		return &p.Backlog
	case CategoryInProgress:
		return &p.InProgress
	case CategoryCompleted:
		return &p.Completed
	default:
		return nil
	}
}

// Items returns a copy of the planning list for c.
func (p *Planning) Items(c Category) []PlanningItem {
	if p == nil {
		return nil
	}
	l := p.list(c)
	if l == nil {
		return nil
	}
	return slices.Clone(*l)
}

func newPlanning() *Planning {
	return &Planning{
		Backlog:    []PlanningItem{},
		InProgress: []PlanningItem{},
		Completed:  []PlanningItem{},
	}
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Tags = cloneStrings(p.Tags)
	if p.Logs != nil {
		cp.Logs = make([]Log, len(p.Logs))
		for i, l := range p.Logs {
			cp.Logs[i] = l.clone()
		}
	}
	if p.GitRepo != nil {
		repo := *p.GitRepo
		cp.GitRepo = &repo
	}
	if p.Planning != nil {
		cp.Planning = &Planning{
			Backlog:    clonePlanningItems(p.Planning.Backlog),
			InProgress: clonePlanningItems(p.Planning.InProgress),
			Completed:  clonePlanningItems(p.Planning.Completed),
		}
	}
	return &cp
}

func (l Log) clone() Log {
	l.Tags = cloneStrings(l.Tags)
	l.CommitFiles = cloneStrings(l.CommitFiles)
	return l
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

func clonePlanningItems(items []PlanningItem) []PlanningItem {
	if items == nil {
		return nil
	}
	return slices.Clone(items)
}
