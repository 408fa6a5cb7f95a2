package commit

import (
	"context"
	"time"
)

const day = 24 * time.Hour

// MockProvider returns a fixed commit history dated relative to its clock.
// It ignores the repository it is asked about.
type MockProvider struct {
	now func() time.Time
}

// NewMockProvider creates a MockProvider. A nil clock uses time.Now.
func NewMockProvider(now func() time.Time) *MockProvider {
	if now == nil {
		now = time.Now
	}
	return &MockProvider{now: now}
}

// FetchRecentCommits returns the fixed history, oldest first.
func (p *MockProvider) FetchRecentCommits(_ context.Context, _ Repo) ([]CommitRecord, error) {
	now := p.now().UTC()
	return []CommitRecord{
		{
			Hash:    "a1b2c3d",
			Message: "Initial commit",
			Author:  "Developer",
			Date:    now.Add(-7 * day),
			Files:   []string{"README.md", "package.json"},
		},
		{
			Hash:    "e4f5g6h",
			Message: "Add basic functionality",
			Author:  "Developer",
			Date:    now.Add(-5 * day),
			Files:   []string{"app.js", "index.html"},
		},
		{
			Hash:    "i7j8k9l",
			Message: "Fix UI issues",
			Author:  "Developer",
			Date:    now.Add(-3 * day),
			Files:   []string{"styles.css", "app.js"},
		},
		{
			Hash:    "m1n2o3p",
			Message: "Add Git integration",
			Author:  "Developer",
			Date:    now.Add(-1 * day),
			Files:   []string{"git.js", "app.js"},
		},
	}, nil
}
