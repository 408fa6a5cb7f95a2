package activity

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rpggio/worklog/internal/domain/project"
)

const week = 7 * 24 * time.Hour

// TimestampLayout is the form timestamps are matched against by date filters.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Dashboard counts projects, logs, logs newer than a week, and distinct tags.
func Dashboard(set *project.ProjectSet, now time.Time) Stats {
	cutoff := now.Add(-week)
	tags := make(map[string]struct{})
	stats := Stats{Projects: set.Len()}
	for _, p := range set.All() {
		stats.TotalLogs += len(p.Logs)
		for _, l := range p.Logs {
			if l.Timestamp.After(cutoff) {
				stats.WeeklyLogs++
			}
		}
		for _, t := range p.Tags {
			tags[t] = struct{}{}
		}
	}
	stats.Tags = len(tags)
	return stats
}

// RecentActivity returns the newest logs across all projects, newest first.
// A non-positive limit uses DefaultRecentLimit.
func RecentActivity(set *project.ProjectSet, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	var entries []Entry
	for name, p := range set.All() {
		for _, l := range p.Logs {
			entries = append(entries, Entry{Project: name, Log: l})
		}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Log.Timestamp.Compare(a.Log.Timestamp)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Progress reports the average logs per project and the most active project.
func Progress(set *project.ProjectSet) ProgressReport {
	var report ProgressReport
	for name, p := range set.All() {
		n := len(p.Logs)
		report.TotalLogs += n
		if n > report.MostActiveLogs {
			report.MostActive = name
			report.MostActiveLogs = n
		}
	}
	if report.TotalLogs > 0 {
		avg := float64(report.TotalLogs) / float64(set.Len())
		report.AverageLogs = math.Round(avg*10) / 10
	}
	return report
}

// FilterLogs applies f to logs and returns the matches, latest insertion
// first.
func FilterLogs(logs []project.Log, f Filter) []FilteredLog {
	keyword := strings.ToLower(strings.TrimSpace(f.Keyword))
	var out []FilteredLog
	for i, l := range logs {
		if keyword != "" && !strings.Contains(strings.ToLower(l.Text), keyword) {
			continue
		}
		if f.Date != "" && !strings.HasPrefix(FormatTimestamp(l.Timestamp), f.Date) {
			continue
		}
		if f.Tag != "" && !l.HasTag(f.Tag) {
			continue
		}
		out = append(out, FilteredLog{Index: i, Log: l})
	}
	slices.Reverse(out)
	return out
}

// FormatTimestamp renders ts in UTC with millisecond precision.
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(TimestampLayout)
}
