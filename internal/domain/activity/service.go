package activity

import (
	"log/slog"
	"time"
)

// Service computes dashboard views over the project store.
type Service struct {
	source Source
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new activity service. A nil clock uses time.Now.
func NewService(source Source, logger *slog.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if now == nil {
		now = time.Now
	}
	return &Service{source: source, logger: logger, now: now}
}

// Summary returns dashboard stats, the latest limit entries and progress.
func (s *Service) Summary(limit int) Summary {
	set := s.source.Snapshot()
	sum := Summary{
		Stats:    Dashboard(set, s.now()),
		Recent:   RecentActivity(set, limit),
		Progress: Progress(set),
	}
	s.logger.Debug("dashboard computed", "projects", sum.Stats.Projects, "logs", sum.Stats.TotalLogs)
	return sum
}

// Search filters the logs of the named project.
func (s *Service) Search(name string, f Filter) ([]FilteredLog, error) {
	logs, err := s.source.Logs(name)
	if err != nil {
		return nil, err
	}
	return FilterLogs(logs, f), nil
}

// TimeAgo formats ts relative to the service clock.
func (s *Service) TimeAgo(ts time.Time) string {
	return FormatTimeAgo(ts, s.now())
}
