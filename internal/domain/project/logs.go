package project

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// AddLog appends a log entry to the project. Every tag must already be
// defined on the project.
func (s *Service) AddLog(ctx context.Context, name, text string, tags []string) (Log, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Log{}, ErrInvalidInput
	}

	var added Log
	err := s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}

		logTags := []string{}
		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if !slices.Contains(p.Tags, tag) {
				return fmt.Errorf("%w: %s", ErrTagNotFound, tag)
			}
			if !slices.Contains(logTags, tag) {
				logTags = append(logTags, tag)
			}
		}

		added = Log{
			ID:        s.newID(),
			Text:      text,
			Timestamp: s.timestamp(),
			Tags:      logTags,
		}
		p.Logs = append(p.Logs, added)
		return nil
	})
	if err != nil {
		return Log{}, err
	}

	s.logger.Debug("log added", "project", name, "log_id", added.ID)
	return added.clone(), nil
}

// Logs returns the project's logs in insertion order.
func (s *Service) Logs(name string) ([]Log, error) {
	p, err := s.Project(name)
	if err != nil {
		return nil, err
	}
	return p.Logs, nil
}

// DeleteLog removes the log with the given id. A unique id prefix is
// accepted as well.
func (s *Service) DeleteLog(ctx context.Context, name, id string) error {
	return s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		idx, err := findLog(p.Logs, strings.TrimSpace(id))
		if err != nil {
			return err
		}
		p.Logs = slices.Delete(p.Logs, idx, idx+1)
		return nil
	})
}

// findLog matches id exactly first, then as a prefix of exactly one log.
func findLog(logs []Log, id string) (int, error) {
	if id == "" {
		return -1, fmt.Errorf("%w: empty id", ErrLogNotFound)
	}
	if idx := slices.IndexFunc(logs, func(l Log) bool { return l.ID == id }); idx >= 0 {
		return idx, nil
	}
	idx := -1
	for i, l := range logs {
		if !strings.HasPrefix(l.ID, id) {
			continue
		}
		if idx >= 0 {
			return -1, fmt.Errorf("%w: id prefix %s is ambiguous", ErrLogNotFound, id)
		}
		idx = i
	}
	if idx < 0 {
		return -1, fmt.Errorf("%w: %s", ErrLogNotFound, id)
	}
	return idx, nil
}

// DeleteLogAt removes the log at index in insertion order.
func (s *Service) DeleteLogAt(ctx context.Context, name string, index int) error {
	return s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(p.Logs) {
			return fmt.Errorf("%w: index %d", ErrLogNotFound, index)
		}
		p.Logs = slices.Delete(p.Logs, index, index+1)
		return nil
	})
}
