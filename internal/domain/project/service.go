package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/worklog/internal/domain/commit"
	"github.com/rpggio/worklog/internal/repository"
)

// Service owns the project store. Every mutation is applied to a copy of the
// store, persisted in full, and only then made visible.
type Service struct {
	mu      sync.Mutex
	storage Storage
	commits commit.Provider
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string

	projects   *ProjectSet
	current    string
	noticeSeen bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how log ids are generated.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a new project service with an empty store. Call Load
// to read persisted state.
func NewService(storage Storage, commits commit.Provider, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		storage:  storage,
		commits:  commits,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
		projects: NewProjectSet(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProjectSummary is a lightweight representation for listing.
type ProjectSummary struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	LogCount  int       `json:"log_count"`
	TagCount  int       `json:"tag_count"`
	GitRepo   string    `json:"git_repo,omitempty"`
	Selected  bool      `json:"selected"`
	CreatedAt time.Time `json:"created_at"`
}

type state struct {
	projects *ProjectSet
	current  string
}

// Load replaces the in-memory store with the persisted one.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := NewProjectSet()
	raw, err := s.get(ctx, KeyProjects)
	if err != nil {
		return err
	}
	if raw != "" {
		set, err = DecodeProjectSet([]byte(raw))
		if err != nil {
			return fmt.Errorf("loading projects: %w", err)
		}
	}
	assigned := s.AssignLogIDs(set)

	current, err := s.get(ctx, KeyCurrentProject)
	if err != nil {
		return err
	}
	if !set.Has(current) {
		current = ""
	}

	seen, err := s.get(ctx, KeyNoticeSeen)
	if err != nil {
		return err
	}

	if assigned > 0 {
		if err := s.persist(ctx, &state{projects: set, current: current}); err != nil {
			return err
		}
		s.logger.Info("assigned missing log ids", "count", assigned)
	}

	s.projects = set
	s.current = current
	s.noticeSeen = seen == "true"
	s.logger.Debug("store loaded", "projects", set.Len(), "current", current)
	return nil
}

func (s *Service) get(ctx context.Context, key string) (string, error) {
	val, err := s.storage.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return val, nil
}

// update applies fn to a copy of the store and commits it once persisted.
func (s *Service) update(ctx context.Context, fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := &state{projects: s.projects.Clone(), current: s.current}
	if err := fn(next); err != nil {
		return err
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.projects = next.projects
	s.current = next.current
	return nil
}

func (s *Service) persist(ctx context.Context, st *state) error {
	data, err := json.Marshal(st.projects)
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	err = s.storage.Put(ctx,
		Entry{Key: KeyProjects, Value: string(data)},
		Entry{Key: KeyCurrentProject, Value: st.current},
	)
	if err != nil {
		return fmt.Errorf("persisting projects: %w", err)
	}
	return nil
}

// Timestamps are kept in UTC at millisecond precision so they survive a
// JSON round trip unchanged.
const timestampPrecision = time.Millisecond

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(timestampPrecision)
}

func lookup(set *ProjectSet, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNoProjectSelected
	}
	p, ok := set.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, name)
	}
	return p, nil
}

// AddProject creates a project and selects it.
func (s *Service) AddProject(ctx context.Context, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	proj := &Project{
		Logs:      []Log{},
		Tags:      []string{},
		Version:   DefaultVersion,
		CreatedAt: s.timestamp(),
		Planning:  newPlanning(),
	}
	var created *Project
	err := s.update(ctx, func(st *state) error {
		if st.projects.Has(name) {
			return fmt.Errorf("%w: %s", ErrProjectExists, name)
		}
		st.projects.Put(name, proj)
		st.current = name
		created = proj.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created", "project", name)
	return created, nil
}

// DeleteProject removes a project, clearing the selection if it was selected.
func (s *Service) DeleteProject(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	err := s.update(ctx, func(st *state) error {
		if !st.projects.Delete(name) {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, name)
		}
		if st.current == name {
			st.current = ""
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("project deleted", "project", name)
	return nil
}

// SelectProject marks name as the current project.
func (s *Service) SelectProject(ctx context.Context, name string) error {
	return s.update(ctx, func(st *state) error {
		if _, err := lookup(st.projects, name); err != nil {
			return err
		}
		st.current = strings.TrimSpace(name)
		return nil
	})
}

// ClearSelection unselects the current project.
func (s *Service) ClearSelection(ctx context.Context) error {
	return s.update(ctx, func(st *state) error {
		st.current = ""
		return nil
	})
}

// CurrentProject returns the selected project name, or "" if none.
func (s *Service) CurrentProject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Project returns a copy of the named project.
func (s *Service) Project(name string) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := lookup(s.projects, name)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// List returns project summaries in creation order.
func (s *Service) List() []ProjectSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]ProjectSummary, 0, s.projects.Len())
	for name, p := range s.projects.All() {
		summary := ProjectSummary{
			Name:      name,
			Version:   p.Version,
			LogCount:  len(p.Logs),
			TagCount:  len(p.Tags),
			Selected:  name == s.current,
			CreatedAt: p.CreatedAt,
		}
		if p.GitRepo != nil {
			summary.GitRepo = p.GitRepo.Name
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Snapshot returns a deep copy of the whole store.
func (s *Service) Snapshot() *ProjectSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects.Clone()
}

// Merge imports projects by shallow key overwrite: a project with an
// existing name replaces it wholesale.
func (s *Service) Merge(ctx context.Context, set *ProjectSet) error {
	incoming := set.Clone()
	s.AssignLogIDs(incoming)
	err := s.update(ctx, func(st *state) error {
		st.projects.Merge(incoming)
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("projects merged", "count", incoming.Len())
	return nil
}

// ReplaceAll swaps the whole store for set. The selection is kept only if
// the selected project still exists.
func (s *Service) ReplaceAll(ctx context.Context, set *ProjectSet) error {
	incoming := set.Clone()
	s.AssignLogIDs(incoming)
	err := s.update(ctx, func(st *state) error {
		st.projects = incoming
		if !incoming.Has(st.current) {
			st.current = ""
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("projects replaced", "count", incoming.Len())
	return nil
}

// AssignLogIDs gives every log without an id a fresh one and returns how
// many were assigned.
func (s *Service) AssignLogIDs(set *ProjectSet) int {
	n := 0
	for _, p := range set.All() {
		for i := range p.Logs {
			if p.Logs[i].ID == "" {
				p.Logs[i].ID = s.newID()
				n++
			}
		}
	}
	return n
}

// SetVersion updates the project's semantic version.
func (s *Service) SetVersion(ctx context.Context, name, version string) error {
	version = strings.TrimSpace(version)
	if !ValidVersion(version) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	return s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		p.Version = NormalizeVersion(version)
		return nil
	})
}

// NoticeDismissed reports whether the onboarding notice was dismissed.
func (s *Service) NoticeDismissed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.noticeSeen
}

// DismissNotice records that the onboarding notice was seen.
func (s *Service) DismissNotice(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Put(ctx, Entry{Key: KeyNoticeSeen, Value: "true"}); err != nil {
		return fmt.Errorf("persisting notice: %w", err)
	}
	s.noticeSeen = true
	return nil
}
