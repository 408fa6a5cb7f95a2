package mocks

import (
	"context"

	"github.com/rpggio/worklog/internal/domain/commit"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/rpggio/worklog/internal/repository"
	"github.com/stretchr/testify/mock"
)

// Storage is a mock for project.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *Storage) Put(ctx context.Context, entries ...project.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// CommitProvider is a mock for commit.Provider.
type CommitProvider struct {
	mock.Mock
}

func (m *CommitProvider) FetchRecentCommits(ctx context.Context, repo commit.Repo) ([]commit.CommitRecord, error) {
	args := m.Called(ctx, repo)
	if commits, ok := args.Get(0).([]commit.CommitRecord); ok {
		return commits, args.Error(1)
	}
	return nil, args.Error(1)
}

// MemoryStorage is an in-memory project.Storage for tests. FailPut makes
// every Put fail with the given error without writing.
type MemoryStorage struct {
	Values  map[string]string
	Puts    int
	FailPut error
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Values: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	v, ok := m.Values[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return v, nil
}

func (m *MemoryStorage) Put(_ context.Context, entries ...project.Entry) error {
	if m.FailPut != nil {
		return m.FailPut
	}
	for _, e := range entries {
		m.Values[e.Key] = e.Value
	}
	m.Puts++
	return nil
}
