package commit

import (
	"context"
	"fmt"
	"time"
)

// Provider fetches recent commits for a connected repository.
type Provider interface {
	FetchRecentCommits(ctx context.Context, repo Repo) ([]CommitRecord, error)
}

const (
	ProviderMock  = "mock"
	ProviderLocal = "local"
)

// NewProvider builds the provider registered under name.
func NewProvider(name string, limit int) (Provider, error) {
	switch name {
	case "", ProviderMock:
		return NewMockProvider(time.Now), nil
	case ProviderLocal:
		return NewGitProvider(limit), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}
