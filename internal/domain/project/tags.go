package project

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// AddTag defines a new tag on the project.
func (s *Service) AddTag(ctx context.Context, name, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrInvalidInput
	}
	return s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		if slices.Contains(p.Tags, tag) {
			return fmt.Errorf("%w: %s", ErrTagExists, tag)
		}
		p.Tags = append(p.Tags, tag)
		return nil
	})
}

// DeleteTag removes a tag from the project and from every log carrying it.
// Deleting an unknown tag is a no-op.
func (s *Service) DeleteTag(ctx context.Context, name, tag string) error {
	tag = strings.TrimSpace(tag)
	return s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		drop := func(t string) bool { return t == tag }
		p.Tags = slices.DeleteFunc(p.Tags, drop)
		for i := range p.Logs {
			p.Logs[i].Tags = slices.DeleteFunc(p.Logs[i].Tags, drop)
		}
		return nil
	})
}

// Tags returns the project's tags in insertion order.
func (s *Service) Tags(name string) ([]string, error) {
	p, err := s.Project(name)
	if err != nil {
		return nil, err
	}
	return p.Tags, nil
}
