package project

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// AddPlanningItem appends an item to a planning category.
func (s *Service) AddPlanningItem(ctx context.Context, name string, category Category, title, description string) (PlanningItem, error) {
	if !category.Valid() {
		return PlanningItem{}, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return PlanningItem{}, ErrInvalidInput
	}

	item := PlanningItem{
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.timestamp(),
	}
	err := s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		if p.Planning == nil {
			p.Planning = newPlanning()
		}
		list := p.Planning.list(category)
		*list = append(*list, item)
		return nil
	})
	if err != nil {
		return PlanningItem{}, err
	}
	return item, nil
}

// DeletePlanningItem removes the item at index from a planning category.
func (s *Service) DeletePlanningItem(ctx context.Context, name string, category Category, index int) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	return s.update(ctx, func(st *state) error {
		p, err := lookup(st.projects, name)
		if err != nil {
			return err
		}
		if p.Planning == nil {
			return fmt.Errorf("%w: %s[%d]", ErrPlanningItemNotFound, category, index)
		}
		list := p.Planning.list(category)
		if index < 0 || index >= len(*list) {
			return fmt.Errorf("%w: %s[%d]", ErrPlanningItemNotFound, category, index)
		}
		*list = slices.Delete(*list, index, index+1)
		return nil
	})
}

// Planning returns a copy of the project's planning lists.
func (s *Service) Planning(name string) (*Planning, error) {
	p, err := s.Project(name)
	if err != nil {
		return nil, err
	}
	if p.Planning == nil {
		return newPlanning(), nil
	}
	return p.Planning, nil
}
