package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/gjson"
)

// ErrInvalidProjectData indicates a serialized project set could not be decoded.
var ErrInvalidProjectData = errors.New("invalid project data")

// ProjectSet maps project names to projects and remembers insertion order.
// The zero value is an empty set ready to use.
type ProjectSet struct {
	names    []string
	projects map[string]*Project
}

// NewProjectSet creates an empty set.
func NewProjectSet() *ProjectSet {
	return &ProjectSet{projects: make(map[string]*Project)}
}

// Len returns the number of projects.
func (s *ProjectSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns project names in insertion order.
func (s *ProjectSet) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.names)
}

// Get returns the project stored under name.
func (s *ProjectSet) Get(name string) (*Project, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.projects[name]
	return p, ok
}

// Has reports whether name is present.
func (s *ProjectSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Put stores p under name. An existing name keeps its position.
func (s *ProjectSet) Put(name string, p *Project) {
	if s.projects == nil {
		s.projects = make(map[string]*Project)
	}
	if _, ok := s.projects[name]; !ok {
		s.names = append(s.names, name)
	}
	s.projects[name] = p
}

// Delete removes name and reports whether it was present.
func (s *ProjectSet) Delete(name string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.projects[name]; !ok {
		return false
	}
	delete(s.projects, name)
	s.names = slices.DeleteFunc(s.names, func(n string) bool { return n == name })
	return true
}

// All iterates projects in insertion order.
func (s *ProjectSet) All() iter.Seq2[string, *Project] {
	return func(yield func(string, *Project) bool) {
		if s == nil {
			return
		}
		for _, name := range s.names {
			if !yield(name, s.projects[name]) {
				return
			}
		}
	}
}

// Merge copies every project of other into s, replacing same-named entries
// wholesale.
func (s *ProjectSet) Merge(other *ProjectSet) {
	for name, p := range other.All() {
		s.Put(name, p)
	}
}

// Clone returns a deep copy of the set.
func (s *ProjectSet) Clone() *ProjectSet {
	cp := NewProjectSet()
	for name, p := range s.All() {
		cp.Put(name, p.Clone())
	}
	return cp
}

// MarshalJSON encodes the set as an object keyed by name in insertion order.
func (s *ProjectSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for name, p := range s.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode project %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of projects, keeping key order.
func (s *ProjectSet) UnmarshalJSON(data []byte) error {
	set, err := DecodeProjectSet(data)
	if err != nil {
		return err
	}
	*s = *set
	return nil
}

// DecodeProjectSet decodes a JSON object of projects, keeping key order.
// A JSON null decodes to an empty set.
func DecodeProjectSet(data []byte) (*ProjectSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidProjectData)
	}
	return ProjectSetFromResult(gjson.ParseBytes(data))
}

// ProjectSetFromResult decodes a parsed JSON object of projects.
func ProjectSetFromResult(res gjson.Result) (*ProjectSet, error) {
	set := NewProjectSet()
	if res.Type == gjson.Null {
		return set, nil
	}
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: expected an object of projects", ErrInvalidProjectData)
	}

	var decodeErr error
	res.ForEach(func(key, value gjson.Result) bool {
		p, err := DecodeProject(key.String(), value)
		if err != nil {
			decodeErr = err
			return false
		}
		set.Put(key.String(), p)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return set, nil
}

// DecodeProject decodes a single project value stored under name.
func DecodeProject(name string, value gjson.Result) (*Project, error) {
	if !value.IsObject() {
		return nil, fmt.Errorf("%w: project %q is not an object", ErrInvalidProjectData, name)
	}
	var p Project
	if err := json.Unmarshal([]byte(value.Raw), &p); err != nil {
		return nil, fmt.Errorf("%w: project %q: %v", ErrInvalidProjectData, name, err)
	}
	return &p, nil
}
