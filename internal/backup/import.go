package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/tidwall/gjson"
)

// Metadata keys written alongside the projects of a backup document.
const (
	keyProjects   = "projects"
	keyExportDate = "exportDate"
	keyVersion    = "version"
)

// Import reads a backup archive and returns the projects it holds, in
// document order. The first entry whose name ends in .json is used. Logs
// without an id are given one.
func Import(r io.ReaderAt, size int64) (*project.ProjectSet, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}

	var entry *zip.File
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, ".json") {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, ErrNoJSONEntry
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}

	set, err := Decode(data)
	if err != nil {
		return nil, err
	}
	for _, p := range set.All() {
		for i := range p.Logs {
			if p.Logs[i].ID == "" {
				p.Logs[i].ID = uuid.NewString()
			}
		}
	}
	return set, nil
}

// Decode parses a backup document. A document with a "projects" object is a
// full backup. Otherwise every top-level key names a project, apart from
// non-object exportDate and version values.
func Decode(data []byte) (*project.ProjectSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedBackup)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedBackup)
	}

	if projects := root.Get(keyProjects); projects.IsObject() {
		set, err := project.ProjectSetFromResult(projects)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBackup, err)
		}
		return set, nil
	}

	set := project.NewProjectSet()
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if (name == keyExportDate || name == keyVersion) && !value.IsObject() {
			return true
		}
		p, err := project.DecodeProject(name, value)
		if err != nil {
			decodeErr = fmt.Errorf("%w: %w", ErrMalformedBackup, err)
			return false
		}
		set.Put(name, p)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return set, nil
}
