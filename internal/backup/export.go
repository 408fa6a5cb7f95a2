// Package backup reads and writes zip archives of the project store.
package backup

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpggio/worklog/internal/domain/project"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	// FormatVersion is written to every backup document.
	FormatVersion = "1.2.0"

	fullBackupName = "logdiary"
	dateLayout     = "2006-01-02"
	exportLayout   = "2006-01-02T15:04:05.000Z07:00"
)

// Archive is an in-memory zip archive with its suggested file name.
type Archive struct {
	FileName string
	Data     []byte
}

// ExportAll archives every project under a top-level "projects" key.
func ExportAll(set *project.ProjectSet, now time.Time) (*Archive, error) {
	projects, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("encoding projects: %w", err)
	}
	doc, err := sjson.SetRawBytes([]byte(`{}`), "projects", projects)
	if err != nil {
		return nil, err
	}
	return build(fullBackupName, doc, now)
}

// ExportProject archives a single project keyed by its name.
func ExportProject(set *project.ProjectSet, name string, now time.Time) (*Archive, error) {
	switch name {
	case keyProjects, keyExportDate, keyVersion:
		return nil, fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	p, ok := set.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", project.ErrProjectNotFound, name)
	}
	single := project.NewProjectSet()
	single.Put(name, p)
	doc, err := json.Marshal(single)
	if err != nil {
		return nil, fmt.Errorf("encoding project: %w", err)
	}
	return build(name, doc, now)
}

func build(base string, doc []byte, now time.Time) (*Archive, error) {
	now = now.UTC()
	doc, err := sjson.SetBytes(doc, "exportDate", now.Format(exportLayout))
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "version", FormatVersion)
	if err != nil {
		return nil, err
	}
	doc = pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "  "})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     base + "-backup.json",
		Method:   zip.Deflate,
		Modified: now,
	})
	if err != nil {
		return nil, fmt.Errorf("creating archive entry: %w", err)
	}
	if _, err := w.Write(doc); err != nil {
		return nil, fmt.Errorf("writing archive entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}

	return &Archive{
		FileName: fmt.Sprintf("%s-backup-%s.zip", base, now.Format(dateLayout)),
		Data:     buf.Bytes(),
	}, nil
}
