package backup

import "errors"

var (
	// ErrMalformedArchive indicates the input is not a readable zip archive.
	ErrMalformedArchive = errors.New("malformed backup archive")
	// ErrNoJSONEntry indicates the archive holds no .json entry.
	ErrNoJSONEntry = errors.New("backup archive has no json entry")
	// ErrMalformedBackup indicates the backup document could not be decoded.
	ErrMalformedBackup = errors.New("malformed backup document")
	// ErrReservedName indicates a project whose name collides with a backup
	// document key and so cannot be exported on its own.
	ErrReservedName = errors.New("project name is reserved in single-project backups")
)
