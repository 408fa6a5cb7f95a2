package commit

import "errors"

var (
	// ErrUnsupportedRemote indicates the repository URL is not a local path.
	ErrUnsupportedRemote = errors.New("unsupported remote repository")
	// ErrUnknownProvider indicates an unrecognized provider name.
	ErrUnknownProvider = errors.New("unknown commit provider")
)
