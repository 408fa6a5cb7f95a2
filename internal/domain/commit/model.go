package commit

import "time"

// CommitRecord is a single commit as reported by a Provider.
type CommitRecord struct {
	Hash    string    `json:"hash"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	Files   []string  `json:"files,omitempty"`
}

// Repo identifies the repository a project is connected to.
type Repo struct {
	URL    string
	Name   string
	Branch string
}
