package models

import (
	"io/fs"
	"time"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name    string // base name as displayed
	Path    string // absolute path
	IsDir   bool
	Size    int64
	ModTime time.Time
	Mode    fs.FileMode
	Git     PathStatus
}

// Ext returns the entry's extension without the leading dot, or "" when the
// name has none. Dotfiles like ".gitignore" are treated as extensionless.
func (e Entry) Ext() string {
	for i := len(e.Name) - 1; i > 0; i-- {
		if e.Name[i] == '.' {
			return e.Name[i+1:]
		}
	}
	return ""
}
