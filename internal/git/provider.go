// Package git resolves version-control status for directory listings. It
// discovers the repository enclosing a path, snapshots every changed path in
// one pass, and answers per-file, per-directory, and ignore queries.
package git

import (
	"github.com/chmouel/lazyls/internal/models"
)

// StatusEntry is one changed path as reported by a provider. Path is relative
// to the repository working directory and slash-separated.
type StatusEntry struct {
	Path  string
	Flags models.StatusFlags
}

// Session is one open repository. Implementations are not safe for concurrent
// use; the Resolver serializes access.
type Session interface {
	// Workdir returns the absolute working directory root. The second
	// return is false for repositories without one (bare repositories).
	Workdir() (string, bool)
	// Statuses enumerates every path with a non-clean status.
	Statuses() ([]StatusEntry, error)
	// IsIgnored reports whether the repository's ignore rules match the
	// given workdir-relative, slash-separated path.
	IsIgnored(rel string, isDir bool) (bool, error)
}

// Provider discovers a repository on or above a path. Discover returns false
// rather than an error: absence and failure are treated the same way.
type Provider interface {
	Discover(path string) (Session, bool)
}

// DefaultProviders is the provider chain Scan tries in order: go-git first,
// then the git binary. It's exposed as a package variable so tests can mock
// it and avoid depending on real repositories being available.
var DefaultProviders = []Provider{goGitProvider{}, execProvider{}}
