package git

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chmouel/lazyls/internal/log"
	"github.com/chmouel/lazyls/internal/models"
)

type snapshotEntry struct {
	path  string // absolute, joined onto the working directory
	flags models.StatusFlags
}

// Resolver holds the statuses for all files in one repository, captured once
// at Scan time. The snapshot is immutable and may be queried concurrently;
// only ignore queries reach back into the live session, under the mutex,
// because the underlying session is not safe for concurrent use.
type Resolver struct {
	mu       sync.Mutex
	session  Session
	workdir  string
	statuses []snapshotEntry
}

// Scan discovers a git repository on or above path and snapshots the status
// of every changed file in it. It is very lenient: any failure at all, from
// a missing repository to a corrupt one, returns nil. Git awareness is an
// enhancement to the listing, never a requirement.
func Scan(path string) *Resolver {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	for _, provider := range DefaultProviders {
		if r := scanWith(provider, abs); r != nil {
			return r
		}
	}
	return nil
}

func scanWith(provider Provider, abs string) *Resolver {
	session, ok := provider.Discover(abs)
	if !ok {
		return nil
	}
	workdir, ok := session.Workdir()
	if !ok {
		return nil
	}
	entries, err := session.Statuses()
	if err != nil {
		log.Printf("git: status enumeration failed in %s: %v", workdir, err)
		return nil
	}
	statuses := make([]snapshotEntry, 0, len(entries))
	for _, e := range entries {
		statuses = append(statuses, snapshotEntry{
			path:  filepath.Join(workdir, filepath.FromSlash(e.Path)),
			flags: e.Flags,
		})
	}
	return &Resolver{session: session, workdir: workdir, statuses: statuses}
}

// Workdir returns the repository's working directory root.
func (r *Resolver) Workdir() string { return r.workdir }

// Status returns the status pair for the file at the given absolute path.
// Paths with no snapshot entry are unmodified on both sides; this query is
// exact-match only and meant for leaf files, not directories.
func (r *Resolver) Status(path string) models.PathStatus {
	path = filepath.Clean(path)
	for _, e := range r.statuses {
		if e.path == path {
			return e.flags.Status()
		}
	}
	return models.PathStatus{}
}

// DirStatus returns the combined status for all files under dir. Directories
// have no status of their own in git, so the raw flags of every descendant
// are OR-ed together and the combined set reduced like a single file's. The
// result is lossy on purpose: it answers "does something under here need a
// look", not "exactly what changed".
func (r *Resolver) DirStatus(dir string) models.PathStatus {
	dir = filepath.Clean(dir)
	var combined models.StatusFlags
	for _, e := range r.statuses {
		if underDir(dir, e.path) {
			combined |= e.flags
		}
	}
	return combined.Status()
}

// ShouldIgnore reports whether the given path is on the git ignore list.
// The snapshot cannot answer this: ignored paths usually have no status
// entry at all, so the query goes to the live session. Any failure,
// including paths outside the repository, reads as "not ignored".
func (r *Resolver) ShouldIgnore(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(r.workdir, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	isDir := false
	if info, statErr := os.Stat(abs); statErr == nil {
		isDir = info.IsDir()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	ignored, err := r.session.IsIgnored(filepath.ToSlash(rel), isDir)
	if err != nil {
		log.Printf("git: ignore check failed for %s: %v", rel, err)
		return false
	}
	return ignored
}

// underDir reports whether path equals dir or sits below it. The comparison
// is component-wise: /repo/abc is not under /repo/ab.
func underDir(dir, path string) bool {
	if path == dir {
		return true
	}
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
