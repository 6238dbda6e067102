package listing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/lazyls/internal/models"
)

// GitResolver answers the status queries a listing overlays onto entries.
// A nil resolver means the directory is not inside a repository.
type GitResolver interface {
	Status(path string) models.PathStatus
	DirStatus(path string) models.PathStatus
	ShouldIgnore(path string) bool
}

// List reads one directory and returns its filtered, sorted entries with
// git statuses attached. Entries whose metadata cannot be read are skipped
// rather than failing the whole listing.
func List(dir string, filter FileFilter, resolver GitResolver) ([]models.Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(dirEntries))
	if filter.DotFilter == DotFilesAndDots {
		// The . and .. pseudo-entries keep an unmodified status;
		// aggregating the whole repository onto them would be noise.
		for _, name := range []string{".", ".."} {
			if e, ok := statEntry(abs, name); ok {
				entries = append(entries, e)
			}
		}
	}

	for _, de := range dirEntries {
		name := de.Name()
		if filter.DotFilter == DotJustFiles && strings.HasPrefix(name, ".") {
			continue
		}
		if filter.IgnorePatterns.Match(name) {
			continue
		}
		path := filepath.Join(abs, name)
		if filter.GitIgnore && resolver != nil && resolver.ShouldIgnore(path) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entry := models.Entry{
			Name:    name,
			Path:    path,
			IsDir:   de.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    info.Mode(),
		}
		attachStatus(&entry, resolver)
		entries = append(entries, entry)
	}

	Sort(entries, filter)
	return entries, nil
}

func statEntry(dir, name string) (models.Entry, bool) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return models.Entry{}, false
	}
	return models.Entry{
		Name:    name,
		Path:    path,
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Mode:    info.Mode(),
	}, true
}

func attachStatus(entry *models.Entry, resolver GitResolver) {
	if resolver == nil {
		return
	}
	if entry.IsDir {
		entry.Git = resolver.DirStatus(entry.Path)
		return
	}
	entry.Git = resolver.Status(entry.Path)
}
