// Package listing walks directories and turns them into sorted, filtered
// entry lists ready for rendering.
package listing

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SortField selects what a listing is ordered by.
type SortField int

// Sort fields. The *CI variants compare case-insensitively.
const (
	SortName SortField = iota
	SortNameCI
	SortSize
	SortExt
	SortExtCI
	SortModified
	SortType
	SortNone
)

var sortWords = []string{
	"name", "Name", "size", "extension", "Extension", "modified", "type", "none",
}

// SortWords returns the canonical --sort argument words.
func SortWords() []string {
	return append([]string(nil), sortWords...)
}

// ParseSortField maps a --sort argument word onto a SortField. The word set
// mirrors the long and short spellings users expect from ls-alikes.
func ParseSortField(word string) (SortField, error) {
	switch word {
	case "", "name", "filename":
		return SortName, nil
	case "Name", "Filename":
		return SortNameCI, nil
	case "size", "filesize":
		return SortSize, nil
	case "ext", "extension":
		return SortExt, nil
	case "Ext", "Extension":
		return SortExtCI, nil
	case "mod", "modified":
		return SortModified, nil
	case "type":
		return SortType, nil
	case "none":
		return SortNone, nil
	default:
		return SortName, fmt.Errorf("unknown sort field %q (choices: %s)", word, strings.Join(sortWords, ", "))
	}
}

// DotFilter controls which hidden entries a listing shows.
type DotFilter int

const (
	// DotJustFiles hides dotfiles.
	DotJustFiles DotFilter = iota
	// DotFiles shows dotfiles.
	DotFiles
	// DotFilesAndDots shows dotfiles plus the . and .. entries.
	DotFilesAndDots
)

// DotFilterFromCount derives the dot filter from how many times --all was
// given: once shows dotfiles, twice shows . and .. too.
func DotFilterFromCount(count int) DotFilter {
	switch {
	case count <= 0:
		return DotJustFiles
	case count == 1:
		return DotFiles
	default:
		return DotFilesAndDots
	}
}

// IgnorePatterns is a set of glob patterns matched against entry base names.
type IgnorePatterns []string

// ParseIgnorePatterns splits a pipe-separated glob list and validates each
// pattern. An empty input yields a set that matches nothing.
func ParseIgnorePatterns(input string) (IgnorePatterns, error) {
	if input == "" {
		return nil, nil
	}
	parts := strings.Split(input, "|")
	patterns := make(IgnorePatterns, 0, len(parts))
	for _, pattern := range parts {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return nil, fmt.Errorf("invalid ignore glob %q: %w", pattern, err)
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// Match reports whether any pattern matches the given base name.
func (p IgnorePatterns) Match(name string) bool {
	for _, pattern := range p {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// FileFilter bundles every option that decides which entries a listing
// shows and in what order.
type FileFilter struct {
	ListDirsFirst  bool
	Reverse        bool
	SortField      SortField
	DotFilter      DotFilter
	IgnorePatterns IgnorePatterns
	GitIgnore      bool // drop entries matched by the repository's ignore rules
}
