package git

import (
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/chmouel/lazyls/internal/models"
)

// goGitProvider opens repositories with go-git, the default provider.
type goGitProvider struct{}

func (goGitProvider) Discover(path string) (Session, bool) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, false
	}
	wt, err := repo.Worktree()
	if err != nil {
		// Bare repository: nothing to list against.
		return nil, false
	}
	return &goGitSession{wt: wt}, true
}

type goGitSession struct {
	wt      *gogit.Worktree
	matcher gitignore.Matcher
}

func (s *goGitSession) Workdir() (string, bool) {
	root := s.wt.Filesystem.Root()
	if root == "" {
		return "", false
	}
	return root, true
}

func (s *goGitSession) Statuses() ([]StatusEntry, error) {
	st, err := s.wt.Status()
	if err != nil {
		return nil, err
	}
	entries := make([]StatusEntry, 0, len(st))
	for path, fileStatus := range st {
		flags := flagsForFileStatus(fileStatus)
		if flags == 0 {
			continue
		}
		entries = append(entries, StatusEntry{Path: path, Flags: flags})
	}
	return entries, nil
}

// IsIgnored matches the path against every .gitignore in the worktree plus
// the global excludes. The matcher is built on first use and reused: ignore
// rules are assumed stable for the lifetime of one listing, the same
// assumption the status snapshot makes.
func (s *goGitSession) IsIgnored(rel string, isDir bool) (bool, error) {
	if s.matcher == nil {
		patterns, err := gitignore.ReadPatterns(s.wt.Filesystem, nil)
		if err != nil {
			return false, err
		}
		patterns = append(patterns, s.wt.Excludes...)
		s.matcher = gitignore.NewMatcher(patterns)
	}
	return s.matcher.Match(strings.Split(rel, "/"), isDir), nil
}

// flagsForFileStatus maps a go-git staging/worktree code pair onto the raw
// flag set. go-git has no type-change code, so those bits only come from the
// exec provider. Copied is folded into Renamed: the display taxonomy has no
// separate kind for copies.
func flagsForFileStatus(fileStatus *gogit.FileStatus) models.StatusFlags {
	var flags models.StatusFlags
	switch fileStatus.Staging {
	case gogit.Added:
		flags |= models.IndexNew
	case gogit.Modified, gogit.UpdatedButUnmerged:
		flags |= models.IndexModified
	case gogit.Deleted:
		flags |= models.IndexDeleted
	case gogit.Renamed, gogit.Copied:
		flags |= models.IndexRenamed
	}
	switch fileStatus.Worktree {
	case gogit.Untracked:
		flags |= models.WorktreeNew
	case gogit.Modified, gogit.UpdatedButUnmerged:
		flags |= models.WorktreeModified
	case gogit.Deleted:
		flags |= models.WorktreeDeleted
	case gogit.Renamed, gogit.Copied:
		flags |= models.WorktreeRenamed
	}
	return flags
}
