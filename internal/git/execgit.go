package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chmouel/lazyls/internal/models"
)

// LookupPath is used to find the git binary in PATH. It's exposed as a
// package variable so tests can mock it and avoid depending on system
// binaries being installed.
var LookupPath = exec.LookPath

// execProvider shells out to the git binary. It serves as the fallback when
// go-git cannot open the repository.
type execProvider struct {
	bin string
}

func (p execProvider) Discover(path string) (Session, bool) {
	bin := p.bin
	if bin == "" {
		bin = "git"
	}
	if _, err := LookupPath(bin); err != nil {
		return nil, false
	}
	dir := path
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}
	out, err := runGit(bin, dir, "rev-parse", "--show-toplevel")
	if err != nil || out == "" {
		// Bare repositories print nothing for --show-toplevel.
		return nil, false
	}
	return &execSession{bin: bin, root: out}, true
}

type execSession struct {
	bin  string
	root string
}

func (s *execSession) Workdir() (string, bool) {
	return s.root, s.root != ""
}

func (s *execSession) Statuses() ([]StatusEntry, error) {
	cmd := exec.Command(s.bin, "-C", s.root, "status", "--porcelain", "-z", "--untracked-files=all") // #nosec G204 -- fixed argument list, only the repo path varies
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	return parsePorcelain(string(out)), nil
}

func (s *execSession) IsIgnored(rel string, _ bool) (bool, error) {
	cmd := exec.Command(s.bin, "-C", s.root, "check-ignore", "-q", "--", rel) // #nosec G204 -- fixed argument list
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	if exitError, ok := err.(*exec.ExitError); ok && exitError.ExitCode() == 1 {
		// Exit 1 means "not ignored", not a failure.
		return false, nil
	}
	return false, err
}

// parsePorcelain decodes NUL-separated `git status --porcelain -z` output.
// Rename and copy records carry the original path as an extra NUL field,
// which is skipped: the snapshot records the path the file lives at now.
func parsePorcelain(out string) []StatusEntry {
	fields := strings.Split(out, "\x00")
	entries := make([]StatusEntry, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		record := fields[i]
		if len(record) < 4 || record[2] != ' ' {
			continue
		}
		x, y := record[0], record[1]
		path := record[3:]
		if x == 'R' || x == 'C' {
			i++ // original path field
		}
		flags := porcelainFlags(x, y)
		if flags == 0 {
			continue
		}
		entries = append(entries, StatusEntry{Path: path, Flags: flags})
	}
	return entries
}

func porcelainFlags(x, y byte) models.StatusFlags {
	if x == '?' || y == '?' {
		return models.WorktreeNew
	}
	if x == '!' || y == '!' {
		return 0
	}
	var flags models.StatusFlags
	switch x {
	case 'A':
		flags |= models.IndexNew
	case 'M', 'U':
		flags |= models.IndexModified
	case 'D':
		flags |= models.IndexDeleted
	case 'R', 'C':
		flags |= models.IndexRenamed
	case 'T':
		flags |= models.IndexTypeChanged
	}
	switch y {
	case 'A':
		flags |= models.WorktreeNew
	case 'M', 'U':
		flags |= models.WorktreeModified
	case 'D':
		flags |= models.WorktreeDeleted
	case 'R', 'C':
		flags |= models.WorktreeRenamed
	case 'T':
		flags |= models.WorktreeTypeChanged
	}
	return flags
}

func runGit(bin, dir string, args ...string) (string, error) {
	cmd := exec.Command(bin, append([]string{"-C", dir}, args...)...) // #nosec G204 -- fixed argument list
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
