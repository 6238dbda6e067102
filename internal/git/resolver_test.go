package git

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazyls/internal/models"
)

type fakeSession struct {
	workdir    string
	bare       bool
	entries    []StatusEntry
	statusErr  error
	ignored    map[string]bool
	ignoreErr  error
	ignoreCall int
}

func (s *fakeSession) Workdir() (string, bool) {
	if s.bare {
		return "", false
	}
	return s.workdir, true
}

func (s *fakeSession) Statuses() ([]StatusEntry, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return s.entries, nil
}

func (s *fakeSession) IsIgnored(rel string, _ bool) (bool, error) {
	s.ignoreCall++
	if s.ignoreErr != nil {
		return false, s.ignoreErr
	}
	return s.ignored[rel], nil
}

type fakeProvider struct {
	session *fakeSession
}

func (p fakeProvider) Discover(string) (Session, bool) {
	if p.session == nil {
		return nil, false
	}
	return p.session, true
}

// withProviders swaps the provider chain for the duration of one test.
func withProviders(t *testing.T, providers ...Provider) {
	t.Helper()
	orig := DefaultProviders
	DefaultProviders = providers
	t.Cleanup(func() { DefaultProviders = orig })
}

func scanFake(t *testing.T, session *fakeSession) *Resolver {
	t.Helper()
	withProviders(t, fakeProvider{session: session})
	r := Scan(session.workdir)
	require.NotNil(t, r)
	return r
}

func TestScanAbsence(t *testing.T) {
	t.Run("no repository found", func(t *testing.T) {
		withProviders(t, fakeProvider{session: nil})
		assert.Nil(t, Scan(t.TempDir()))
	})

	t.Run("bare repository", func(t *testing.T) {
		withProviders(t, fakeProvider{session: &fakeSession{bare: true}})
		assert.Nil(t, Scan(t.TempDir()))
	})

	t.Run("status enumeration failure", func(t *testing.T) {
		session := &fakeSession{workdir: t.TempDir(), statusErr: errors.New("index corrupt")}
		withProviders(t, fakeProvider{session: session})
		assert.Nil(t, Scan(session.workdir))
	})

	t.Run("no providers at all", func(t *testing.T) {
		withProviders(t)
		assert.Nil(t, Scan(t.TempDir()))
	})
}

func TestScanFallsBackToNextProvider(t *testing.T) {
	workdir := t.TempDir()
	good := &fakeSession{
		workdir: workdir,
		entries: []StatusEntry{{Path: "a.go", Flags: models.WorktreeModified}},
	}
	withProviders(t, fakeProvider{session: nil}, fakeProvider{session: good})

	r := Scan(workdir)
	require.NotNil(t, r)
	assert.Equal(t, workdir, r.Workdir())
	assert.Equal(t, models.Modified, r.Status(filepath.Join(workdir, "a.go")).Unstaged)
}

func TestStatus(t *testing.T) {
	workdir := t.TempDir()
	session := &fakeSession{
		workdir: workdir,
		entries: []StatusEntry{
			{Path: "lib/util.go", Flags: models.WorktreeModified},
			{Path: "new.txt", Flags: models.IndexNew | models.IndexModified},
		},
	}
	r := scanFake(t, session)

	t.Run("unknown path is unmodified", func(t *testing.T) {
		status := r.Status(filepath.Join(workdir, "clean.go"))
		assert.Equal(t, models.PathStatus{}, status)
	})

	t.Run("unstaged modification", func(t *testing.T) {
		status := r.Status(filepath.Join(workdir, "lib", "util.go"))
		assert.Equal(t, models.Unmodified, status.Staged)
		assert.Equal(t, models.Modified, status.Unstaged)
	})

	t.Run("new outranks modified in the index", func(t *testing.T) {
		status := r.Status(filepath.Join(workdir, "new.txt"))
		assert.Equal(t, models.New, status.Staged)
	})

	t.Run("idempotent", func(t *testing.T) {
		path := filepath.Join(workdir, "lib", "util.go")
		assert.Equal(t, r.Status(path), r.Status(path))
	})

	t.Run("caller-built path matches canonical form", func(t *testing.T) {
		// A path assembled independently, with a redundant segment,
		// must normalize to the same snapshot key.
		messy := filepath.Join(workdir, "lib", ".", "util.go")
		assert.Equal(t, models.Modified, r.Status(messy).Unstaged)
	})
}

func TestDirStatus(t *testing.T) {
	workdir := t.TempDir()
	session := &fakeSession{
		workdir: workdir,
		entries: []StatusEntry{
			{Path: "src/added.go", Flags: models.IndexNew},
			{Path: "src/nested/gone.go", Flags: models.WorktreeDeleted},
			{Path: "ab", Flags: models.WorktreeModified},
			{Path: "abc/file", Flags: models.IndexDeleted},
		},
	}
	r := scanFake(t, session)

	t.Run("combines descendants across sides independently", func(t *testing.T) {
		status := r.DirStatus(filepath.Join(workdir, "src"))
		assert.Equal(t, models.PathStatus{Staged: models.New, Unstaged: models.Deleted}, status)
	})

	t.Run("prefix match is component-exact", func(t *testing.T) {
		// /repo/ab must not pick up /repo/abc/file.
		status := r.DirStatus(filepath.Join(workdir, "ab"))
		assert.Equal(t, models.Unmodified, status.Staged)
		assert.Equal(t, models.Modified, status.Unstaged)
	})

	t.Run("no matching descendants", func(t *testing.T) {
		status := r.DirStatus(filepath.Join(workdir, "docs"))
		assert.Equal(t, models.PathStatus{}, status)
	})

	t.Run("workdir root aggregates everything", func(t *testing.T) {
		status := r.DirStatus(workdir)
		assert.Equal(t, models.New, status.Staged)
	})
}

func TestShouldIgnore(t *testing.T) {
	workdir := t.TempDir()
	session := &fakeSession{
		workdir: workdir,
		ignored: map[string]bool{"build/out.bin": true},
	}
	r := scanFake(t, session)

	t.Run("ignored path", func(t *testing.T) {
		assert.True(t, r.ShouldIgnore(filepath.Join(workdir, "build", "out.bin")))
	})

	t.Run("not ignored path", func(t *testing.T) {
		assert.False(t, r.ShouldIgnore(filepath.Join(workdir, "main.go")))
	})

	t.Run("path outside the repository", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(workdir), "elsewhere", "x")
		calls := session.ignoreCall
		assert.False(t, r.ShouldIgnore(outside))
		assert.Equal(t, calls, session.ignoreCall, "session must not be consulted for outside paths")
	})

	t.Run("provider failure reads as not ignored", func(t *testing.T) {
		session.ignoreErr = errors.New("ignore rules unreadable")
		defer func() { session.ignoreErr = nil }()
		assert.False(t, r.ShouldIgnore(filepath.Join(workdir, "build", "out.bin")))
	})
}

func TestUnderDir(t *testing.T) {
	sep := string(filepath.Separator)
	repo := filepath.Join(sep, "repo")
	assert.True(t, underDir(repo, filepath.Join(repo, "a")))
	assert.True(t, underDir(repo, repo))
	assert.True(t, underDir(filepath.Join(repo, "a"), filepath.Join(repo, "a", "b", "c")))
	assert.False(t, underDir(filepath.Join(repo, "ab"), filepath.Join(repo, "abc", "file")))
	assert.False(t, underDir(filepath.Join(repo, "a"), repo))
}
