package git

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazyls/internal/models"
)

func TestParsePorcelain(t *testing.T) {
	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, parsePorcelain(""))
	})

	t.Run("mixed records", func(t *testing.T) {
		out := " M lib/util.go\x00?? new.txt\x00A  staged.txt\x00D  gone.txt\x00"
		entries := parsePorcelain(out)
		require.Len(t, entries, 4)
		assert.Equal(t, StatusEntry{Path: "lib/util.go", Flags: models.WorktreeModified}, entries[0])
		assert.Equal(t, StatusEntry{Path: "new.txt", Flags: models.WorktreeNew}, entries[1])
		assert.Equal(t, StatusEntry{Path: "staged.txt", Flags: models.IndexNew}, entries[2])
		assert.Equal(t, StatusEntry{Path: "gone.txt", Flags: models.IndexDeleted}, entries[3])
	})

	t.Run("rename consumes the original path field", func(t *testing.T) {
		out := "R  new/name.go\x00old/name.go\x00 M other.go\x00"
		entries := parsePorcelain(out)
		require.Len(t, entries, 2)
		assert.Equal(t, StatusEntry{Path: "new/name.go", Flags: models.IndexRenamed}, entries[0])
		assert.Equal(t, StatusEntry{Path: "other.go", Flags: models.WorktreeModified}, entries[1])
	})

	t.Run("typechange on both sides", func(t *testing.T) {
		out := "TT weird\x00"
		entries := parsePorcelain(out)
		require.Len(t, entries, 1)
		assert.Equal(t, models.IndexTypeChanged|models.WorktreeTypeChanged, entries[0].Flags)
	})

	t.Run("ignored records are dropped", func(t *testing.T) {
		assert.Empty(t, parsePorcelain("!! vendor/\x00"))
	})

	t.Run("malformed records are skipped", func(t *testing.T) {
		assert.Empty(t, parsePorcelain("garbage\x00\x00M\x00"))
	})
}

func TestPorcelainFlags(t *testing.T) {
	assert.Equal(t, models.WorktreeNew, porcelainFlags('?', '?'))
	assert.Equal(t, models.IndexNew|models.WorktreeModified, porcelainFlags('A', 'M'))
	assert.Equal(t, models.IndexRenamed, porcelainFlags('R', ' '))
	assert.Equal(t, models.IndexRenamed, porcelainFlags('C', ' '))
	assert.Equal(t, models.IndexModified|models.WorktreeModified, porcelainFlags('U', 'U'))
	assert.Equal(t, models.StatusFlags(0), porcelainFlags(' ', ' '))
}

func TestExecProviderMissingBinary(t *testing.T) {
	orig := LookupPath
	LookupPath = func(string) (string, error) { return "", errors.New("not found") }
	defer func() { LookupPath = orig }()

	_, ok := execProvider{}.Discover(t.TempDir())
	assert.False(t, ok)
}

func TestExecProviderAgainstRealRepo(t *testing.T) {
	dir := initTestRepo(t)
	writeFile(t, dir, "tracked.txt", "changed\n")
	writeFile(t, dir, ".gitignore", "*.tmp\n")
	writeFile(t, dir, "scratch.tmp", "x\n")

	session, ok := execProvider{}.Discover(dir)
	require.True(t, ok)

	workdir, ok := session.Workdir()
	require.True(t, ok)
	assert.True(t, filepath.IsAbs(workdir))

	entries, err := session.Statuses()
	require.NoError(t, err)
	byPath := make(map[string]models.StatusFlags, len(entries))
	for _, e := range entries {
		byPath[e.Path] = e.Flags
	}
	assert.Equal(t, models.WorktreeModified, byPath["tracked.txt"])
	// Ignored files carry no status entry; only the live query sees them.
	assert.NotContains(t, byPath, "scratch.tmp")

	ignored, err := session.IsIgnored("scratch.tmp", false)
	require.NoError(t, err)
	assert.True(t, ignored)

	ignored, err = session.IsIgnored("tracked.txt", false)
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestScanEndToEnd(t *testing.T) {
	dir := initTestRepo(t)
	writeFile(t, dir, "sub/inner.txt", "x\n")

	r := Scan(dir)
	require.NotNil(t, r)

	status := r.Status(filepath.Join(r.Workdir(), "sub", "inner.txt"))
	assert.Equal(t, models.New, status.Unstaged)

	dirStatus := r.DirStatus(filepath.Join(r.Workdir(), "sub"))
	assert.Equal(t, models.New, dirStatus.Unstaged)
	assert.Equal(t, models.Unmodified, dirStatus.Staged)
}
