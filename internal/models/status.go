// Package models defines the data objects shared across lazyls packages.
package models

// ChangeKind is the reduced, single-condition git status used for display.
type ChangeKind int

// Change kinds, ordered by display priority (New is the most salient).
const (
	Unmodified ChangeKind = iota
	New
	Modified
	Deleted
	Renamed
	TypeChanged
)

// Marker returns the single-character display marker for the kind.
func (k ChangeKind) Marker() string {
	switch k {
	case New:
		return "N"
	case Modified:
		return "M"
	case Deleted:
		return "D"
	case Renamed:
		return "R"
	case TypeChanged:
		return "T"
	default:
		return "-"
	}
}

func (k ChangeKind) String() string {
	switch k {
	case New:
		return "new"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	case TypeChanged:
		return "typechange"
	default:
		return "unmodified"
	}
}

// PathStatus describes one filesystem entry: the staged (index) side and the
// unstaged (working tree) side. The zero value means unmodified on both sides.
type PathStatus struct {
	Staged   ChangeKind
	Unstaged ChangeKind
}

// StatusFlags is the raw per-path status encoding reported by a repository
// provider. A path can carry several conditions at once (for example new in
// the index and then modified in the tree), so flags combine with bitwise OR
// and are only reduced to a single ChangeKind per side for display.
type StatusFlags uint16

// Raw status conditions. The Index* bits describe the staged side, the
// Worktree* bits the unstaged side.
const (
	IndexNew StatusFlags = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	IndexTypeChanged
	WorktreeNew
	WorktreeModified
	WorktreeDeleted
	WorktreeRenamed
	WorktreeTypeChanged
)

// Has reports whether all bits in cond are set.
func (f StatusFlags) Has(cond StatusFlags) bool { return f&cond == cond }

type flagKind struct {
	flag StatusFlags
	kind ChangeKind
}

// The reduction tables are a behavioral contract: they are evaluated in
// order and the first matching flag wins, so a path that is both new and
// modified on one side shows as New. The Renamed-before-TypeChanged order is
// arbitrary but must not be reordered, since callers rely on stable markers.
var (
	indexReduction = []flagKind{
		{IndexNew, New},
		{IndexModified, Modified},
		{IndexDeleted, Deleted},
		{IndexRenamed, Renamed},
		{IndexTypeChanged, TypeChanged},
	}
	worktreeReduction = []flagKind{
		{WorktreeNew, New},
		{WorktreeModified, Modified},
		{WorktreeDeleted, Deleted},
		{WorktreeRenamed, Renamed},
		{WorktreeTypeChanged, TypeChanged},
	}
)

func reduce(f StatusFlags, table []flagKind) ChangeKind {
	for _, fk := range table {
		if f.Has(fk.flag) {
			return fk.kind
		}
	}
	return Unmodified
}

// IndexKind reduces the staged side of the flag set to one ChangeKind.
func (f StatusFlags) IndexKind() ChangeKind { return reduce(f, indexReduction) }

// WorktreeKind reduces the unstaged side of the flag set to one ChangeKind.
func (f StatusFlags) WorktreeKind() ChangeKind { return reduce(f, worktreeReduction) }

// Status reduces both sides at once.
func (f StatusFlags) Status() PathStatus {
	return PathStatus{Staged: f.IndexKind(), Unstaged: f.WorktreeKind()}
}
