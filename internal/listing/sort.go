package listing

import (
	"sort"
	"strings"

	"github.com/chmouel/lazyls/internal/models"
)

// Sort orders entries in place according to the filter's sort field,
// dirs-first grouping, and reverse flag.
func Sort(entries []models.Entry, filter FileFilter) {
	if filter.SortField != SortNone {
		less := comparator(filter.SortField)
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i], entries[j])
		})
	}
	if filter.Reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	if filter.ListDirsFirst {
		// Applied after reversal so directories stay on top either way.
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].IsDir && !entries[j].IsDir
		})
	}
}

func comparator(field SortField) func(a, b models.Entry) bool {
	switch field {
	case SortNameCI:
		return func(a, b models.Entry) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortSize:
		return func(a, b models.Entry) bool {
			if a.Size != b.Size {
				return a.Size < b.Size
			}
			return a.Name < b.Name
		}
	case SortExt:
		return func(a, b models.Entry) bool {
			if a.Ext() != b.Ext() {
				return a.Ext() < b.Ext()
			}
			return a.Name < b.Name
		}
	case SortExtCI:
		return func(a, b models.Entry) bool {
			ae, be := strings.ToLower(a.Ext()), strings.ToLower(b.Ext())
			if ae != be {
				return ae < be
			}
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortModified:
		return func(a, b models.Entry) bool {
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.Before(b.ModTime)
			}
			return a.Name < b.Name
		}
	case SortType:
		return func(a, b models.Entry) bool {
			at, bt := typeRank(a), typeRank(b)
			if at != bt {
				return at < bt
			}
			return a.Name < b.Name
		}
	default:
		return func(a, b models.Entry) bool { return a.Name < b.Name }
	}
}

func typeRank(e models.Entry) int {
	switch {
	case e.IsDir:
		return 0
	case e.Mode&0o111 != 0:
		return 2
	default:
		return 1
	}
}
