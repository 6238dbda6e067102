// Package render turns listing entries into terminal output: git markers,
// icons, and a grid or long layout.
package render

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chmouel/lazyls/internal/models"
	"github.com/chmouel/lazyls/internal/theme"
)

// Options configures a Renderer.
type Options struct {
	Theme     *theme.Theme
	ShowIcons bool
	Long      bool
	Width     int // terminal width; <= 0 means single column
}

// Renderer renders entries with a fixed theme and layout.
type Renderer struct {
	opts   Options
	styles map[models.ChangeKind]lipgloss.Style
	dir    lipgloss.Style
	exec   lipgloss.Style
	link   lipgloss.Style
	text   lipgloss.Style
	muted  lipgloss.Style
}

// New creates a Renderer. A nil theme falls back to the default.
func New(opts Options) *Renderer {
	if opts.Theme == nil {
		opts.Theme = theme.Default()
	}
	th := opts.Theme
	return &Renderer{
		opts: opts,
		styles: map[models.ChangeKind]lipgloss.Style{
			models.New:         lipgloss.NewStyle().Foreground(th.NewFg),
			models.Modified:    lipgloss.NewStyle().Foreground(th.ModifiedFg),
			models.Deleted:     lipgloss.NewStyle().Foreground(th.DeletedFg),
			models.Renamed:     lipgloss.NewStyle().Foreground(th.RenamedFg),
			models.TypeChanged: lipgloss.NewStyle().Foreground(th.TypeChangeFg),
		},
		dir:   lipgloss.NewStyle().Foreground(th.DirFg).Bold(true),
		exec:  lipgloss.NewStyle().Foreground(th.ExecFg),
		link:  lipgloss.NewStyle().Foreground(th.SymlinkFg),
		text:  lipgloss.NewStyle().Foreground(th.TextFg),
		muted: lipgloss.NewStyle().Foreground(th.MutedFg),
	}
}

// MarkerText returns the two-character git marker, staged side first,
// without any styling.
func MarkerText(status models.PathStatus) string {
	return status.Staged.Marker() + status.Unstaged.Marker()
}

// Markers returns the colored two-character git marker for an entry.
func (r *Renderer) Markers(status models.PathStatus) string {
	return r.markerChar(status.Staged) + r.markerChar(status.Unstaged)
}

func (r *Renderer) markerChar(kind models.ChangeKind) string {
	if kind == models.Unmodified {
		return r.muted.Render(kind.Marker())
	}
	return r.styles[kind].Render(kind.Marker())
}

func (r *Renderer) nameStyle(e models.Entry) lipgloss.Style {
	switch {
	case e.IsDir:
		return r.dir
	case e.Mode&fs.ModeSymlink != 0:
		return r.link
	case e.Mode&0o111 != 0:
		return r.exec
	default:
		return r.text
	}
}

// cell renders marker, optional icon, and name for one entry.
func (r *Renderer) cell(e models.Entry, maxName int) string {
	name := e.Name
	if maxName > 0 {
		name = truncate.StringWithTail(name, uint(maxName), "…") //nolint:gosec
	}
	var b strings.Builder
	b.WriteString(r.Markers(e.Git))
	b.WriteString(" ")
	if r.opts.ShowIcons {
		b.WriteString(iconWithSpace(iconForEntry(e)))
	}
	b.WriteString(r.nameStyle(e).Render(name))
	return b.String()
}

// Render lays out all entries: one long line per entry with -l, otherwise
// a grid packed to the terminal width.
func (r *Renderer) Render(entries []models.Entry) string {
	if r.opts.Long {
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, r.longLine(e))
		}
		return strings.Join(lines, "\n")
	}
	return r.grid(entries)
}

func (r *Renderer) longLine(e models.Entry) string {
	size := humanSize(e.Size)
	if e.IsDir {
		size = "-"
	}
	return fmt.Sprintf("%s %s %6s %s %s",
		r.Markers(e.Git),
		e.Mode.String(),
		size,
		r.muted.Render(e.ModTime.Format(timeFormat)),
		r.cellName(e),
	)
}

func (r *Renderer) cellName(e models.Entry) string {
	var b strings.Builder
	if r.opts.ShowIcons {
		b.WriteString(iconWithSpace(iconForEntry(e)))
	}
	b.WriteString(r.nameStyle(e).Render(e.Name))
	return b.String()
}

func (r *Renderer) grid(entries []models.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	// Plain cell width: marker(2) + space + optional icon(2) + name.
	iconWidth := 0
	if r.opts.ShowIcons {
		iconWidth = 2
	}
	widest := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Name); w > widest {
			widest = w
		}
	}
	cellWidth := 3 + iconWidth + widest + 2 // two spaces of gutter

	cols := 1
	maxName := 0
	if r.opts.Width > 0 && cellWidth > 0 {
		cols = r.opts.Width / cellWidth
		if cols < 1 {
			// Narrower than one full cell: fall back to a single
			// column and truncate names to fit.
			cols = 1
			maxName = r.opts.Width - 3 - iconWidth
		}
	}

	var b strings.Builder
	for i, e := range entries {
		cell := r.cell(e, maxName)
		b.WriteString(cell)
		if (i+1)%cols == 0 || i == len(entries)-1 {
			b.WriteString("\n")
			continue
		}
		if pad := cellWidth - lipgloss.Width(cell); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

const timeFormat = "Jan _2 15:04"

func humanSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(size)/float64(div), "KMGTPE"[exp])
}
