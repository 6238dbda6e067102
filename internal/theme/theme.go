// Package theme provides color palettes for the listing output.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used by the renderer.
type Theme struct {
	DirFg     lipgloss.Color
	SymlinkFg lipgloss.Color
	ExecFg    lipgloss.Color
	TextFg    lipgloss.Color
	MutedFg   lipgloss.Color

	// Git marker colors per change kind.
	NewFg        lipgloss.Color
	ModifiedFg   lipgloss.Color
	DeletedFg    lipgloss.Color
	RenamedFg    lipgloss.Color
	TypeChangeFg lipgloss.Color
}

// Theme names.
const (
	DraculaName     = "dracula"
	GruvboxDarkName = "gruvbox-dark"
	CleanLightName  = "clean-light"
	NordName        = "nord"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		DirFg:        lipgloss.Color("#BD93F9"), // Purple
		SymlinkFg:    lipgloss.Color("#8BE9FD"), // Cyan
		ExecFg:       lipgloss.Color("#50FA7B"), // Green
		TextFg:       lipgloss.Color("#F8F8F2"), // Foreground
		MutedFg:      lipgloss.Color("#6272A4"), // Comment
		NewFg:        lipgloss.Color("#50FA7B"), // Green
		ModifiedFg:   lipgloss.Color("#F1FA8C"), // Yellow
		DeletedFg:    lipgloss.Color("#FF5555"), // Red
		RenamedFg:    lipgloss.Color("#8BE9FD"), // Cyan
		TypeChangeFg: lipgloss.Color("#FFB86C"), // Orange
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		DirFg:        lipgloss.Color("#83A598"),
		SymlinkFg:    lipgloss.Color("#8EC07C"),
		ExecFg:       lipgloss.Color("#B8BB26"),
		TextFg:       lipgloss.Color("#EBDBB2"),
		MutedFg:      lipgloss.Color("#928374"),
		NewFg:        lipgloss.Color("#B8BB26"),
		ModifiedFg:   lipgloss.Color("#FABD2F"),
		DeletedFg:    lipgloss.Color("#FB4934"),
		RenamedFg:    lipgloss.Color("#8EC07C"),
		TypeChangeFg: lipgloss.Color("#FE8019"),
	}
}

// CleanLight returns a light-background theme with muted colors.
func CleanLight() *Theme {
	return &Theme{
		DirFg:        lipgloss.Color("#0550AE"),
		SymlinkFg:    lipgloss.Color("#0891B2"),
		ExecFg:       lipgloss.Color("#059669"),
		TextFg:       lipgloss.Color("#24292F"),
		MutedFg:      lipgloss.Color("#6E7781"),
		NewFg:        lipgloss.Color("#059669"),
		ModifiedFg:   lipgloss.Color("#CA8A04"),
		DeletedFg:    lipgloss.Color("#DC2626"),
		RenamedFg:    lipgloss.Color("#0891B2"),
		TypeChangeFg: lipgloss.Color("#D97706"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		DirFg:        lipgloss.Color("#81A1C1"),
		SymlinkFg:    lipgloss.Color("#88C0D0"),
		ExecFg:       lipgloss.Color("#A3BE8C"),
		TextFg:       lipgloss.Color("#ECEFF4"),
		MutedFg:      lipgloss.Color("#4C566A"),
		NewFg:        lipgloss.Color("#A3BE8C"),
		ModifiedFg:   lipgloss.Color("#EBCB8B"),
		DeletedFg:    lipgloss.Color("#BF616A"),
		RenamedFg:    lipgloss.Color("#88C0D0"),
		TypeChangeFg: lipgloss.Color("#D08770"),
	}
}

var themes = map[string]func() *Theme{
	DraculaName:     Dracula,
	GruvboxDarkName: GruvboxDark,
	CleanLightName:  CleanLight,
	NordName:        Nord,
}

// AvailableThemes lists the known theme names.
func AvailableThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// ByName returns the theme for name, or nil when unknown.
func ByName(name string) *Theme {
	if builder, ok := themes[name]; ok {
		return builder()
	}
	return nil
}

// Default returns the default theme.
func Default() *Theme { return Dracula() }
