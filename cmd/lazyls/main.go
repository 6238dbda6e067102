// Package main is the entry point for the lazyls application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/chmouel/lazyls/internal/config"
	"github.com/chmouel/lazyls/internal/git"
	"github.com/chmouel/lazyls/internal/listing"
	"github.com/chmouel/lazyls/internal/log"
	"github.com/chmouel/lazyls/internal/render"
	"github.com/chmouel/lazyls/internal/theme"
	"github.com/chmouel/lazyls/internal/watch"
)

var version = "dev"

// allCount receives the number of --all occurrences from flag parsing.
var allCount int

func main() {
	cliApp := &urfavecli.App{
		Name:                 "lazyls",
		Usage:                "A directory listing with git status markers",
		ArgsUsage:            "[directory]",
		Version:              version,
		EnableBashCompletion: true,

		Flags: globalFlags(),

		Action: runListing,

		BashComplete: completeGlobalFlags,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runListing(c *urfavecli.Context) error {
	// Set up debug logging before loading config
	if debugLog := c.String("debug-log"); debugLog != "" {
		expanded, err := config.ExpandPath(debugLog)
		if err != nil {
			expanded = debugLog
		}
		if err := log.SetFile(expanded); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", expanded, err)
		}
	}

	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// If debug log wasn't set via flag, check if it's in the config
	if c.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			path := cfg.DebugLog
			if expanded, err := config.ExpandPath(path); err == nil {
				path = expanded
			}
			if err := log.SetFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", path, err)
			}
		} else {
			// No debug log configured, discard any buffered logs
			_ = log.SetFile("")
		}
	}
	defer func() { _ = log.Close() }()

	th, err := resolveTheme(cfg, c.String("theme"))
	if err != nil {
		return err
	}

	flt, err := buildFilter(c, cfg)
	if err != nil {
		return err
	}

	dir := c.Args().First()
	if dir == "" {
		dir = "."
	}

	opts := render.Options{
		Theme:     th,
		ShowIcons: cfg.ShowIcons && !c.Bool("no-icons"),
		Long:      c.Bool("long") || cfg.Long,
		Width:     terminalWidth(),
	}

	if c.Bool("watch") {
		return runWatch(dir, flt, opts)
	}

	var resolver listing.GitResolver
	if r := git.Scan(dir); r != nil {
		resolver = r
	}
	entries, err := listing.List(dir, flt, resolver)
	if err != nil {
		return err
	}
	if out := render.New(opts).Render(entries); out != "" {
		fmt.Println(out)
	}
	return nil
}

// runWatch keeps the listing on screen and refreshes it whenever the
// directory changes.
func runWatch(dir string, flt listing.FileFilter, opts render.Options) error {
	w := watch.New(log.Printf)
	if err := w.Start(dir); err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}

	refresh := func(width int) (string, error) {
		o := opts
		o.Width = width
		var resolver listing.GitResolver
		if r := git.Scan(dir); r != nil {
			resolver = r
		}
		entries, err := listing.List(dir, flt, resolver)
		if err != nil {
			return "", err
		}
		return render.New(o).Render(entries), nil
	}

	model := watch.NewModel(dir, refresh, w)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	w.Stop()
	return err
}

// buildFilter merges flags over config into the listing options.
func buildFilter(c *urfavecli.Context, cfg *config.AppConfig) (listing.FileFilter, error) {
	sortWord := c.String("sort")
	if sortWord == "" {
		sortWord = cfg.Sort
	}
	field, err := listing.ParseSortField(sortWord)
	if err != nil {
		return listing.FileFilter{}, err
	}

	globs := c.String("ignore-glob")
	if globs == "" {
		globs = cfg.IgnoreGlobs
	}
	patterns, err := listing.ParseIgnorePatterns(globs)
	if err != nil {
		return listing.FileFilter{}, err
	}

	return listing.FileFilter{
		ListDirsFirst:  c.Bool("dirs-first") || cfg.DirsFirst,
		Reverse:        c.Bool("reverse") || cfg.Reverse,
		SortField:      field,
		DotFilter:      listing.DotFilterFromCount(allCount),
		IgnorePatterns: patterns,
		GitIgnore:      c.Bool("git-ignore") || cfg.GitIgnore,
	}, nil
}

// resolveTheme picks the theme from the flag, then the config, then the
// built-in default.
func resolveTheme(cfg *config.AppConfig, flagName string) (*theme.Theme, error) {
	name := flagName
	if name == "" {
		name = cfg.Theme
	}
	if name == "" {
		return theme.Default(), nil
	}
	normalized := config.NormalizeThemeName(name)
	if normalized == "" {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return theme.ByName(normalized), nil
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
