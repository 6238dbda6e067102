// Package main provides CLI flag definitions for lazyls.
package main

import (
	"fmt"
	"strings"

	urfavecli "github.com/urfave/cli/v2"

	"github.com/chmouel/lazyls/internal/listing"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Count:   &allCount,
			Usage:   "Show dotfiles; repeat to also show . and ..",
		},
		&urfavecli.BoolFlag{
			Name:    "long",
			Aliases: []string{"l"},
			Usage:   "Use the long listing layout",
		},
		&urfavecli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   fmt.Sprintf("Sort field (%s)", strings.Join(listing.SortWords(), ", ")),
		},
		&urfavecli.BoolFlag{
			Name:    "reverse",
			Aliases: []string{"r"},
			Usage:   "Reverse the sort order",
		},
		&urfavecli.BoolFlag{
			Name:  "dirs-first",
			Usage: "List directories before files",
		},
		&urfavecli.StringFlag{
			Name:    "ignore-glob",
			Aliases: []string{"I"},
			Usage:   "Hide entries matching these pipe-separated globs",
		},
		&urfavecli.BoolFlag{
			Name:  "git-ignore",
			Usage: "Hide entries matched by the repository's ignore rules",
		},
		&urfavecli.BoolFlag{
			Name:  "no-icons",
			Usage: "Disable file type icons",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the color theme",
		},
		&urfavecli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "Keep the listing on screen and refresh it on changes",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
	}
}

// completeGlobalFlags provides basic completion for global flags.
func completeGlobalFlags(c *urfavecli.Context) {
	if c.NArg() == 0 {
		for _, flag := range c.App.Flags {
			fmt.Println("--" + flag.Names()[0])
		}
	}
}
