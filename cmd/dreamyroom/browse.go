package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dreamyroom-guide/internal/platform/tui"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

var browseCmd = &cobra.Command{
	Use:   "browse [section]",
	Short: "Browse the guide interactively",
	Long: `Open the interactive guide, optionally on a given section.

Controls:
  Left/Right   - Switch section
  /            - Search levels (or jump to a level on home)
  Tab/S-Tab    - Switch range tab
  Up/Down      - Move
  Enter        - Open
  m            - Show more featured levels
  p/n          - Previous/next level or blog page
  Esc          - Back
  Q            - Quit

Examples:
  dreamyroom browse
  dreamyroom browse levels
  dreamyroom browse faq --lang zh`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBrowse,
}

func runBrowse(_ *cobra.Command, args []string) {
	start := ""
	if len(args) == 1 {
		start = args[0]
		if !registry.Exists(start) {
			ids := make([]string, 0)
			for _, s := range registry.List() {
				ids = append(ids, s.ID)
			}
			logger.Fatal("unknown section", "section", start, "available", strings.Join(ids, ", "))
		}
	}

	a := loadApp()

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.Run(a.env(width, height), start); err != nil {
		logger.Fatal("guide exited", "error", err)
	}
}
