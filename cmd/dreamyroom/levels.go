package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
)

var (
	flagRange  string
	flagSearch string
	flagAll    bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels",
	Long: `List levels the way the guide's levels page shows them.

Without flags the featured tab is shown, capped at the configured
featured count. --range selects a range tab by its bounds, --search
filters by level number or title, --all lifts the featured cap.

Examples:
  dreamyroom levels
  dreamyroom levels --all
  dreamyroom levels --range 11-20
  dreamyroom levels --range 11-20 --search 5
  dreamyroom levels --search kitchen`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagRange, "range", "", "Range tab as start-end, e.g. 11-20")
	levelsCmd.Flags().StringVar(&flagSearch, "search", "", "Search text (level number or title)")
	levelsCmd.Flags().BoolVar(&flagAll, "all", false, "Show every featured level")
}

func runLevels(_ *cobra.Command, _ []string) {
	a := loadApp()
	sc := a.showcase()
	text := a.dict.Showcase.Text()

	if flagRange != "" {
		r, err := parseRange(flagRange)
		if err != nil {
			logger.Fatal("invalid --range", "value", flagRange, "error", err)
		}
		sc.SelectRange(r.Label(text.RangePrefix, text.RangeSuffix))
	}
	sc.SetQuery(flagSearch)
	if flagAll {
		sc.ExpandFeatured()
	}

	_, _ = fmt.Fprintln(color.Output, title(sc.Selected()))

	if msg := sc.EmptyMessage(); msg != "" {
		fmt.Println(msg)
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow("ID", "TITLE", "VIDEO")
	shown := sc.Shown()
	for _, lvl := range shown {
		tbl.AddRow(lvl.ID, lvl.Title, lvl.VideoURL)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if sc.ShowMore() {
		fmt.Println()
		fmt.Printf("%d more. Run with --all to show every level.\n", len(sc.Visible())-len(shown))
	}
}

// parseRange parses "start-end".
func parseRange(s string) (catalog.Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return catalog.Range{}, errors.New("expected start-end")
	}
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return catalog.Range{}, fmt.Errorf("start: %w", err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return catalog.Range{}, fmt.Errorf("end: %w", err)
	}
	return catalog.Range{Start: start, End: end}, nil
}
