package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
)

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Show range tabs and unreachable levels",
	Long: `List the configured range tabs with their level counts, followed by
any levels that no range tab contains. Those levels can still be found
through search or the featured tab.`,
	Run: runRanges,
}

func runRanges(_ *cobra.Command, _ []string) {
	a := loadApp()
	text := a.dict.Showcase.Text()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("TAB", "START", "END", "LEVELS")
	tbl.AddRow(text.Featured, "", "", len(a.levels))
	for _, r := range a.cfg.Catalog.Ranges {
		tbl.AddRow(r.Label(text.RangePrefix, text.RangeSuffix), r.Start, r.End, len(catalog.FilterRange(a.levels, r)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	gap := catalog.Uncovered(a.levels, a.cfg.Catalog.Ranges)
	fmt.Println()
	if len(gap) == 0 {
		fmt.Println("Every level is reachable from a range tab.")
		return
	}
	_, _ = fmt.Fprintln(color.Output, color.YellowString("Not in any range tab: %v", gap))
}
