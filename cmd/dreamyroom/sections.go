package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List guide sections",
	Long:  `Shows the sections of the interactive guide in navigation order.`,
	Run:   runSections,
}

func runSections(_ *cobra.Command, _ []string) {
	a := loadApp()

	_, _ = fmt.Fprintln(color.Output, title(a.dict.Header.Brand))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME")
	for _, s := range registry.List() {
		tbl.AddRow(s.ID, a.dict.SectionName(s.ID))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println()
	fmt.Println("Run 'dreamyroom browse <id>' to open a section.")
}

// title styles a heading printed above a table.
func title(s string) string {
	return color.New(color.Bold, color.Underline).Sprint(s)
}
