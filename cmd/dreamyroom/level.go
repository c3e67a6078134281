package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
)

var levelCmd = &cobra.Command{
	Use:   "level <id>",
	Short: "Show a single level",
	Long: `Show the walkthrough details of one level.

Examples:
  dreamyroom level 1
  dreamyroom level 42 --lang zh`,
	Args: cobra.ExactArgs(1),
	Run:  runLevel,
}

func runLevel(_ *cobra.Command, args []string) {
	a := loadApp()
	d := a.dict.LevelDetail

	id, err := catalog.ParseID(args[0])
	if err == nil {
		_, err = a.catalog.Get(id)
	}
	switch {
	case errors.Is(err, catalog.ErrInvalidID):
		fmt.Fprintln(os.Stderr, d.InvalidID.Title)
		fmt.Fprintln(os.Stderr, d.InvalidID.Description)
		os.Exit(1)
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintln(os.Stderr, d.NotFound.Title)
		fmt.Fprintln(os.Stderr, d.NotFound.Description)
		os.Exit(1)
	}

	lvl, _ := a.catalog.Lookup(id)
	prev, next := a.catalog.Neighbors(id)
	vars := map[string]string{"level": strconv.Itoa(id)}

	_, _ = fmt.Fprintln(color.Output, title(i18n.Expand(d.Title, vars)))
	fmt.Println(i18n.Expand(d.Description, vars))
	fmt.Println()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(d.LevelNumber+":", lvl.ID)
	tbl.AddRow(a.dict.Showcase.Card.TitlePrefix+strconv.Itoa(lvl.ID)+":", lvl.Title)
	tbl.AddRow(d.Video+":", lvl.VideoURL)
	tbl.AddRow(d.Thumbnail+":", lvl.Thumbnail())
	if prev != nil {
		tbl.AddRow(d.Previous+":", prev.ID)
	}
	if next != nil {
		tbl.AddRow(d.Next+":", next.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
