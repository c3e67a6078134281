package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dreamyroom-guide/internal/platform/tui"
)

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "Print the FAQ",
	Long: `Print the frequently asked questions, rendered for the terminal.

Examples:
  dreamyroom faq
  dreamyroom faq --lang zh`,
	Run: runFAQ,
}

func runFAQ(_ *cobra.Command, _ []string) {
	a := loadApp()

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		logger.Fatal("cannot create renderer", "error", err)
	}

	out, err := r.Render(tui.FAQMarkdown(a.dict))
	if err != nil {
		logger.Fatal("cannot render FAQ", "error", err)
	}
	fmt.Print(out)
}
