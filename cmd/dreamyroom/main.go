// dreamyroom is a terminal guide to the Dreamy Room level walkthroughs.
//
// Usage:
//
//	dreamyroom browse [section]   - Browse the guide interactively
//	dreamyroom sections           - List guide sections
//	dreamyroom levels             - List levels (--range, --search, --all)
//	dreamyroom level <id>         - Show one level
//	dreamyroom ranges             - Show range tabs and unreachable levels
//	dreamyroom faq                - Print the FAQ
//	dreamyroom export <file>      - Write the dataset to SQLite or YAML
//	dreamyroom serve              - Start SSH server for remote browsing
//
// Global flags:
//
//	--lang <code>    - Locale (default: from LANG, then config)
//	--data <path>    - Dataset file, directory or SQLite catalog
//	--config <path>  - Config file
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
	"github.com/vovakirdan/dreamyroom-guide/internal/config"
	"github.com/vovakirdan/dreamyroom-guide/internal/content"
	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
	"github.com/vovakirdan/dreamyroom-guide/internal/levels"
	"github.com/vovakirdan/dreamyroom-guide/internal/platform/tui"
	"github.com/vovakirdan/dreamyroom-guide/internal/registry"
)

var (
	// Global flags
	flagLang   string
	flagData   string
	flagConfig string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "dreamyroom",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dreamyroom",
	Short: "Dreamy Room level guide in your terminal",
	Long: `Browse walkthroughs for every Dreamy Room level from the terminal,
or serve the guide over SSH.

Available commands:
  browse    - Interactive guide (home, levels, download, blog, faq, about)
  sections  - List guide sections
  levels    - List levels with range and search filters
  level     - Show a single level
  ranges    - Show range tabs and levels no tab reaches
  faq       - Print the FAQ
  export    - Write the dataset to SQLite or YAML
  serve     - Start SSH server

Examples:
  dreamyroom browse
  dreamyroom browse levels --lang zh
  dreamyroom levels --range 11-20 --search 5
  dreamyroom level 42
  dreamyroom serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		if os.Getenv("NO_COLOR") != "" {
			tui.SetTheme(tui.PlainTheme())
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Locale code (en, zh); default from LANG, then config")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "Dataset: YAML file, directory or SQLite catalog (default: bundled)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(faqCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

// app is everything a command needs, loaded once per invocation.
type app struct {
	cfg     config.Config
	levels  []catalog.Level
	catalog *catalog.Catalog
	dict    *i18n.Dictionary
	blog    *content.Blog
}

// loadApp resolves config, dataset and dictionary from flags.
// Failures are fatal.
func loadApp() *app {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	dataPath := cfg.Data.Levels
	if flagData != "" {
		dataPath = flagData
	}
	lv, err := levels.NewLoader(dataPath).Load()
	if err != nil {
		logger.Fatal("cannot load levels", "error", err)
	}
	logger.Debug("dataset loaded", "levels", len(lv), "source", dataPath)

	if gap := catalog.Uncovered(lv, cfg.Catalog.Ranges); len(gap) > 0 {
		logger.Warn("levels not reachable from any range tab", "ids", gap)
	}

	lang := i18n.Negotiate(flagLang, os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"), cfg.Locale.Default)
	dict, err := i18n.Load(lang, len(lv))
	if err != nil {
		logger.Fatal("cannot load dictionary", "lang", lang, "error", err)
	}

	blog, err := content.Load()
	if err != nil {
		logger.Fatal("cannot load articles", "error", err)
	}

	return &app{
		cfg:     cfg,
		levels:  lv,
		catalog: catalog.New(lv),
		dict:    dict,
		blog:    blog,
	}
}

// env builds the section environment for a terminal of the given size.
func (a *app) env(width, height int) registry.Env {
	return registry.Env{
		Dict:    a.dict,
		Catalog: a.catalog,
		Blog:    a.blog,
		Config:  a.cfg,
		Width:   width,
		Height:  height,
	}
}

// showcase returns a filter configured like the interactive levels page.
func (a *app) showcase() catalog.Showcase {
	return catalog.NewShowcase(a.catalog, a.dict.Showcase.Text(),
		catalog.WithRanges(a.cfg.Catalog.Ranges),
		catalog.WithFeaturedCount(a.cfg.Catalog.FeaturedCount),
	)
}
