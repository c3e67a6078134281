// Package i18n provides the localized dictionaries shown by the guide.
// Dictionaries are YAML files compiled into the binary, one per locale.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Dictionary is the full set of user-facing strings for one locale.
type Dictionary struct {
	Lang        string            `yaml:"-"`
	Header      Header            `yaml:"header"`
	Hero        Hero              `yaml:"hero"`
	Showcase    Showcase          `yaml:"showcase"`
	Level       LevelList         `yaml:"level"`
	LevelDetail LevelDetail       `yaml:"level_detail"`
	FAQ         FAQ               `yaml:"faq"`
	AppDownload AppDownload       `yaml:"app_download"`
	Blog        Blog              `yaml:"blog"`
	CompanyInfo CompanyInfo       `yaml:"company_info"`
	Footer      Footer            `yaml:"footer"`
	UI          map[string]string `yaml:"ui"`
}

// Header is the site brand and navigation.
type Header struct {
	Brand    string    `yaml:"brand"`
	NavItems []NavItem `yaml:"nav_items"`
}

// NavItem maps a section ID to its label.
type NavItem struct {
	Section string `yaml:"section"`
	Name    string `yaml:"name"`
}

// Hero is the landing section with the jump-to-level search.
type Hero struct {
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Stats       struct {
		Guides         string `yaml:"guides"`
		VideoTutorials string `yaml:"video_tutorials"`
		QuickSearch    string `yaml:"quick_search"`
	} `yaml:"stats"`
	Search struct {
		Placeholder string `yaml:"placeholder"`
		Button      string `yaml:"button"`
		Error       struct {
			Invalid  string `yaml:"invalid"`
			NotFound string `yaml:"not_found"`
		} `yaml:"error"`
	} `yaml:"search"`
	Buttons struct {
		BrowseAll    string `yaml:"browse_all"`
		DownloadGame string `yaml:"download_game"`
	} `yaml:"buttons"`
}

// Showcase holds the level showcase strings.
type Showcase struct {
	Title string `yaml:"title"`
	Nav   struct {
		Featured    string `yaml:"featured"`
		RangePrefix string `yaml:"range_prefix"`
		RangeSuffix string `yaml:"range_suffix"`
	} `yaml:"nav"`
	Card struct {
		TitlePrefix string `yaml:"title_prefix"`
	} `yaml:"card"`
	ShowMoreButton       string `yaml:"show_more_button"`
	NoLevelsFound        string `yaml:"no_levels_found"`
	SearchPlaceholder    string `yaml:"search_placeholder"`
	SearchNoResultsFound string `yaml:"search_no_results_found"`
}

// Text converts the showcase strings into the filter's label set.
func (s Showcase) Text() catalog.Text {
	return catalog.Text{
		Featured:    s.Nav.Featured,
		RangePrefix: s.Nav.RangePrefix,
		RangeSuffix: s.Nav.RangeSuffix,
		NoLevels:    s.NoLevelsFound,
		NoResults:   s.SearchNoResultsFound,
	}
}

// LevelList is the level index page copy.
type LevelList struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	LevelNumber string `yaml:"level_number"`
}

// LevelDetail is the per-level page copy.
type LevelDetail struct {
	Breadcrumb struct {
		LevelList string `yaml:"level_list"`
	} `yaml:"breadcrumb"`
	NotFound struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		BackToList  string `yaml:"back_to_list"`
	} `yaml:"not_found"`
	LevelNumber string `yaml:"level_number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Video       string `yaml:"video"`
	Thumbnail   string `yaml:"thumbnail"`
	Previous    string `yaml:"previous"`
	Next        string `yaml:"next"`
	InvalidID   struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"invalid_id"`
}

// FAQ is the questions page.
type FAQ struct {
	Title     string     `yaml:"title"`
	Subtitle  string     `yaml:"subtitle"`
	Questions []Question `yaml:"questions"`
}

// Question is one FAQ entry.
type Question struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// AppDownload is the download page.
type AppDownload struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Stats    struct {
		Rating    string `yaml:"rating"`
		Downloads string `yaml:"downloads"`
	} `yaml:"stats"`
	Options  []DownloadOption `yaml:"download_options"`
	Features []Feature        `yaml:"features"`
}

// DownloadOption is a store link.
type DownloadOption struct {
	Platform    string `yaml:"platform"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

// Feature is a titled blurb.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Blog is the article index copy.
type Blog struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Breadcrumbs struct {
		Blog string `yaml:"blog"`
		Page string `yaml:"page"` // "Page {0}"
	} `yaml:"breadcrumbs"`
	Posts struct {
		Title    string `yaml:"title"`
		ReadMore string `yaml:"read_more"`
		Empty    string `yaml:"empty"`
	} `yaml:"posts"`
}

// CompanyInfo is the about page.
type CompanyInfo struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Stats    []Stat    `yaml:"stats"`
	Sections []Feature `yaml:"sections"`
}

// Stat is a labelled figure.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Footer is the copyright and contact block.
type Footer struct {
	Email      string `yaml:"email"`
	Copyright  string `yaml:"copyright"`
	Disclaimer string `yaml:"disclaimer"`
}

// Load returns the dictionary for lang, falling back to DefaultLang for
// unsupported locales. levelCount fills the {count} placeholders.
func Load(lang string, levelCount int) (*Dictionary, error) {
	lang = Negotiate(lang)

	data, err := localesFS.ReadFile("locales/" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: reading locale %s: %w", lang, err)
	}

	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("i18n: parsing locale %s: %w", lang, err)
	}
	d.Lang = lang
	d.fillCounts(levelCount)
	return &d, nil
}

// fillCounts expands {count} in the strings that mention the dataset size.
func (d *Dictionary) fillCounts(n int) {
	vars := map[string]string{"count": fmt.Sprint(n)}
	for _, s := range []*string{
		&d.Hero.Stats.Guides,
		&d.Hero.Stats.VideoTutorials,
		&d.Hero.Search.Placeholder,
		&d.Level.Title,
		&d.Level.Subtitle,
		&d.LevelDetail.InvalidID.Description,
		&d.Showcase.SearchPlaceholder,
	} {
		*s = Expand(*s, vars)
	}
}

// T returns a UI string by key, or the key itself when missing.
func (d *Dictionary) T(key string) string {
	if s, ok := d.UI[key]; ok {
		return s
	}
	return key
}

// SectionName returns the nav label for a section, or "" if not listed.
func (d *Dictionary) SectionName(section string) string {
	for _, item := range d.Header.NavItems {
		if item.Section == section {
			return item.Name
		}
	}
	return ""
}

// Fill replaces the first occurrence of placeholder with value.
// The value is inserted as-is, without escaping.
func Fill(tmpl, placeholder, value string) string {
	return strings.Replace(tmpl, placeholder, value, 1)
}

// Expand replaces every {key} and {{key}} in tmpl.
func Expand(tmpl string, vars map[string]string) string {
	for k, v := range vars {
		tmpl = strings.ReplaceAll(tmpl, "{{"+k+"}}", v)
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", v)
	}
	return tmpl
}
