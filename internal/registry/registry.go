// Package registry provides a global registry for guide sections.
// Sections register themselves in init() functions, allowing the session
// model to build its navigation without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
	"github.com/vovakirdan/dreamyroom-guide/internal/config"
	"github.com/vovakirdan/dreamyroom-guide/internal/content"
	"github.com/vovakirdan/dreamyroom-guide/internal/i18n"
)

// Section is one page of the guide (home, levels, faq, ...).
// Sections are plain Bubble Tea components; the session model owns
// navigation between them.
type Section interface {
	// ID returns the unique identifier used in navigation and on the CLI.
	ID() string

	// Init returns the section's initial command, if any.
	Init() tea.Cmd

	// Update handles a message and returns the updated section.
	Update(msg tea.Msg) (Section, tea.Cmd)

	// View renders the section body (without the header and footer).
	View() string

	// Capturing reports whether the section is taking text input, in
	// which case global key bindings must not be applied.
	Capturing() bool
}

// Env is the shared, read-only state a section is created with.
type Env struct {
	Dict    *i18n.Dictionary
	Catalog *catalog.Catalog
	Blog    *content.Blog
	Config  config.Config
	Width   int
	Height  int
}

// SectionInfo contains metadata about a registered section.
type SectionInfo struct {
	ID    string
	Order int
}

// Factory creates a new instance of a section.
type Factory func(env Env) Section

var (
	factories = make(map[string]Factory)
	orders    = make(map[string]int)
	mu        sync.RWMutex
)

// Register adds a section factory to the registry.
// Panics if a section with the same ID is already registered.
func Register(id string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: section %q already registered", id))
	}

	factories[id] = f
	orders[id] = order
}

// List returns all registered sections in navigation order.
func List() []SectionInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SectionInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SectionInfo{ID: id, Order: orders[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a section by its ID.
func Create(id string, env Env) (Section, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown section %q", id)
	}

	return f(env), nil
}

// Exists checks if a section with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
