// Package signatures holds the static detection database: known Shopify
// apps with their textual detection patterns, and the official theme store
// catalog keyed by theme_store_id. The database is immutable after
// construction and safe for concurrent readers.
package signatures

import "sort"

// DetectionPatterns groups the textual patterns used to recognize one app.
// CSSClasses and DOMAttributes are carried for future strategies; the
// current detection paths only consult BlockMarkers and ScriptHosts.
type DetectionPatterns struct {
	BlockMarkers  []string `json:"appBlocks"`
	ScriptHosts   []string `json:"scriptDomains"`
	CSSClasses    []string `json:"cssClasses"`
	DOMAttributes []string `json:"htmlElements"`
}

// App describes one known Shopify app and how to detect it.
type App struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Website     string            `json:"website"`
	IconURL     string            `json:"iconUrl,omitempty"`
	Patterns    DetectionPatterns `json:"detectionPatterns"`
}

// Theme describes one official theme store entry.
type Theme struct {
	StoreID  int    `json:"themeStoreId"`
	Name     string `json:"name"`
	Tier     string `json:"type"` // free | paid
	StoreURL string `json:"storeUrl,omitempty"`
}

// Database is the immutable signature set consulted by the detectors.
// Apps keep a stable order so detection results are deterministic.
type Database struct {
	apps    []App
	appByID map[string]int
	themes  map[int]Theme
}

// New builds a database from the given signature sets. Used by tests to
// inject a reduced set; production code should use Default.
func New(apps []App, themes []Theme) *Database {
	db := &Database{
		apps:    apps,
		appByID: make(map[string]int, len(apps)),
		themes:  make(map[int]Theme, len(themes)),
	}
	for i, a := range apps {
		db.appByID[a.ID] = i
	}
	for _, t := range themes {
		db.themes[t.StoreID] = t
	}
	return db
}

// Default returns the curated built-in signature database.
func Default() *Database {
	return New(defaultApps, defaultThemes)
}

// Apps returns all known apps in stable database order.
func (db *Database) Apps() []App {
	return db.apps
}

// AppByID looks up an app by its slug.
func (db *Database) AppByID(id string) (App, bool) {
	i, ok := db.appByID[id]
	if !ok {
		return App{}, false
	}
	return db.apps[i], true
}

// ThemeByStoreID looks up an official theme by its theme store identifier.
// Unknown identifiers are not an error.
func (db *Database) ThemeByStoreID(id int) (Theme, bool) {
	t, ok := db.themes[id]
	return t, ok
}

// Categories returns the sorted set of distinct app categories.
func (db *Database) Categories() []string {
	seen := make(map[string]struct{})
	for _, a := range db.apps {
		seen[a.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
