package detector

import (
	"context"
	"strings"

	"github.com/storelens/storelens/pkg/signatures"
)

// Analyzer wires the signature database and fetcher into the two analysis
// pipelines. It is stateless between requests and safe for concurrent use.
type Analyzer struct {
	db      *signatures.Database
	fetcher *Fetcher
}

// NewAnalyzer builds an analyzer over the given signature database and
// fetcher.
func NewAnalyzer(db *signatures.Database, fetcher *Fetcher) *Analyzer {
	return &Analyzer{db: db, fetcher: fetcher}
}

// Database exposes the signature set the analyzer was built with.
func (a *Analyzer) Database() *signatures.Database {
	return a.db
}

// ThemeDescriptor is the extracted template identity as reported to
// callers. Nil fields mean the value could not be recovered.
type ThemeDescriptor struct {
	Name         *string `json:"name"`
	SchemaName   *string `json:"schema_name"`
	ThemeStoreID *int    `json:"theme_store_id"`
	InstanceID   *string `json:"id"`
	Type         string  `json:"type"` // official | custom
}

// ThemeReport is the terminal output of one theme analysis.
type ThemeReport struct {
	Success        bool             `json:"success"`
	Theme          *ThemeDescriptor `json:"theme"`
	ThemeStoreURL  string           `json:"themeStoreUrl,omitempty"`
	Recommendation string           `json:"recommendation,omitempty"`
	StoreURL       string           `json:"storeUrl"`
	StoreTitle     string           `json:"storeTitle,omitempty"`
}

// AppReport is the terminal output of one app detection analysis.
type AppReport struct {
	Success      bool                     `json:"success"`
	StoreURL     string                   `json:"storeUrl"`
	StoreTitle   string                   `json:"storeTitle,omitempty"`
	DetectedApps []DetectedApp            `json:"detectedApps"`
	TotalApps    int                      `json:"totalApps"`
	Categories   map[string][]DetectedApp `json:"categories"`
}

// AnalyzeTheme runs the theme pipeline: normalize, fetch, platform gate,
// extract, classify. Failures are reported through the package's error
// taxonomy; a returned report is always a success.
func (a *Analyzer) AnalyzeTheme(ctx context.Context, rawURL string) (*ThemeReport, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrMissingURL
	}
	storeURL, err := NormalizeStoreURL(rawURL)
	if err != nil {
		return nil, err
	}

	page, err := a.fetcher.Fetch(ctx, storeURL)
	if err != nil {
		return nil, err
	}
	if !IsShopifyStore(page.Body) {
		return nil, ErrNotShopify
	}

	info := ExtractThemeInfo(page.Body)
	if info.Empty() {
		return nil, ErrNoThemeInfo
	}
	class := ClassifyTheme(a.db, info)

	desc := &ThemeDescriptor{
		Type:         class.Type,
		ThemeStoreID: info.StoreID,
	}
	if class.CatalogName != "" {
		desc.Name = &class.CatalogName
	} else if info.Name != "" {
		desc.Name = &info.Name
	}
	if info.SchemaName != "" {
		desc.SchemaName = &info.SchemaName
	}
	if info.InstanceID != "" {
		desc.InstanceID = &info.InstanceID
	}

	return &ThemeReport{
		Success:        true,
		Theme:          desc,
		ThemeStoreURL:  class.StoreURL,
		Recommendation: class.Recommendation,
		StoreURL:       storeURL,
		StoreTitle:     page.Title,
	}, nil
}

// AnalyzeApps runs the app detection pipeline over the same fetched HTML:
// normalize, fetch, platform gate, then both detection strategies.
func (a *Analyzer) AnalyzeApps(ctx context.Context, rawURL string) (*AppReport, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrMissingURL
	}
	storeURL, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	page, err := a.fetcher.Fetch(ctx, storeURL)
	if err != nil {
		return nil, err
	}
	if !IsShopifyStore(page.Body) {
		return nil, ErrNotShopify
	}

	detected := DetectApps(a.db, page.Body)
	if detected == nil {
		detected = []DetectedApp{}
	}

	return &AppReport{
		Success:      true,
		StoreURL:     storeURL,
		StoreTitle:   page.Title,
		DetectedApps: detected,
		TotalApps:    len(detected),
		Categories:   GroupByCategory(detected),
	}, nil
}
