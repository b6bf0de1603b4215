package storage

import "time"

// Analysis kinds.
const (
	KindTheme = "theme"
	KindApps  = "apps"
)

// Analysis is one recorded analysis run.
type Analysis struct {
	ID          int64
	StoreURL    string
	StoreDomain string
	StoreTitle  string
	Kind        string // theme | apps
	Success     bool

	// Theme analyses
	ThemeName    string
	ThemeStoreID int
	ThemeType    string // official | custom

	// App analyses
	TotalApps int

	CreatedAt time.Time
}

// Stats summarizes the recorded history.
type Stats struct {
	TotalAnalyses  int
	ThemeAnalyses  int
	AppAnalyses    int
	DistinctStores int
}
