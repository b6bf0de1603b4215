package detector

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analysis pipeline. Callers translate these into
// user-facing messages and HTTP statuses.
var (
	ErrMissingURL  = errors.New("url is required")
	ErrInvalidURL  = errors.New("invalid url")
	ErrNotShopify  = errors.New("not a shopify store")
	ErrNoThemeInfo = errors.New("no theme information detected")
)

// FetchError reports a failed content fetch: either a transport failure
// (Err set) or a non-2xx response (StatusCode/Status set).
type FetchError struct {
	StatusCode int
	Status     string // e.g. "404 Not Found"
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch failed: %v", e.Err)
	}
	return fmt.Sprintf("fetch failed: %s", e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
