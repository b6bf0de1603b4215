package detector

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/html"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Page is the result of one successful content fetch.
type Page struct {
	Body       string
	StatusCode int
	Title      string
}

// Fetcher retrieves storefront HTML with a bounded timeout and a
// browser-like request identity. One attempt per request; transient
// failures are terminal for that analysis.
type Fetcher struct {
	client    *retryablehttp.Client
	userAgent string
}

// NewFetcher builds a fetcher with the given timeout. Zero timeout falls
// back to 10 seconds. The retryable client is used for its hardened
// transport only; retries are disabled.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = log.New(io.Discard, "", 0)
	client.HTTPClient.Timeout = timeout

	return &Fetcher{client: client, userAgent: userAgent}
}

// Fetch issues a single GET for the given URL and returns the response body
// as text. Non-2xx responses and transport failures return a *FetchError.
// Cancelling ctx aborts the in-flight request.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{StatusCode: res.StatusCode, Status: res.Status}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	page := &Page{
		Body:       string(body),
		StatusCode: res.StatusCode,
	}
	if title, ok := htmlTitle(page.Body); ok {
		page.Title = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(title, "\n", ""), "\r", ""))
	}
	return page, nil
}

func htmlTitle(body string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", false
	}
	return findTitle(doc)
}

func findTitle(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil {
			return n.FirstChild.Data, true
		}
		return "", true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title, ok := findTitle(c); ok {
			return title, true
		}
	}
	return "", false
}
