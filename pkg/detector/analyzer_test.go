package detector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storelens/storelens/pkg/signatures"
)

func testAnalyzer() *Analyzer {
	return NewAnalyzer(signatures.Default(), NewFetcher(5*time.Second, ""))
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	}))
}

func TestAnalyzeThemeEndToEnd(t *testing.T) {
	srv := serveHTML(t, `<html><head><title>My Store</title></head><body>
<script>window.Shopify = {};</script>
<script>Shopify.theme = {"name":"Dawn","id":987654,"schema_name":"Dawn","theme_store_id":828};</script>
</body></html>`)
	defer srv.Close()

	report, err := testAnalyzer().AnalyzeTheme(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Success {
		t.Fatal("expected success")
	}
	if report.Theme.Type != "official" {
		t.Fatalf("expected official theme, got %s", report.Theme.Type)
	}
	if report.Theme.Name == nil || *report.Theme.Name != "Dawn" {
		t.Fatalf("unexpected theme name: %v", report.Theme.Name)
	}
	if report.ThemeStoreURL == "" {
		t.Fatal("expected a theme store URL for an official theme")
	}
	if report.StoreTitle != "My Store" {
		t.Fatalf("unexpected store title: %q", report.StoreTitle)
	}
}

func TestAnalyzeThemeCustom(t *testing.T) {
	srv := serveHTML(t, `<script>Shopify.theme = {"name":"My Custom","schema_name":"Impulse"};</script>`)
	defer srv.Close()

	report, err := testAnalyzer().AnalyzeTheme(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Theme.Type != "custom" {
		t.Fatalf("expected custom theme, got %s", report.Theme.Type)
	}
	if report.ThemeStoreURL != "" {
		t.Fatal("custom theme should have no theme store URL")
	}
	if report.Theme.SchemaName == nil || *report.Theme.SchemaName != "Impulse" {
		t.Fatalf("unexpected schema name: %v", report.Theme.SchemaName)
	}
}

func TestAnalyzeThemeFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := testAnalyzer().AnalyzeTheme(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status code: %d", fe.StatusCode)
	}
	if fe.Status != "404 Not Found" {
		t.Fatalf("unexpected status: %q", fe.Status)
	}
}

func TestAnalyzeThemeNotShopify(t *testing.T) {
	srv := serveHTML(t, `<html><body><h1>Just a blog</h1></body></html>`)
	defer srv.Close()

	_, err := testAnalyzer().AnalyzeTheme(context.Background(), srv.URL)
	if !errors.Is(err, ErrNotShopify) {
		t.Fatalf("expected ErrNotShopify, got %v", err)
	}
}

func TestAnalyzeThemeNoThemeInfo(t *testing.T) {
	srv := serveHTML(t, `<script>window.Shopify = {};</script>`)
	defer srv.Close()

	_, err := testAnalyzer().AnalyzeTheme(context.Background(), srv.URL)
	if !errors.Is(err, ErrNoThemeInfo) {
		t.Fatalf("expected ErrNoThemeInfo, got %v", err)
	}
}

func TestAnalyzeThemeMissingURL(t *testing.T) {
	_, err := testAnalyzer().AnalyzeTheme(context.Background(), "  ")
	if !errors.Is(err, ErrMissingURL) {
		t.Fatalf("expected ErrMissingURL, got %v", err)
	}
}

func TestAnalyzeAppsEndToEnd(t *testing.T) {
	srv := serveHTML(t, `<html><body>
<div class="shopify-section">
<!-- BEGIN app block: shopify://apps/klaviyo/blocks/form/abc -->
</div>
</body></html>`)
	defer srv.Close()

	report, err := testAnalyzer().AnalyzeApps(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalApps != 1 {
		t.Fatalf("expected 1 app, got %d", report.TotalApps)
	}
	d := report.DetectedApps[0]
	if d.App.ID != "klaviyo" || d.Confidence != "high" || d.Weight != 100 {
		t.Fatalf("unexpected detection: %+v", d)
	}
	if len(report.Categories["Email Marketing"]) != 1 {
		t.Fatalf("unexpected categories: %+v", report.Categories)
	}
}

func TestAnalyzeAppsEmptyStillSucceeds(t *testing.T) {
	srv := serveHTML(t, `<script>window.Shopify = {};</script>`)
	defer srv.Close()

	report, err := testAnalyzer().AnalyzeApps(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalApps != 0 || len(report.DetectedApps) != 0 {
		t.Fatalf("expected no detections: %+v", report)
	}
}

func TestAnalyzeAppsNotShopify(t *testing.T) {
	srv := serveHTML(t, `<html><body>nothing here</body></html>`)
	defer srv.Close()

	_, err := testAnalyzer().AnalyzeApps(context.Background(), srv.URL)
	if !errors.Is(err, ErrNotShopify) {
		t.Fatalf("expected ErrNotShopify, got %v", err)
	}
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := NewFetcher(5*time.Second, "").Fetch(ctx, srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError on cancellation, got %v", err)
	}
	if fe.Err == nil {
		t.Fatalf("expected a transport error, got %+v", fe)
	}
}

func TestFetchSendsBrowserIdentity(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	if _, err := NewFetcher(5*time.Second, "").Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA == "" || gotUA == "Go-http-client/1.1" {
		t.Fatalf("expected a browser user agent, got %q", gotUA)
	}
}
