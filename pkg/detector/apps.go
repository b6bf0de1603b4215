package detector

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/storelens/storelens/pkg/signatures"
)

// Evidence weights. Database block-marker hits outrank everything; a
// synthesized entry for an unknown slug ranks lowest since we cannot vouch
// for its classification. Inline script content is slightly weaker than a
// script URL because page text can mention a vendor coincidentally.
const (
	weightBlockKnown   = 100
	weightScriptSrc    = 90
	weightScriptInline = 85
	weightBlockUnknown = 50
)

// DetectedApp is one piece of (deduplicated) detection evidence.
type DetectedApp struct {
	App        signatures.App `json:"app"`
	Confidence string         `json:"confidence"`
	Signals    []string       `json:"detectedSignals"`
	Weight     int            `json:"weight"`
}

// appBlockRe matches the comment Shopify injects at the start of an
// embedded app block, capturing the app slug.
var appBlockRe = regexp.MustCompile(`(?i)<!--\s*BEGIN\s+app\s+block:\s*shopify://apps/([^/\s>]+)`)

// DetectApps runs all detection strategies over one HTML document and
// returns deduplicated evidence ordered by descending weight, ties broken
// alphabetically by app name.
func DetectApps(db *signatures.Database, htmlBody string) []DetectedApp {
	detections := detectAppBlocks(db, htmlBody)
	detections = append(detections, detectScriptHosts(db, htmlBody)...)
	return mergeDetections(detections)
}

// detectAppBlocks scans for app block comments and matches each distinct
// slug against the database. Unknown slugs still produce evidence, with a
// synthesized signature and a lower weight.
func detectAppBlocks(db *signatures.Database, htmlBody string) []DetectedApp {
	var slugs []string
	seen := make(map[string]struct{})
	for _, m := range appBlockRe.FindAllStringSubmatch(htmlBody, -1) {
		slug := strings.ToLower(strings.TrimSpace(m[1]))
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}

	var detections []DetectedApp
	for _, slug := range slugs {
		signal := "BEGIN app block: shopify://apps/" + slug

		if app, ok := matchBlockMarker(db, slug); ok {
			detections = append(detections, DetectedApp{
				App:        app,
				Confidence: "high",
				Signals:    []string{signal},
				Weight:     weightBlockKnown,
			})
			continue
		}

		detections = append(detections, DetectedApp{
			App:        synthesizeApp(slug),
			Confidence: "high",
			Signals:    []string{signal},
			Weight:     weightBlockUnknown,
		})
	}
	return detections
}

// matchBlockMarker returns the first app in database order with a block
// marker matching the slug.
func matchBlockMarker(db *signatures.Database, slug string) (signatures.App, bool) {
	for _, app := range db.Apps() {
		for _, marker := range app.Patterns.BlockMarkers {
			if markerMatches(slug, marker) {
				return app, true
			}
		}
	}
	return signatures.App{}, false
}

// markerMatches is the fuzzy slug/pattern comparison used for block
// markers: containment either way, hyphens-as-spaces, and hyphen-stripped
// against space-stripped.
func markerMatches(slug, pattern string) bool {
	slug = strings.ToLower(slug)
	pattern = strings.ToLower(pattern)
	return strings.Contains(slug, pattern) ||
		strings.Contains(pattern, slug) ||
		strings.Contains(strings.ReplaceAll(slug, "-", " "), pattern) ||
		strings.Contains(strings.ReplaceAll(slug, "-", ""), strings.ReplaceAll(pattern, " ", ""))
}

// synthesizeApp builds a placeholder signature for a block slug the
// database does not know, guessing display metadata from the slug itself.
func synthesizeApp(slug string) signatures.App {
	display := titleCaseSlug(slug)
	return signatures.App{
		ID:          slug,
		Name:        display,
		Category:    "Other",
		Description: "Shopify app: " + display,
		Website:     "https://apps.shopify.com/" + slug,
		IconURL:     "https://logo.clearbit.com/" + strings.ReplaceAll(slug, "-", "") + ".com",
		Patterns: signatures.DetectionPatterns{
			BlockMarkers:  []string{slug},
			ScriptHosts:   []string{},
			CSSClasses:    []string{},
			DOMAttributes: []string{},
		},
	}
}

func titleCaseSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// detectScriptHosts matches each signature's script host fragments against
// the page's script tags: raw src strings first, then inline script bodies,
// then resolved hostnames. First hit per signature wins.
func detectScriptHosts(db *signatures.Database, htmlBody string) []DetectedApp {
	srcs, hosts, inline := collectScripts(htmlBody)
	if len(srcs) == 0 && len(inline) == 0 {
		return nil
	}

	var detections []DetectedApp
	for _, app := range db.Apps() {
		if len(app.Patterns.ScriptHosts) == 0 {
			continue
		}
		if d, ok := matchScriptFragments(app, srcs, hosts, inline); ok {
			detections = append(detections, d)
		}
	}
	return detections
}

func matchScriptFragments(app signatures.App, srcs, hosts, inline []string) (DetectedApp, bool) {
	for _, fragment := range app.Patterns.ScriptHosts {
		frag := strings.ToLower(fragment)

		if containsAny(srcs, frag) {
			return DetectedApp{
				App:        app,
				Confidence: "high",
				Signals:    []string{fmt.Sprintf("Script tag source contains %q", fragment)},
				Weight:     weightScriptSrc,
			}, true
		}
		if containsAny(inline, frag) {
			return DetectedApp{
				App:        app,
				Confidence: "high",
				Signals:    []string{fmt.Sprintf("Inline script content contains %q", fragment)},
				Weight:     weightScriptInline,
			}, true
		}
		if containsAny(hosts, frag) {
			return DetectedApp{
				App:        app,
				Confidence: "high",
				Signals:    []string{fmt.Sprintf("Script hostname contains %q", fragment)},
				Weight:     weightScriptSrc,
			}, true
		}
	}
	return DetectedApp{}, false
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

// collectScripts gathers script evidence from the document: lowercased raw
// src attributes, their resolved hostnames (raw string fallback when the
// src does not parse), and lowercased inline script bodies. A document that
// fails to parse yields no evidence rather than an error.
func collectScripts(htmlBody string) (srcs, hosts, inline []string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return nil, nil, nil
	}

	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && strings.TrimSpace(src) != "" {
			src = strings.TrimSpace(src)
			srcs = append(srcs, strings.ToLower(src))

			if u, err := url.Parse(src); err == nil && u.Hostname() != "" {
				hosts = append(hosts, strings.ToLower(u.Hostname()))
			} else {
				hosts = append(hosts, strings.ToLower(src))
			}
			return
		}
		if body := s.Text(); strings.TrimSpace(body) != "" {
			inline = append(inline, strings.ToLower(body))
		}
	})
	return srcs, hosts, inline
}

// mergeDetections deduplicates evidence by app id (higher weight wins;
// exact ties keep the first entry and accumulate the other's signals) and
// orders the result by descending weight, then app name.
func mergeDetections(detections []DetectedApp) []DetectedApp {
	index := make(map[string]int)
	merged := make([]DetectedApp, 0, len(detections))

	for _, d := range detections {
		i, ok := index[d.App.ID]
		if !ok {
			index[d.App.ID] = len(merged)
			merged = append(merged, d)
			continue
		}
		switch {
		case d.Weight > merged[i].Weight:
			merged[i] = d
		case d.Weight == merged[i].Weight:
			merged[i].Signals = append(merged[i].Signals, d.Signals...)
		}
	}

	sort.SliceStable(merged, func(a, b int) bool {
		if merged[a].Weight != merged[b].Weight {
			return merged[a].Weight > merged[b].Weight
		}
		return merged[a].App.Name < merged[b].App.Name
	})
	return merged
}

// GroupByCategory buckets deduplicated evidence by app category,
// preserving the ranked order within each bucket.
func GroupByCategory(detections []DetectedApp) map[string][]DetectedApp {
	categories := make(map[string][]DetectedApp)
	for _, d := range detections {
		categories[d.App.Category] = append(categories[d.App.Category], d)
	}
	return categories
}
