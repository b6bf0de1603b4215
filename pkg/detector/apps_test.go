package detector

import (
	"strings"
	"testing"

	"github.com/storelens/storelens/pkg/signatures"
)

func TestDetectAppsBlockMarkerKnown(t *testing.T) {
	html := `<!-- BEGIN app block: shopify://apps/klaviyo/blocks/form/abc123 -->
<div>signup form</div>
<!-- END app block -->`

	detected := DetectApps(signatures.Default(), html)
	if len(detected) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(detected))
	}
	d := detected[0]
	if d.App.ID != "klaviyo" {
		t.Fatalf("unexpected app id: %s", d.App.ID)
	}
	if d.Confidence != "high" || d.Weight != 100 {
		t.Fatalf("unexpected confidence/weight: %s/%d", d.Confidence, d.Weight)
	}
	if len(d.Signals) != 1 || !strings.Contains(d.Signals[0], "shopify://apps/klaviyo") {
		t.Fatalf("unexpected signals: %v", d.Signals)
	}
}

func TestDetectAppsBlockMarkerUnknownSynthesized(t *testing.T) {
	html := `<!-- BEGIN app block: shopify://apps/cool-widget/blocks/main/xyz -->`

	detected := DetectApps(signatures.Default(), html)
	if len(detected) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(detected))
	}
	d := detected[0]
	if d.App.ID != "cool-widget" {
		t.Fatalf("unexpected app id: %s", d.App.ID)
	}
	if d.App.Name != "Cool Widget" {
		t.Fatalf("unexpected synthesized name: %s", d.App.Name)
	}
	if d.App.Category != "Other" {
		t.Fatalf("unexpected category: %s", d.App.Category)
	}
	if d.Confidence != "high" || d.Weight != 50 {
		t.Fatalf("unexpected confidence/weight: %s/%d", d.Confidence, d.Weight)
	}
	if d.App.Website != "https://apps.shopify.com/cool-widget" {
		t.Fatalf("unexpected website: %s", d.App.Website)
	}
}

func TestDetectAppsDuplicateBlocksCollapse(t *testing.T) {
	html := `<!-- BEGIN app block: shopify://apps/loox/blocks/rating/a -->
<!-- BEGIN app block: shopify://apps/LOOX/blocks/reviews/b -->`

	detected := DetectApps(signatures.Default(), html)
	if len(detected) != 1 {
		t.Fatalf("expected slugs to be case-folded into 1 detection, got %d", len(detected))
	}
	if detected[0].App.ID != "loox" {
		t.Fatalf("unexpected app id: %s", detected[0].App.ID)
	}
}

func TestDetectAppsScriptSource(t *testing.T) {
	html := `<html><head>
<script src="https://static.klaviyo.com/onsite/js/klaviyo.js"></script>
</head></html>`

	detected := DetectApps(signatures.Default(), html)
	if len(detected) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(detected))
	}
	d := detected[0]
	if d.App.ID != "klaviyo" {
		t.Fatalf("unexpected app id: %s", d.App.ID)
	}
	if d.Weight != 90 {
		t.Fatalf("expected script src weight 90, got %d", d.Weight)
	}
}

func TestDetectAppsInlineScript(t *testing.T) {
	html := `<script>
  !function(){var s=document.createElement("script");s.src="//static.hotjar.com/c/hotjar.js"}();
</script>`

	detected := DetectApps(signatures.Default(), html)
	if len(detected) != 1 {
		t.Fatalf("expected 1 detection, got %d: %+v", len(detected), detected)
	}
	d := detected[0]
	if d.App.ID != "hotjar" {
		t.Fatalf("unexpected app id: %s", d.App.ID)
	}
	if d.Weight != 85 {
		t.Fatalf("expected inline content weight 85, got %d", d.Weight)
	}
}

func TestDetectAppsDeduplicationKeepsHigherWeight(t *testing.T) {
	// Block marker (100) and script source (90) for the same app: one
	// entry survives, with the higher weight and only its own signal.
	html := `<!-- BEGIN app block: shopify://apps/klaviyo/blocks/form/a -->
<script src="https://static.klaviyo.com/onsite/js/klaviyo.js"></script>`

	detected := DetectApps(signatures.Default(), html)
	if len(detected) != 1 {
		t.Fatalf("expected 1 deduplicated detection, got %d", len(detected))
	}
	d := detected[0]
	if d.Weight != 100 {
		t.Fatalf("expected the higher weight to win, got %d", d.Weight)
	}
	if len(d.Signals) != 1 {
		t.Fatalf("expected only the winning signal, got %v", d.Signals)
	}
}

func TestDetectAppsTieAccumulatesSignals(t *testing.T) {
	apps := []signatures.App{
		{
			ID: "doubled", Name: "Doubled", Category: "Other",
			Patterns: signatures.DetectionPatterns{
				BlockMarkers: []string{"doubled"},
				ScriptHosts:  []string{},
			},
		},
	}
	db := signatures.New(apps, nil)

	// Two distinct slugs that both match the same signature at equal
	// weight: first entry wins, second contributes its signal.
	html := `<!-- BEGIN app block: shopify://apps/doubled/blocks/a/1 -->
<!-- BEGIN app block: shopify://apps/doubled-pro/blocks/b/2 -->`

	detected := DetectApps(db, html)
	if len(detected) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(detected))
	}
	d := detected[0]
	if d.Weight != 100 {
		t.Fatalf("unexpected weight: %d", d.Weight)
	}
	if len(d.Signals) != 2 {
		t.Fatalf("expected accumulated signals on tie, got %v", d.Signals)
	}
}

func TestDetectAppsRanking(t *testing.T) {
	// klaviyo via block marker (100), unknown slug synthesized (50):
	// higher weight first.
	html := `<!-- BEGIN app block: shopify://apps/some-unknown-app/blocks/x/1 -->
<!-- BEGIN app block: shopify://apps/klaviyo/blocks/form/2 -->`

	detected := DetectApps(signatures.Default(), html)
	if len(detected) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(detected))
	}
	if detected[0].App.ID != "klaviyo" || detected[0].Weight != 100 {
		t.Fatalf("expected klaviyo first: %+v", detected[0])
	}
	if detected[1].App.ID != "some-unknown-app" || detected[1].Weight != 50 {
		t.Fatalf("expected synthesized entry second: %+v", detected[1])
	}
}

func TestDetectAppsEqualWeightAlphabetical(t *testing.T) {
	html := `<script src="https://static.klaviyo.com/a.js"></script>
<script src="https://cdn.loox.io/widget.js"></script>`

	detected := DetectApps(signatures.Default(), html)
	if len(detected) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(detected))
	}
	// Both weight 90: Klaviyo sorts before Loox.
	if !strings.HasPrefix(detected[0].App.Name, "Klaviyo") {
		t.Fatalf("expected Klaviyo first, got %s", detected[0].App.Name)
	}
	if !strings.HasPrefix(detected[1].App.Name, "Loox") {
		t.Fatalf("expected Loox second, got %s", detected[1].App.Name)
	}
}

func TestGroupByCategory(t *testing.T) {
	html := `<script src="https://static.klaviyo.com/a.js"></script>
<script src="https://cdn.loox.io/widget.js"></script>
<script src="https://widget.trustpilot.com/boot.js"></script>`

	detected := DetectApps(signatures.Default(), html)
	categories := GroupByCategory(detected)

	if len(categories["Email Marketing"]) != 1 {
		t.Fatalf("expected 1 email marketing app: %+v", categories)
	}
	reviews := categories["Reviews & Ratings"]
	if len(reviews) != 2 {
		t.Fatalf("expected 2 review apps: %+v", categories)
	}
	// Bucket order follows the ranked order.
	if reviews[0].App.ID != "loox" || reviews[1].App.ID != "trustpilot" {
		t.Fatalf("unexpected bucket order: %s, %s", reviews[0].App.ID, reviews[1].App.ID)
	}

	total := 0
	for _, bucket := range categories {
		total += len(bucket)
	}
	if total != len(detected) {
		t.Fatalf("every detection should land in exactly one bucket: %d != %d", total, len(detected))
	}
}

func TestMarkerMatches(t *testing.T) {
	tests := []struct {
		slug    string
		pattern string
		want    bool
	}{
		{"klaviyo", "klaviyo", true},
		// slug contains pattern
		{"klaviyo-email", "klaviyo", true},
		// pattern contains slug
		{"klav", "klaviyo", true},
		// hyphens as spaces
		{"google-analytics", "google analytics", true},
		// hyphen-stripped against space-stripped
		{"crazyegg", "crazy egg", true},
		{"loox", "klaviyo", false},
	}
	for _, tc := range tests {
		if got := markerMatches(tc.slug, tc.pattern); got != tc.want {
			t.Fatalf("markerMatches(%q, %q) = %v, want %v", tc.slug, tc.pattern, got, tc.want)
		}
	}
}

func TestDetectAppsNothingToFind(t *testing.T) {
	detected := DetectApps(signatures.Default(), `<html><body>plain page</body></html>`)
	if len(detected) != 0 {
		t.Fatalf("expected no detections, got %+v", detected)
	}
}
