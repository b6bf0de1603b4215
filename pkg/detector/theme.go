package detector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/storelens/storelens/pkg/signatures"
	"github.com/tidwall/gjson"
)

// ThemeInfo holds whatever theme metadata could be recovered from a page.
// Fields are independent: partial extraction is valid.
type ThemeInfo struct {
	Name       string
	SchemaName string
	StoreID    *int
	InstanceID string
}

// Empty reports whether nothing useful was extracted. InstanceID alone does
// not count: it identifies the install, not the theme.
func (t ThemeInfo) Empty() bool {
	return t.Name == "" && t.SchemaName == "" && t.StoreID == nil
}

var (
	// Primary: the inline Shopify.theme object literal, bounded at the
	// first closing brace.
	themeObjectRe = regexp.MustCompile(`(?i)Shopify\.theme\s*=\s*(\{[^}]*\})`)

	// Fallback: a standalone theme_store_id key/value anywhere in the page.
	storeIDRe = regexp.MustCompile(`(?i)theme_store_id['":\s]*(\d+)`)

	// Fallbacks for the theme name, in priority order.
	nameCommentRe = regexp.MustCompile(`(?i)<!--[^>]*theme[:\s]*([^-\s]+)`)
	nameKeyRe     = regexp.MustCompile(`(?i)theme[_-]name['":\s]*['"]([^'"]+)['"]`)
)

// ExtractThemeInfo recovers theme metadata from storefront HTML. The
// primary strategy parses the inline Shopify.theme object; parse failures
// degrade silently to pattern-scan fallbacks that only fill fields the
// primary pass left empty.
func ExtractThemeInfo(htmlBody string) ThemeInfo {
	var info ThemeInfo

	if m := themeObjectRe.FindStringSubmatch(htmlBody); m != nil {
		if obj := gjson.Parse(m[1]); obj.IsObject() {
			if v := obj.Get("name"); v.Exists() {
				info.Name = strings.TrimSpace(v.String())
			}
			if v := obj.Get("schema_name"); v.Exists() {
				info.SchemaName = strings.TrimSpace(v.String())
			}
			if v := obj.Get("theme_store_id"); v.Exists() {
				if id := int(v.Int()); id > 0 {
					info.StoreID = &id
				}
			}
			if v := obj.Get("id"); v.Exists() {
				info.InstanceID = v.String()
			}
		}
	}

	if info.StoreID == nil {
		if m := storeIDRe.FindStringSubmatch(htmlBody); m != nil {
			if id, err := strconv.Atoi(m[1]); err == nil && id > 0 {
				info.StoreID = &id
			}
		}
	}

	if info.Name == "" {
		info.Name = fallbackThemeName(htmlBody)
	}

	return info
}

// fallbackThemeName tries the secondary name sources in order: a theme meta
// tag, an HTML comment convention, then a theme_name/theme-name key.
func fallbackThemeName(htmlBody string) string {
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody)); err == nil {
		if content, ok := doc.Find(`meta[name="theme"]`).First().Attr("content"); ok {
			if name := strings.TrimSpace(content); name != "" {
				return name
			}
		}
	}
	for _, re := range []*regexp.Regexp{nameCommentRe, nameKeyRe} {
		if m := re.FindStringSubmatch(htmlBody); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}
	return ""
}

// ThemeClass is the outcome of a registry lookup: whether the theme is an
// official theme-store listing, its canonical metadata if so, and a
// human-readable recommendation.
type ThemeClass struct {
	Type           string // official | custom
	CatalogName    string
	StoreURL       string
	Recommendation string
}

// ClassifyTheme cross-references extracted theme metadata against the theme
// catalog. Pure function of (StoreID, SchemaName).
func ClassifyTheme(db *signatures.Database, info ThemeInfo) ThemeClass {
	if info.StoreID != nil {
		if theme, ok := db.ThemeByStoreID(*info.StoreID); ok {
			return ThemeClass{
				Type:           "official",
				CatalogName:    theme.Name,
				StoreURL:       theme.StoreURL,
				Recommendation: fmt.Sprintf("%s is an official theme available in the Shopify Theme Store.", theme.Name),
			}
		}
	}
	if info.SchemaName != "" {
		return ThemeClass{
			Type:           "custom",
			Recommendation: fmt.Sprintf("This looks like a custom theme built on %q. Search the Shopify Theme Store for that name to find the base theme.", info.SchemaName),
		}
	}
	return ThemeClass{
		Type:           "custom",
		Recommendation: "This looks like a custom theme. Contact the store owner for details.",
	}
}
