package detector

import "testing"

func TestIsShopifyStoreIndicators(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"global namespace", `<script>window.Shopify = {};</script>`, true},
		{"theme object", `<script>Shopify.theme = {"name":"Dawn"};</script>`, true},
		{"cdn url", `<link href="https://cdn.shopify.com/s/files/style.css">`, true},
		{"section class", `<div class="shopify-section header"></div>`, true},
		{"block class", `<div class="shopify-block"></div>`, true},
		{"payments token", `<span>shopify_pay</span>`, true},
		{"features tag", `<script id="shopify-features">{}</script>`, true},
		{"mixed casing", `<script>WINDOW.SHOPIFY = {};</script>`, true},
		{"plain page", `<html><body><h1>A store</h1></body></html>`, false},
		{"wordpress page", `<meta name="generator" content="WordPress 6.0">`, false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		if got := IsShopifyStore(tc.html); got != tc.want {
			t.Fatalf("%s: IsShopifyStore = %v, want %v", tc.name, got, tc.want)
		}
	}
}
