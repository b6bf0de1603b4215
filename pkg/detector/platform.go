package detector

import "strings"

// shopifyIndicators are the tokens whose presence marks a page as a Shopify
// storefront. Any single hit is enough: the gate favors recall over
// precision, deeper analysis decides the rest.
var shopifyIndicators = []string{
	"window.shopify",
	"shopify.theme",
	"cdn.shopify.com",
	"shopify-section",
	"shopify-block",
	"shopify.shop",
	"shopify_pay",
	"shopify-features",
}

// IsShopifyStore reports whether the HTML looks like a Shopify storefront.
func IsShopifyStore(htmlBody string) bool {
	lower := strings.ToLower(htmlBody)
	for _, indicator := range shopifyIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
