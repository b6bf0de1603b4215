package detector

import (
	"net/url"
	"strings"

	"github.com/weppos/publicsuffix-go/publicsuffix"
)

const platformDomainSuffix = ".myshopify.com"

// NormalizeURL canonicalizes a user-supplied URL string. A missing scheme
// defaults to https. Returns ErrInvalidURL if the result does not parse as
// an absolute URL.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ErrInvalidURL
	}
	return u.String(), nil
}

// NormalizeStoreURL is the storefront-aware variant of NormalizeURL.
// Platform-hosted *.myshopify.com hostnames are accepted unconditionally.
// Other dotted hostnames are accepted provisionally; whether they really
// are Shopify stores is confirmed later by the platform gate. Bare and
// local hostnames are rejected.
func NormalizeStoreURL(raw string) (string, error) {
	normalized, err := NormalizeURL(raw)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return "", ErrInvalidURL
	}

	hostname := strings.ToLower(u.Hostname())
	if strings.HasSuffix(hostname, platformDomainSuffix) {
		return u.String(), nil
	}
	if strings.Contains(hostname, ".") && !strings.Contains(hostname, "localhost") {
		return u.String(), nil
	}
	return "", ErrInvalidURL
}

// RootDomain extracts the registrable domain from a URL or hostname,
// e.g. "https://shop.example.co.uk/products" -> "example.co.uk".
// Returns "" when no registrable domain can be derived.
func RootDomain(urlOrHost string) string {
	host := urlOrHost
	if strings.Contains(urlOrHost, "://") {
		if u, err := url.Parse(urlOrHost); err == nil && u.Host != "" {
			host = u.Hostname()
		}
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if !strings.Contains(host, ".") {
		return ""
	}
	domain, err := publicsuffix.Domain(host)
	if err != nil {
		return ""
	}
	return domain
}
