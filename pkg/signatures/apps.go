package signatures

// defaultApps is the curated app signature set. Order matters: block marker
// matching picks the first app whose patterns match, so more specific
// signatures should come before generic ones.
var defaultApps = []App{
	{
		ID:          "klaviyo",
		Name:        "Klaviyo: Email Marketing & SMS",
		Category:    "Email Marketing",
		Description: "Grow smarter with automation and personalization for email marketing, sms, and more.",
		Website:     "https://apps.shopify.com/klaviyo-email-marketing",
		IconURL:     "https://logo.clearbit.com/klaviyo.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"klaviyo"},
			ScriptHosts:   []string{"klaviyo.com"},
			CSSClasses:    []string{"klaviyo-form", "kl-private-reset-css-Xuajs1"},
			DOMAttributes: []string{"data-klaviyo-*", "klaviyo-onsite-embed"},
		},
	},
	{
		ID:          "loox",
		Name:        "Loox: Product Reviews App",
		Category:    "Reviews & Ratings",
		Description: "Photo reviews and user-generated content to boost sales",
		Website:     "https://apps.shopify.com/loox",
		IconURL:     "https://logo.clearbit.com/loox.io",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"loox"},
			ScriptHosts:   []string{"loox.io"},
			CSSClasses:    []string{"loox-rating", "loox-reviews"},
			DOMAttributes: []string{"data-loox-*", "loox-reviews-default"},
		},
	},
	{
		ID:          "yotpo",
		Name:        "Yotpo: Product Reviews & UGC",
		Category:    "Reviews & Ratings",
		Description: "Reviews, ratings, and user-generated content platform",
		Website:     "https://apps.shopify.com/yotpo-social-reviews",
		IconURL:     "https://logo.clearbit.com/yotpo.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"yotpo"},
			ScriptHosts:   []string{"yotpo.com"},
			CSSClasses:    []string{"yotpo", "yotpo-main-widget"},
			DOMAttributes: []string{"data-yotpo-*", "yotpo-widget-instance"},
		},
	},
	{
		ID:          "judgeme",
		Name:        "Judge.me Product Reviews",
		Category:    "Reviews & Ratings",
		Description: "Product reviews and ratings with photo reviews",
		Website:     "https://apps.shopify.com/judgeme",
		IconURL:     "https://logo.clearbit.com/judge.me",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"judge.me", "judgeme"},
			ScriptHosts:   []string{"judge.me"},
			CSSClasses:    []string{"jdgm-widget", "jdgm-rev-widg"},
			DOMAttributes: []string{"data-jdgm-*", "jdgm-widget"},
		},
	},
	{
		ID:          "reconvert",
		Name:        "ReConvert Post Purchase Upsell",
		Category:    "Conversion Optimization",
		Description: "Post-purchase upsells and thank you page optimization",
		Website:     "https://apps.shopify.com/reconvert-post-purchase-upsell",
		IconURL:     "https://logo.clearbit.com/reconvert.io",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"reconvert"},
			ScriptHosts:   []string{"reconvert.io"},
			CSSClasses:    []string{"reconvert-app", "rc-widget"},
			DOMAttributes: []string{"data-reconvert-*", "reconvert-upsell"},
		},
	},
	{
		ID:          "minmaxify",
		Name:        "MinMaxify Order Limits",
		Category:    "Order Management",
		Description: "Set minimum and maximum order limits for products and collections",
		Website:     "https://apps.shopify.com/order-limits-minmaxify",
		IconURL:     "https://logo.clearbit.com/minmaxify.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"minmaxify-order-limits", "minmaxify"},
			ScriptHosts:   []string{"minmaxify.com"},
			CSSClasses:    []string{"minmaxify-widget", "minmaxify-limits"},
			DOMAttributes: []string{"data-minmaxify-*", "minmaxify-order-limits"},
		},
	},
	{
		ID:          "recart",
		Name:        "ReCart: SMS Marketing",
		Category:    "Email Marketing",
		Description: "SMS marketing and abandoned cart recovery",
		Website:     "https://apps.shopify.com/recart",
		IconURL:     "https://logo.clearbit.com/recart.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"recart"},
			ScriptHosts:   []string{"recart.com"},
			CSSClasses:    []string{"recart-widget"},
			DOMAttributes: []string{"data-recart-*"},
		},
	},
	{
		ID:          "tidio",
		Name:        "Tidio Live Chat & AI Chatbots",
		Category:    "Customer Support",
		Description: "Live chat, chatbots, and customer communication",
		Website:     "https://apps.shopify.com/tidio-chat",
		IconURL:     "https://logo.clearbit.com/tidio.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"tidio"},
			ScriptHosts:   []string{"tidio.co"},
			CSSClasses:    []string{"tidio-chat"},
			DOMAttributes: []string{"tidio-chat"},
		},
	},
	{
		ID:          "stampedio",
		Name:        "Stamped.io Product Reviews & UGC",
		Category:    "Reviews & Ratings",
		Description: "Product reviews, ratings, and user-generated content",
		Website:     "https://apps.shopify.com/stamped-io",
		IconURL:     "https://logo.clearbit.com/stamped.io",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"stamped", "stamped.io"},
			ScriptHosts:   []string{"stamped.io"},
			CSSClasses:    []string{"stamped-reviews"},
			DOMAttributes: []string{"stamped-reviews"},
		},
	},
	{
		ID:          "luckyorange",
		Name:        "Lucky Orange Heatmaps & Replay",
		Category:    "Analytics",
		Description: "Heatmaps, session recordings, and conversion optimization",
		Website:     "https://apps.shopify.com/lucky-orange",
		IconURL:     "https://logo.clearbit.com/luckyorange.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"lucky-orange", "luckyorange"},
			ScriptHosts:   []string{"luckyorange.com"},
			CSSClasses:    []string{},
			DOMAttributes: []string{"luckyorange"},
		},
	},
	{
		ID:          "google-analytics",
		Name:        "Google Analytics",
		Category:    "Analytics",
		Description: "Web analytics and tracking",
		Website:     "https://analytics.google.com",
		IconURL:     "https://logo.clearbit.com/google.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"google analytics", "gtag"},
			ScriptHosts:   []string{"googletagmanager.com", "google-analytics.com"},
			CSSClasses:    []string{},
			DOMAttributes: []string{"gtag(", "ga(", "data-gtm-*"},
		},
	},
	{
		ID:          "facebook-pixel",
		Name:        "Facebook Pixel",
		Category:    "Analytics",
		Description: "Facebook advertising and tracking pixel",
		Website:     "https://business.facebook.com",
		IconURL:     "https://logo.clearbit.com/facebook.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"facebook pixel", "fbq"},
			ScriptHosts:   []string{"facebook.com"},
			CSSClasses:    []string{},
			DOMAttributes: []string{"fbq(", "facebook-jssdk"},
		},
	},
	{
		ID:          "gorgias",
		Name:        "Gorgias: Helpdesk & Live Chat",
		Category:    "Customer Support",
		Description: "Customer support and helpdesk solution",
		Website:     "https://apps.shopify.com/gorgias",
		IconURL:     "https://logo.clearbit.com/gorgias.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"gorgias"},
			ScriptHosts:   []string{"gorgias.com"},
			CSSClasses:    []string{"gorgias-chat-container"},
			DOMAttributes: []string{"data-gorgias-*", "gorgias-chat-messenger"},
		},
	},
	{
		ID:          "privy",
		Name:        "Privy: Pop Ups, Email, & SMS",
		Category:    "Email Marketing",
		Description: "Email capture and marketing automation",
		Website:     "https://apps.shopify.com/privy",
		IconURL:     "https://logo.clearbit.com/privy.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"privy"},
			ScriptHosts:   []string{"privy.com"},
			CSSClasses:    []string{"privy-overlay", "privy-popup"},
			DOMAttributes: []string{"data-privy-*", "privy-overlay-container"},
		},
	},
	{
		ID:          "shopify-inbox",
		Name:        "Shopify Inbox",
		Category:    "Customer Support",
		Description: "Shopify native chat support",
		Website:     "https://www.shopify.com/inbox",
		IconURL:     "https://logo.clearbit.com/shopify.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"shopify-chat", "shop-chat"},
			ScriptHosts:   []string{"shopify.com"},
			CSSClasses:    []string{"shopify-chat", "ShopifyChat"},
			DOMAttributes: []string{"shopify-chat", "data-shop-id"},
		},
	},
	{
		ID:          "crazyegg",
		Name:        "Crazy Egg: Heatmaps & Recordings",
		Category:    "Analytics",
		Description: "Heatmaps and Recordings can help increase sales by knowing where & why visitors click.",
		Website:     "https://apps.shopify.com/crazy-egg",
		IconURL:     "https://logo.clearbit.com/crazyegg.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"crazy-egg", "crazyegg"},
			ScriptHosts:   []string{"crazyegg.com"},
			CSSClasses:    []string{},
			DOMAttributes: []string{"crazyegg"},
		},
	},
	{
		ID:          "omnisend",
		Name:        "Omnisend Email Marketing & SMS",
		Category:    "Email Marketing",
		Description: "Email marketing, SMS, and automation platform",
		Website:     "https://apps.shopify.com/omnisend",
		IconURL:     "https://logo.clearbit.com/omnisend.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"omnisend"},
			ScriptHosts:   []string{"omnisend.com"},
			CSSClasses:    []string{"omnisend-form"},
			DOMAttributes: []string{"omnisend"},
		},
	},
	{
		ID:          "smileio",
		Name:        "Smile: Loyalty & Rewards",
		Category:    "Loyalty & Rewards",
		Description: "Loyalty program and rewards platform",
		Website:     "https://apps.shopify.com/smile-io",
		IconURL:     "https://logo.clearbit.com/smile.io",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"smile", "smile.io"},
			ScriptHosts:   []string{"smile.io"},
			CSSClasses:    []string{"smile-launcher"},
			DOMAttributes: []string{"smile-ui"},
		},
	},
	{
		ID:          "okendo",
		Name:        "Okendo: Reviews & Loyalty",
		Category:    "Reviews & Ratings",
		Description: "Product reviews and customer loyalty platform",
		Website:     "https://apps.shopify.com/okendo",
		IconURL:     "https://logo.clearbit.com/okendo.io",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"okendo"},
			ScriptHosts:   []string{"okendo.io"},
			CSSClasses:    []string{"okendo-reviews"},
			DOMAttributes: []string{"okendo-reviews-widget"},
		},
	},
	{
		ID:          "zendesk",
		Name:        "Zendesk Chat",
		Category:    "Customer Support",
		Description: "Customer support and live chat solution",
		Website:     "https://apps.shopify.com/zendesk-chat",
		IconURL:     "https://logo.clearbit.com/zendesk.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"zendesk"},
			ScriptHosts:   []string{"zendesk.com"},
			CSSClasses:    []string{"zopim"},
			DOMAttributes: []string{"zopim"},
		},
	},
	{
		ID:          "wiser-upsell",
		Name:        "Wiser Upsell & Cross-sell",
		Category:    "Conversion Optimization",
		Description: "Increase average order value with smart upsell and cross-sell recommendations.",
		Website:     "https://apps.shopify.com/recommended-products-wiser",
		IconURL:     "https://logo.clearbit.com/wiser.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"wiser-upsell-cross-sell", "wiser", "upsell"},
			ScriptHosts:   []string{"wiser.com"},
			CSSClasses:    []string{},
			DOMAttributes: []string{},
		},
	},
	{
		ID:          "langshop",
		Name:        "LangShop AI Language Translate",
		Category:    "Localization",
		Description: "Translate your store into multiple languages and currencies.",
		Website:     "https://apps.shopify.com/langshop",
		IconURL:     "https://logo.clearbit.com/langshop.app",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"langshop", "translation"},
			ScriptHosts:   []string{"langshop.app"},
			CSSClasses:    []string{},
			DOMAttributes: []string{},
		},
	},
	{
		ID:          "seery",
		Name:        "Predictive AI Analytics: Seery",
		Category:    "Analytics",
		Description: "Seery is an AI-powered app that helps merchants forecast sales & powerful AI-driven insights.",
		Website:     "https://apps.shopify.com/seery",
		IconURL:     "https://logo.clearbit.com/seery.io",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"seery", "predictive analytics"},
			ScriptHosts:   []string{"seery.io"},
			CSSClasses:    []string{},
			DOMAttributes: []string{"seery"},
		},
	},
	{
		ID:          "swym-wishlist",
		Name:        "Swym Wishlist Plus",
		Category:    "Conversion Optimization",
		Description: "Boost sales with an easy-to-set-up Wishlist for all customer touchpoints. Top-rated app.",
		Website:     "https://apps.shopify.com/swym-wishlist-plus",
		IconURL:     "https://logo.clearbit.com/swym.it",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"swym", "wishlist"},
			ScriptHosts:   []string{"swym.it"},
			CSSClasses:    []string{"swym-wishlist"},
			DOMAttributes: []string{"swym-wishlist"},
		},
	},
	{
		ID:          "hotjar",
		Name:        "Hotjar: Heatmaps & Recordings",
		Category:    "Analytics",
		Description: "Heatmaps, session recordings, and user behavior analytics",
		Website:     "https://apps.shopify.com/hotjar",
		IconURL:     "https://logo.clearbit.com/hotjar.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"hotjar"},
			ScriptHosts:   []string{"hotjar.com"},
			CSSClasses:    []string{},
			DOMAttributes: []string{"hotjar"},
		},
	},
	{
		ID:          "intercom",
		Name:        "Intercom",
		Category:    "Customer Support",
		Description: "Customer messaging and support platform",
		Website:     "https://apps.shopify.com/intercom",
		IconURL:     "https://logo.clearbit.com/intercom.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"intercom"},
			ScriptHosts:   []string{"intercom.com"},
			CSSClasses:    []string{"intercom-messenger"},
			DOMAttributes: []string{"intercom-frame"},
		},
	},
	{
		ID:          "mailchimp",
		Name:        "Mailchimp: Email & SMS",
		Category:    "Email Marketing",
		Description: "Email marketing and automation platform",
		Website:     "https://apps.shopify.com/mailchimp",
		IconURL:     "https://logo.clearbit.com/mailchimp.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"mailchimp"},
			ScriptHosts:   []string{"mailchimp.com"},
			CSSClasses:    []string{"mc-embedded-subscribe"},
			DOMAttributes: []string{"mailchimp"},
		},
	},
	{
		ID:          "trustpilot",
		Name:        "Trustpilot Reviews",
		Category:    "Reviews & Ratings",
		Description: "Customer reviews and trust badges",
		Website:     "https://apps.shopify.com/trustpilot-reviews",
		IconURL:     "https://logo.clearbit.com/trustpilot.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"trustpilot"},
			ScriptHosts:   []string{"trustpilot.com"},
			CSSClasses:    []string{"trustpilot-widget"},
			DOMAttributes: []string{"trustpilot-widget"},
		},
	},
	{
		ID:          "aftership",
		Name:        "AfterShip Order Tracking",
		Category:    "Shipping & Fulfillment",
		Description: "Order tracking and shipping notifications",
		Website:     "https://apps.shopify.com/aftership",
		IconURL:     "https://logo.clearbit.com/aftership.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"aftership"},
			ScriptHosts:   []string{"aftership.com"},
			CSSClasses:    []string{"aftership-tracking"},
			DOMAttributes: []string{"aftership"},
		},
	},
	{
		ID:          "shipstation",
		Name:        "ShipStation",
		Category:    "Shipping & Fulfillment",
		Description: "Shipping software and order fulfillment",
		Website:     "https://apps.shopify.com/shipstation",
		IconURL:     "https://logo.clearbit.com/shipstation.com",
		Patterns: DetectionPatterns{
			BlockMarkers:  []string{"shipstation"},
			ScriptHosts:   []string{"shipstation.com"},
			CSSClasses:    []string{},
			DOMAttributes: []string{"shipstation"},
		},
	},
}
