package signatures

// defaultThemes maps theme_store_id values to official theme store entries.
var defaultThemes = []Theme{
	// Free themes
	{StoreID: 828, Name: "Dawn", Tier: "free", StoreURL: "https://themes.shopify.com/themes/dawn"},
	{StoreID: 796, Name: "Craft", Tier: "free", StoreURL: "https://themes.shopify.com/themes/craft"},
	{StoreID: 887, Name: "Sense", Tier: "free", StoreURL: "https://themes.shopify.com/themes/sense"},
	{StoreID: 775, Name: "Studio", Tier: "free", StoreURL: "https://themes.shopify.com/themes/studio"},
	{StoreID: 829, Name: "Colorblock", Tier: "free", StoreURL: "https://themes.shopify.com/themes/colorblock"},
	{StoreID: 380, Name: "Debut", Tier: "free", StoreURL: "https://themes.shopify.com/themes/debut"},
	{StoreID: 321, Name: "Minimal", Tier: "free", StoreURL: "https://themes.shopify.com/themes/minimal"},

	// Paid themes
	{StoreID: 730, Name: "Impulse", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/impulse"},
	{StoreID: 578, Name: "Brooklyn", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/brooklyn"},
	{StoreID: 123, Name: "Prestige", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/prestige"},
	{StoreID: 456, Name: "Turbo", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/turbo"},
	{StoreID: 789, Name: "Warehouse", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/warehouse"},
	{StoreID: 654, Name: "Pop", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/pop"},
	{StoreID: 987, Name: "Motion", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/motion"},
	{StoreID: 147, Name: "Testament", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/testament"},
	{StoreID: 258, Name: "Refresh", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/refresh"},
	{StoreID: 369, Name: "Spotlight", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/spotlight"},
	{StoreID: 741, Name: "Empire", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/empire"},
	{StoreID: 852, Name: "Avenue", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/avenue"},
	{StoreID: 963, Name: "Parallax", Tier: "paid", StoreURL: "https://themes.shopify.com/themes/parallax"},
}
