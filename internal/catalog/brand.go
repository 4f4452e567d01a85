package catalog

// Brand carries everything that differs between the rebranded site
// variants. The catalog generator, SEO copy and contact strings are all
// templated from it, so a variant is a configuration change rather than
// a parallel implementation.
type Brand struct {
	// Full brand name, e.g. "LSV Battery Depot".
	Name string
	// Short mark used in product names, e.g. "TIGON" for
	// "TIGON Batteries".
	Mark string
	// URL- and ID-safe slug, e.g. "lsv-battery-depot".
	Slug string
	// Sales phone number rendered into meta descriptions.
	Phone string
}
