package content

// The product files on disk predate the slug naming convention the site
// later adopted, so category identifiers cannot be mapped to file names by
// slugifying. This table is historical data: do not regenerate it from the
// category list, existing links depend on it.
var storageKeyAliases = map[string]string{
	// canonical storage keys map to themselves
	"carpas":      "carpas",
	"pistas":      "pistas",
	"templetes":   "templetes",
	"entarimados": "entarimados",
	"graderias":   "graderias",
	"plantas":     "plantas",
	"especiales":  "especiales",

	// category ids (legacy accented display names)
	"pistas de baile":      "pistas",
	"graderías":            "graderias",
	"plantas de luz":       "plantas",
	"servicios especiales": "especiales",

	// public slugs
	"pistas-de-baile":      "pistas",
	"plantas-de-luz":       "plantas",
	"servicios-especiales": "especiales",
}

// StorageKeys lists every product collection shipped with the content set,
// in the category display order used across the site.
var StorageKeys = []string{
	"carpas",
	"pistas",
	"templetes",
	"entarimados",
	"graderias",
	"plantas",
	"especiales",
}

// LookupStorageKey returns the physical storage key registered for the given
// identifier, exactly as written (no normalization).
func LookupStorageKey(identifier string) (string, bool) {
	key, ok := storageKeyAliases[identifier]
	return key, ok
}
