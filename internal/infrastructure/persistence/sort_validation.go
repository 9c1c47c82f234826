package persistence

import "strings"

// Sort field whitelists per model. Queries only ever interpolate values
// validated against these, never raw user input.
var (
	SchemeSortFields = map[string]bool{
		"created_at":    true,
		"updated_at":    true,
		"scheme_number": true,
		"name":          true,
		"total_amount":  true,
		"start_date":    true,
	}
)

// ValidateSortField returns the field if whitelisted, otherwise the fallback
func ValidateSortField(field string, whitelist map[string]bool, fallback string) string {
	if whitelist[field] {
		return field
	}
	return fallback
}

// ValidateSortOrder normalizes a sort direction to ASC or DESC
func ValidateSortOrder(dir string) string {
	if strings.EqualFold(dir, "asc") {
		return "ASC"
	}
	return "DESC"
}
