package model

import "strings"

// familySeparator splits a model name into its family and variant segments.
const familySeparator = "-"

// Family returns the first hyphen-delimited segment of a model name.
// For example "gpt-4-1106-preview" becomes "gpt" and "llama3-70b-8192"
// becomes "llama3". A name without a hyphen is its own family.
func Family(name string) string {
	family, _, _ := strings.Cut(name, familySeparator)
	return family
}

// InFamily reports whether candidate belongs to the family of name.
// An empty family, from an empty name or one starting with a hyphen, never
// matches. A bare prefix test would match every entry there and price an
// unknown model at whichever family sorts first; such names fall through
// to the zero floor instead.
func InFamily(candidate, name string) bool {
	family := Family(name)
	if family == "" {
		return false
	}
	return strings.HasPrefix(candidate, family)
}
