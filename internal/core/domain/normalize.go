package domain

import "strings"

// NormalizeName reduces a display name to its comparable form: trimmed and
// lower-cased. Used only for comparison; stored names keep their original
// casing.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
