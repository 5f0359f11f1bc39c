package entity

import "strings"

// NormalizePhone canonicalises a Russian phone number to the +7XXXXXXXXXX form used for storage and lookup.
// Inputs that do not look like one are returned unchanged.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	switch {
	case strings.HasPrefix(cleaned, "7") && len(cleaned) == 11:
		return "+" + cleaned
	case strings.HasPrefix(cleaned, "8") && len(cleaned) == 11:
		return "+7" + cleaned[1:]
	case strings.HasPrefix(cleaned, "+7") && len(cleaned) == 12:
		return cleaned
	default:
		return raw
	}
}

// LooksLikeEmail reports whether a login identifier should be matched against the email column.
func LooksLikeEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}
