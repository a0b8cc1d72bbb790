package caseforge

import "strings"

// maxPrefixLen bounds the uppercase id prefix derived from a scenario name.
const maxPrefixLen = 10

// IDPrefix builds a short uppercase id prefix from a scenario or domain name.
// Example: "bluetooth pairing and reconnection" -> "BLUETOOTH"
func IDPrefix(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			// first word is usually the most descriptive part
			if sb.Len() > 0 {
				break
			}
		}
	}
	prefix := sb.String()
	if prefix == "" {
		return "SCENARIO"
	}
	if len(prefix) > maxPrefixLen {
		prefix = prefix[:maxPrefixLen]
	}
	return prefix
}

// FileSlug builds a safe lowercase filename stem from a scenario name.
// Example: "bluetooth pairing" -> "bluetooth_pairing"
func FileSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "_")
	if slug == "" {
		return "test_cases"
	}
	return slug
}
