package utils

import "strings"

// MaskEmail keeps the first letter of the local part and the domain so that
// log lines stay traceable without exposing the address.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || domain == "" {
		return "***"
	}
	if local == "" {
		return "***@" + domain
	}
	return local[:1] + "***@" + domain
}
