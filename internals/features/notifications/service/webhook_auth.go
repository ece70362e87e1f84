package service

import "strings"

// ParseBearerToken mengambil token dari header "Authorization: Bearer xxx".
func ParseBearerToken(authorizationHeader string) string {
	h := strings.TrimSpace(authorizationHeader)
	if h == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// WebhookAuthorized mencocokkan secret header / bearer token dengan daftar
// secret yang sah (exact match).
func WebhookAuthorized(secretHeader, authorizationHeader string, accepted []string) bool {
	secret := strings.TrimSpace(secretHeader)
	bearer := ParseBearerToken(authorizationHeader)
	for _, s := range accepted {
		if (secret != "" && secret == s) || (bearer != "" && bearer == s) {
			return true
		}
	}
	return false
}
