package api

import "strings"

// ImageURL resolves a post's image reference to an absolute URL. The service
// returns either an absolute URL or a path relative to its origin.
func ImageURL(imagePath string) string {
	if imagePath == "" {
		return ""
	}
	if strings.HasPrefix(imagePath, "http") {
		return imagePath
	}

	origin := strings.TrimSuffix(apiHost, "/api")
	if !strings.HasPrefix(imagePath, "/") {
		imagePath = "/" + imagePath
	}

	return origin + imagePath
}
