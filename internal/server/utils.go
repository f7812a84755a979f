package server

import "strings"

// GetContentType returns the content type for the file types the server
// actually serves: rendered pages, the chart PNG export and the health JSON
func GetContentType(filePath string) string {
	switch {
	case strings.HasSuffix(filePath, ".html"):
		return "text/html; charset=utf-8"
	case strings.HasSuffix(filePath, ".png"):
		return "image/png"
	case strings.HasSuffix(filePath, ".json"):
		return "application/json"
	}
	return "application/octet-stream"
}
