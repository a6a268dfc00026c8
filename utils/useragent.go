package utils

import (
	"strings"

	ua "github.com/mileusna/useragent"
)

// ParseUserAgent extracts the client name, OS and device class from a
// User-Agent header.
func ParseUserAgent(userAgent string) (client, os, device string) {
	if userAgent == "" {
		return "Unknown Client", "Unknown OS", "Unknown"
	}

	parsedUA := ua.Parse(userAgent)

	client = parsedUA.Name
	if client == "" {
		client = "Unknown Client"
	}

	os = parsedUA.OS
	if os == "" {
		os = "Unknown OS"
	}

	switch {
	case parsedUA.Bot:
		device = "Bot"
	case parsedUA.Mobile:
		device = "Mobile"
	case parsedUA.Tablet:
		device = "Tablet"
	case parsedUA.Desktop:
		device = "Desktop"
	default:
		device = "Other"
	}

	return strings.TrimSpace(client), strings.TrimSpace(os), device
}
