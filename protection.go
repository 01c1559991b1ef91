package newsprint

import (
	"fmt"
	"strings"
)

// Vendor names an edge-protection service that can block a download.
type Vendor string

const (
	VendorCloudflare Vendor = "Cloudflare"
	VendorCloudFront Vendor = "CloudFront"
	VendorPerimeterX Vendor = "PerimeterX"
)

// Markers are checked in order; the first hit wins.
var protectionMarkers = []struct {
	marker string
	vendor Vendor
}{
	{"cloudflare", VendorCloudflare},
	{"/cdn-cgi/challenge-platform/h/b/orchestrate/chl_page", VendorCloudflare},
	{"cloud-flare", VendorCloudflare},
	{"CloudFront", VendorCloudFront},
	{"perimeterx", VendorPerimeterX},
}

// DetectProtection returns the vendor whose challenge markup appears in body,
// or "" when none is recognized.
func DetectProtection(body string) Vendor {
	for _, m := range protectionMarkers {
		if strings.Contains(body, m.marker) {
			return m.vendor
		}
	}
	return ""
}

// FailureMessage formats the message recorded for a response with a failing
// status code.
func FailureMessage(body string, statusCode int, url string) string {
	if v := DetectProtection(body); v != "" {
		return "Website protected with " + string(v) + ", url: " + url
	}
	return fmt.Sprintf("Status code %d for url %s", statusCode, url)
}
