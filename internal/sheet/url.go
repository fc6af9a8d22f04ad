package sheet

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	sheetIDRe = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)
	gidRe     = regexp.MustCompile(`[#&?]gid=([0-9]+)`)
)

// ResolveExportURL converts a human-facing Google Sheet URL into its CSV
// export endpoint. URLs already in export form pass through unchanged.
// Returns ok=false when no sheet id can be extracted; callers must surface
// that as a validation error instead of attempting a fetch.
func ResolveExportURL(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	if strings.Contains(url, "output=csv") || strings.Contains(url, "format=csv") {
		return url, true
	}

	id := ExtractSheetID(url)
	if id == "" {
		return "", false
	}

	gid := "0"
	if m := gidRe.FindStringSubmatch(url); m != nil {
		gid = m[1]
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", id, gid), true
}

// ExtractSheetID returns the /d/<id>/ token of a sheet URL, or "" when the
// URL carries none.
func ExtractSheetID(url string) string {
	m := sheetIDRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
