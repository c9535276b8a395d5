package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ipo-subscription-scraper/models"
)

// titleRegexp captures the company name preceding the " IPO" token in a page
// title like "Acme Corp IPO Subscription Status".
var titleRegexp = regexp.MustCompile(`^(.*?) IPO`)

// slugMarker identifies the address path segment that encodes the company
// name, e.g. "acme-corp-ipo".
const slugMarker = "-ipo"

// CompanyName derives the company name for a record. Strategies are tried in
// order, first success wins: the page title pattern, then the address slug.
// It always returns a non-empty string; total failure yields the sentinel.
func CompanyName(title, address string) string {
	if name := nameFromTitle(title); name != "" {
		return name
	}
	if name := nameFromAddress(address); name != "" {
		return name
	}
	return models.Sentinel
}

func nameFromTitle(title string) string {
	m := titleRegexp.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// nameFromAddress title-cases the first path segment containing the slug
// marker, with the marker and dashes stripped: "acme-corp-ipo" → "Acme Corp".
func nameFromAddress(address string) string {
	for _, part := range strings.Split(address, "/") {
		if !strings.Contains(part, slugMarker) {
			continue
		}
		name := strings.ReplaceAll(part, slugMarker, "")
		name = strings.ReplaceAll(name, "-", " ")
		name = strings.TrimSpace(name)
		if name == "" {
			return ""
		}
		return cases.Title(language.English).String(name)
	}
	return ""
}
