package extract

import (
	"testing"

	"ipo-subscription-scraper/models"
)

func TestCompanyNameFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Acme Corp IPO Subscription Status Live", "Acme Corp"},
		{"Zenith Labs IPO - Bidding Details", "Zenith Labs"},
		{"Mega Industries IPO", "Mega Industries"},
	}

	for _, tt := range tests {
		got := CompanyName(tt.title, "https://example.com/ipo/unrelated/")
		if got != tt.want {
			t.Errorf("CompanyName(%q) = %q; want %q", tt.title, got, tt.want)
		}
	}
}

func TestCompanyNameFallsBackToSlug(t *testing.T) {
	got := CompanyName("Subscription Tracker", "https://example.com/ipo/acme-corp-ipo/")
	if got != "Acme Corp" {
		t.Errorf("slug fallback: got %q, want %q", got, "Acme Corp")
	}
}

func TestCompanyNamePrefersTitleOverSlug(t *testing.T) {
	got := CompanyName("Zenith Labs IPO Live", "https://example.com/ipo/acme-corp-ipo/")
	if got != "Zenith Labs" {
		t.Errorf("got %q, want title-derived %q", got, "Zenith Labs")
	}
}

func TestCompanyNameTotalFailure(t *testing.T) {
	got := CompanyName("", "https://example.com/offers/listing/42")
	if got != models.Sentinel {
		t.Errorf("got %q, want sentinel", got)
	}
}

func TestCompanyNameSlugVariants(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"https://example.com/acme-corp-ipo/subscription", "Acme Corp"},
		{"https://example.com/ipo/blue-chip-foods-ipo-gmp/", "Blue Chip Foods Gmp"},
		{"https://example.com/mono-ipo", "Mono"},
	}

	for _, tt := range tests {
		got := CompanyName("no match here", tt.address)
		if got != tt.want {
			t.Errorf("CompanyName(slug %q) = %q; want %q", tt.address, got, tt.want)
		}
	}
}
