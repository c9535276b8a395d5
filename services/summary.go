package services

import (
	"fmt"
	"strings"

	"ipo-subscription-scraper/models"
	"ipo-subscription-scraper/utils"
)

type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate computes the run report over a finished record set. Ratio text is
// only ever compared against the sentinel, never parsed.
func (s *SummaryService) Generate(records []*models.SubscriptionRecord) *models.RunReport {
	report := &models.RunReport{
		FieldCounts: map[string]int{"QIB": 0, "NII": 0, "RII": 0, "Total": 0},
	}

	if len(records) == 0 {
		return report
	}

	report.TotalRecords = len(records)

	for _, r := range records {
		switch r.Resolved() {
		case 4:
			report.FullyResolved++
		case 0:
			report.AllSentinel++
		default:
			report.Partial++
		}

		if r.CompanyName != models.Sentinel {
			report.NamedRecords++
		}
		if r.QIB != models.Sentinel {
			report.FieldCounts["QIB"]++
		}
		if r.NII != models.Sentinel {
			report.FieldCounts["NII"]++
		}
		if r.RII != models.Sentinel {
			report.FieldCounts["RII"]++
		}
		if r.Total != models.Sentinel {
			report.FieldCounts["Total"]++
		}
	}

	return report
}

func (s *SummaryService) Print(r *models.RunReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 IPO SUBSCRIPTION SCRAPE SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Pages processed   : \033[1m%d\033[0m\n", r.TotalRecords)
	fmt.Printf("  Fully resolved    : \033[1;32m%d\033[0m\n", r.FullyResolved)
	fmt.Printf("  Partially resolved: \033[1;33m%d\033[0m\n", r.Partial)
	fmt.Printf("  No data extracted : \033[1;31m%d\033[0m\n", r.AllSentinel)
	fmt.Printf("  Company names     : \033[1m%d\033[0m\n", r.NamedRecords)
	fmt.Println()

	// Per-field resolution
	fmt.Printf("\033[1;33m  Fields Resolved\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.TotalRecords == 0 {
		fmt.Printf("  No records\n")
	} else {
		for _, field := range []string{"QIB", "NII", "RII", "Total"} {
			count := r.FieldCounts[field]
			bar := strings.Repeat("█", count)
			fmt.Printf("  %-6s %s (%d/%d)\n", field, bar, count, r.TotalRecords)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}
