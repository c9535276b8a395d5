package extract

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"ipo-subscription-scraper/models"
)

// TableMarker is the caption phrase that identifies the subscription table on
// an IPO detail page. The browser session waits for it and the extractor
// locates the table by it.
const TableMarker = "IPO Bidding Live Updates from BSE, NSE"

// Cell markers matched against each td's data-title attribute.
const (
	qibMarker   = "QIB"
	niiMarker   = "NII"
	riiMarker   = "RII"
	totalMarker = "Total"
)

// SubscriptionTable extracts the four subscription ratios from rendered
// markup. It is a pure function of the markup: no caption, no table, or no
// rows yields all-sentinel metrics rather than an error, and each field
// resolves independently of the others.
//
// The LAST tbody row is selected because bidding data accrues over the offer
// period and the table's final row holds the cumulative figures. This assumes
// rows are ordered chronologically ascending, which the source has always
// done but does not guarantee.
func SubscriptionTable(html string) models.SubscriptionMetrics {
	metrics := models.NewSubscriptionMetrics()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return metrics
	}

	caption := doc.Find("caption").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), TableMarker)
	}).First()
	if caption.Length() == 0 {
		return metrics
	}

	table := caption.Closest("table")
	if table.Length() == 0 {
		return metrics
	}

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		return metrics
	}

	last := rows.Last()
	metrics.QIB = cellText(last, qibMarker)
	metrics.NII = cellText(last, niiMarker)
	metrics.RII = cellText(last, riiMarker)
	metrics.Total = cellText(last, totalMarker)
	return metrics
}

// cellText returns the collapsed text of the row cell whose data-title
// attribute contains marker, or the sentinel when no such cell exists.
func cellText(row *goquery.Selection, marker string) string {
	out := models.Sentinel
	row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		dt, ok := td.Attr("data-title")
		if !ok || !strings.Contains(dt, marker) {
			return true
		}
		out = collapseSpace(td.Text())
		return false
	})
	return out
}

// collapseSpace trims and normalizes internal whitespace runs to one space.
func collapseSpace(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
