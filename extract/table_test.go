package extract

import (
	"fmt"
	"testing"

	"ipo-subscription-scraper/models"
)

func biddingPage(rows ...string) string {
	body := ""
	for _, r := range rows {
		body += "<tr>" + r + "</tr>"
	}
	return fmt.Sprintf(`<html><body>
		<table>
			<caption>%s</caption>
			<tbody>%s</tbody>
		</table>
	</body></html>`, TableMarker, body)
}

func fullRow(qib, nii, rii, total string) string {
	return fmt.Sprintf(
		`<td data-title="QIB">%s</td><td data-title="NII">%s</td>`+
			`<td data-title="RII">%s</td><td data-title="Total">%s</td>`,
		qib, nii, rii, total)
}

func TestSubscriptionTableFullRow(t *testing.T) {
	m := SubscriptionTable(biddingPage(fullRow("2.35x", "1.10x", "0.95x", "1.60x")))

	want := models.SubscriptionMetrics{QIB: "2.35x", NII: "1.10x", RII: "0.95x", Total: "1.60x"}
	if m != want {
		t.Errorf("metrics: got %+v, want %+v", m, want)
	}
}

func TestSubscriptionTableLastRowWins(t *testing.T) {
	m := SubscriptionTable(biddingPage(
		fullRow("0.10x", "0.05x", "0.20x", "0.12x"),
		fullRow("0.80x", "0.40x", "1.10x", "0.75x"),
		fullRow("4.20x", "2.91x", "3.15x", "3.44x"),
	))

	if m.QIB != "4.20x" || m.Total != "3.44x" {
		t.Errorf("expected final-row values, got %+v", m)
	}
}

func TestSubscriptionTablePartialRow(t *testing.T) {
	m := SubscriptionTable(biddingPage(`<td data-title="QIB Subscription">1.25x</td>`))

	if m.QIB != "1.25x" {
		t.Errorf("QIB: got %q, want %q", m.QIB, "1.25x")
	}
	for name, got := range map[string]string{"NII": m.NII, "RII": m.RII, "Total": m.Total} {
		if got != models.Sentinel {
			t.Errorf("%s: got %q, want sentinel", name, got)
		}
	}
}

func TestSubscriptionTableMissingCaption(t *testing.T) {
	html := `<html><body><table><caption>Some other table</caption>
		<tbody><tr><td data-title="QIB">9.99x</td></tr></tbody></table></body></html>`

	m := SubscriptionTable(html)
	if !m.AllSentinel() {
		t.Errorf("expected all-sentinel metrics without marker caption, got %+v", m)
	}
}

func TestSubscriptionTableEmptyBody(t *testing.T) {
	m := SubscriptionTable(biddingPage())
	if !m.AllSentinel() {
		t.Errorf("expected all-sentinel metrics for empty tbody, got %+v", m)
	}
}

func TestSubscriptionTableTrimsWhitespace(t *testing.T) {
	m := SubscriptionTable(biddingPage(`<td data-title="Total">  1.60x
	</td>`))
	if m.Total != "1.60x" {
		t.Errorf("Total: got %q, want %q", m.Total, "1.60x")
	}
}

func TestSubscriptionTableIdempotent(t *testing.T) {
	html := biddingPage(fullRow("2.35x", "1.10x", "0.95x", "1.60x"))

	first := SubscriptionTable(html)
	second := SubscriptionTable(html)
	if first != second {
		t.Errorf("extraction not idempotent: %+v vs %+v", first, second)
	}
}
