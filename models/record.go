package models

import "time"

// Sentinel marks a field the pipeline could not determine. It is what ends up
// in every output sink for missing values, matching the source site's own
// "N/A" rendering.
const Sentinel = "N/A"

// PageSnapshot holds the rendered markup and title captured for one address
// after the bidding table became visible. It lives only for the duration of
// one address's extraction.
type PageSnapshot struct {
	URL       string
	Title     string
	HTML      string
	FetchedAt time.Time
}

// SubscriptionMetrics are the four subscription ratios pulled from the final
// row of the bidding table. Values are the source's own text (e.g. "2.35x"),
// never parsed into numbers; unresolved fields hold Sentinel.
type SubscriptionMetrics struct {
	QIB   string
	NII   string
	RII   string
	Total string
}

// AllSentinel reports whether no field was resolved at all.
func (m SubscriptionMetrics) AllSentinel() bool {
	return m.QIB == Sentinel && m.NII == Sentinel && m.RII == Sentinel && m.Total == Sentinel
}

// NewSubscriptionMetrics returns metrics with every field unresolved.
func NewSubscriptionMetrics() SubscriptionMetrics {
	return SubscriptionMetrics{QIB: Sentinel, NII: Sentinel, RII: Sentinel, Total: Sentinel}
}

// SubscriptionRecord is one output row: exactly one is produced per input
// address, in input order, whether or not the page could be scraped.
type SubscriptionRecord struct {
	ID          int64
	CompanyName string
	URL         string
	QIB         string
	NII         string
	RII         string
	Total       string
	ScrapedAt   time.Time
}

// NewPendingRecord returns a record for the given address with every field at
// its sentinel. Failure paths append it as-is.
func NewPendingRecord(url string) *SubscriptionRecord {
	return &SubscriptionRecord{
		CompanyName: Sentinel,
		URL:         url,
		QIB:         Sentinel,
		NII:         Sentinel,
		RII:         Sentinel,
		Total:       Sentinel,
		ScrapedAt:   time.Now(),
	}
}

// SetMetrics copies the extracted metric fields onto the record.
func (r *SubscriptionRecord) SetMetrics(m SubscriptionMetrics) {
	r.QIB = m.QIB
	r.NII = m.NII
	r.RII = m.RII
	r.Total = m.Total
}

// Resolved counts how many of the four metric fields hold a real value.
func (r *SubscriptionRecord) Resolved() int {
	n := 0
	for _, v := range []string{r.QIB, r.NII, r.RII, r.Total} {
		if v != Sentinel {
			n++
		}
	}
	return n
}

// RunReport holds the computed summary over a finished batch.
type RunReport struct {
	TotalRecords  int
	FullyResolved int
	Partial       int
	AllSentinel   int
	NamedRecords  int
	FieldCounts   map[string]int
}
