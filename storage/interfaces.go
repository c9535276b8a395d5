package storage

import "ipo-subscription-scraper/models"

// RecordWriter is the interface any output sink must satisfy.
type RecordWriter interface {
	Write(records []*models.SubscriptionRecord) error
	Close() error
}

// AddressSource supplies the ordered list of IPO detail page addresses.
type AddressSource interface {
	Addresses() ([]string, error)
}
