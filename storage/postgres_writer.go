package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"ipo-subscription-scraper/models"
)

// PostgresWriter persists subscription records to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS ipo_subscriptions (
			id           SERIAL PRIMARY KEY,
			company_name TEXT        NOT NULL,
			url          TEXT        NOT NULL,
			qib          VARCHAR(32) NOT NULL DEFAULT 'N/A',
			nii          VARCHAR(32) NOT NULL DEFAULT 'N/A',
			rii          VARCHAR(32) NOT NULL DEFAULT 'N/A',
			total        VARCHAR(32) NOT NULL DEFAULT 'N/A',
			scraped_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_ipo_subscriptions_company ON ipo_subscriptions(company_name);
		CREATE INDEX IF NOT EXISTS idx_ipo_subscriptions_scraped ON ipo_subscriptions(scraped_at);
	`)
	return err
}

// Clear deletes all existing records from the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM ipo_subscriptions")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts the record set, clearing the previous run first.
func (pw *PostgresWriter) Write(records []*models.SubscriptionRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.insertBatch(records[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.SubscriptionRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*7)

	for idx, r := range batch {
		base := idx * 7
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			r.CompanyName, r.URL, r.QIB, r.NII, r.RII, r.Total, r.ScrapedAt)
	}

	query := fmt.Sprintf(`
		INSERT INTO ipo_subscriptions (company_name, url, qib, nii, rii, total, scraped_at)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves all stored records — used by the summary service.
func (pw *PostgresWriter) FetchAll() ([]*models.SubscriptionRecord, error) {
	rows, err := pw.db.Query(`
		SELECT id, company_name, url, qib, nii, rii, total, scraped_at
		FROM ipo_subscriptions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var records []*models.SubscriptionRecord
	for rows.Next() {
		r := &models.SubscriptionRecord{}
		if err := rows.Scan(
			&r.ID, &r.CompanyName, &r.URL, &r.QIB, &r.NII,
			&r.RII, &r.Total, &r.ScrapedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
