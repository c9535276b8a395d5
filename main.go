package main

import (
	"fmt"
	"os"

	"ipo-subscription-scraper/browser"
	"ipo-subscription-scraper/config"
	"ipo-subscription-scraper/extract"
	"ipo-subscription-scraper/scraper/ipo"
	"ipo-subscription-scraper/services"
	"ipo-subscription-scraper/storage"
	"ipo-subscription-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== IPO Subscription Scraper starting ===")
	logger.Info("Config — input: %s | column: %s | marker wait: %ds | politeness: %dms",
		cfg.ExcelInputPath, cfg.URLColumn, cfg.MarkerTimeoutSec, cfg.PolitenessMs)

	source := storage.NewExcelSource(cfg.ExcelInputPath, cfg.URLColumn)
	addresses, err := source.Addresses()
	if err != nil {
		logger.Error("Failed to read IPO addresses: %v", err)
		os.Exit(1)
	}
	if len(addresses) == 0 {
		logger.Error("No IPO addresses found in %s (column %q). Exiting.",
			cfg.ExcelInputPath, cfg.URLColumn)
		os.Exit(1)
	}
	logger.Info("Loaded %d IPO addresses", len(addresses))

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()

	pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v", err)
		logger.Error("Make sure Docker is running: docker compose up -d")
		os.Exit(1)
	}
	defer pgWriter.Close()

	session, err := browser.NewSession(cfg, logger, extract.TableMarker)
	if err != nil {
		logger.Error("Failed to start the browser: %v", err)
		os.Exit(1)
	}
	defer session.Close()

	scraper := ipo.New(cfg, logger, session)
	records := scraper.Run(addresses)

	logger.Info("Scraped %d records — writing outputs...", len(records))

	xlsxWriter := storage.NewXLSXWriter(cfg.XLSXOutputPath)
	if err := xlsxWriter.Write(records); err != nil {
		logger.Error("XLSX write failed: %v", err)
	} else {
		logger.Info("Results saved to %s", cfg.XLSXOutputPath)
	}

	if err := csvWriter.Write(records); err != nil {
		logger.Error("CSV write failed: %v", err)
	} else {
		logger.Info("Results saved to %s", cfg.CSVOutputPath)
	}

	if err := pgWriter.Write(records); err != nil {
		logger.Error("PostgreSQL write failed: %v", err)
	} else {
		logger.Info("Records stored in PostgreSQL (table: ipo_subscriptions)")
	}

	dbRecords, err := pgWriter.FetchAll()
	if err != nil {
		logger.Error("Failed to fetch records from DB for summary: %v", err)
		dbRecords = records
	}

	summarySvc := services.NewSummaryService(logger)
	report := summarySvc.Generate(dbRecords)
	summarySvc.Print(report)

	fmt.Printf("  Done. Results → %s | %s | PostgreSQL (ipo_subscriptions table)\n\n",
		cfg.XLSXOutputPath, cfg.CSVOutputPath)
}
