package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	ExcelInputPath string
	URLColumn      string
	XLSXOutputPath string
	CSVOutputPath  string

	PageTimeoutSec   int
	MarkerTimeoutSec int
	ScrollSettleMs   int
	PolitenessMs     int

	ChromeBin string
	Headless  bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "ipo_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		ExcelInputPath: getEnv("EXCEL_INPUT_PATH", "./GMP_enabled.xlsm"),
		URLColumn:      getEnv("URL_COLUMN", "URL_for_IPO_details"),
		XLSXOutputPath: getEnv("XLSX_OUTPUT_PATH", "./output/ipo_subscriptions.xlsx"),
		CSVOutputPath:  getEnv("CSV_OUTPUT_PATH", "./output/ipo_subscriptions.csv"),

		PageTimeoutSec:   getEnvInt("PAGE_TIMEOUT_SEC", 60),
		MarkerTimeoutSec: getEnvInt("MARKER_TIMEOUT_SEC", 30),
		ScrollSettleMs:   getEnvInt("SCROLL_SETTLE_MS", 3000),
		PolitenessMs:     getEnvInt("POLITENESS_DELAY_MS", 1000),

		ChromeBin: getEnv("CHROME_BIN", ""),
		Headless:  getEnvBool("HEADLESS", true),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
