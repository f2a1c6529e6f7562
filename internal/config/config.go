package config

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	DBDSN     string
	LogFile   string
	PublicURL string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "refind.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./refind.log"
	}
	// PublicURL feeds the scan-to-open QR code; default to localhost so the
	// banner works out of the box on a dev machine.
	publicURL := os.Getenv("PUBLIC_URL")
	if publicURL == "" {
		publicURL = "http://localhost:" + port
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, PublicURL: publicURL}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s PUBLIC_URL=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.PublicURL)
	return cfg
}
