package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// defaultFontURL points at a TTF with Latin-Extended glyphs so exported PDFs
// render accented text. Fetched lazily, once per process.
const defaultFontURL = "https://cdnjs.cloudflare.com/ajax/libs/pdfmake/0.1.66/fonts/Roboto/Roboto-Regular.ttf"

type Config struct {
	BackendURL string // REST backend root, e.g. "http://localhost:8000"
	FontURL    string // remote TTF used by the report exporter
	DataDir    string // holds the session database
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		BackendURL: getenvDefault("PREPAI_BACKEND_URL", "http://localhost:8000"),
		FontURL:    getenvDefault("PREPAI_FONT_URL", defaultFontURL),
		DataDir:    getenvDefault("PREPAI_DATA_DIR", defaultDataDir()),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("config: cannot resolve home directory: %v", err)
	}
	return filepath.Join(home, ".prepai")
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
