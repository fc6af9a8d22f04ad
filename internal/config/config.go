package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       string
	SheetURL        string        // 初始 Google Sheet URL（可选，首次启动时写入 settings）
	NominatimURL    string
	GeocodeInterval time.Duration // 地理编码请求的最小间隔
}

// Load 加载配置
func Load() *Config {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/tripsheet.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	nominatimURL := os.Getenv("NOMINATIM_URL")
	if nominatimURL == "" {
		nominatimURL = "https://nominatim.openstreetmap.org/search"
	}

	// Nominatim's usage policy caps anonymous clients at one request per
	// second, hence the default.
	interval := time.Second
	if v := os.Getenv("GEOCODE_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		JWTSecret:       jwtSecret,
		SheetURL:        os.Getenv("SHEET_URL"),
		NominatimURL:    nominatimURL,
		GeocodeInterval: interval,
	}
}
