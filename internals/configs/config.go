package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	LaravelAPIURL string
	JWTSecret     string
	UploadDir     string
	CorsOrigins   []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	LaravelAPIURL = strings.TrimRight(GetEnv("LARAVEL_API_URL", "http://localhost:8000"), "/")
	JWTSecret = GetEnv("JWT_SECRET")
	UploadDir = GetEnv("UPLOAD_DIR", "./public/uploads")
	CorsOrigins = SplitList(GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"))

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// SplitList memecah "a, b,,c" menjadi ["a","b","c"].
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// DATABASE ENV
// =======================

// DatabaseConfigured true kalau DB_HOST & DB_NAME diisi. Tanpa DB, session disimpan di memori.
func DatabaseConfigured() bool {
	return GetEnv("DB_HOST") != "" && GetEnv("DB_NAME") != ""
}
