package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	// Alamat backend Qila (REST API). Semua data diambil dari sini.
	APIBaseURL string

	// Identitas admin (mengikuti backend: satu akun superadmin).
	AdminEmail string

	// Direktori penyimpanan timer quiz per-slug (pengganti localStorage).
	TimerStoreDir string
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

	APIBaseURL = GetEnv("QILA_API_BASE_URL", "http://127.0.0.1:8000/api")
	AdminEmail = GetEnv("QILA_ADMIN_EMAIL", "superadmin@gmail.com")
	TimerStoreDir = GetEnv("QILA_TIMER_STORE_DIR", ".qila-timers")

	if GetEnv("QILA_API_BASE_URL") == "" {
		log.Println("⚠️ QILA_API_BASE_URL belum diset, memakai default", APIBaseURL)
	} else {
		log.Println("✅ QILA_API_BASE_URL berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// KONSTANTA APLIKASI
// =======================
const (
	// Nama cookie tempat bearer token dari backend disimpan.
	TokenCookie = "token"

	// Jeda sebelum kembali ke daftar kursus setelah hasil quiz tampil.
	ResultRedirectDelay = 5 * time.Second
)
