package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	WebhookSecret      string
	ServiceRoleKey     string
	OneSignalAppID     string
	OneSignalRestKey   string
	AppVersion         = "web-1.0.0"
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

	JWTSecret = GetEnv("JWT_SECRET")
	WebhookSecret = GetEnv("SUPABASE_WEBHOOK_SECRET")
	ServiceRoleKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY")
	OneSignalAppID = GetEnv("ONESIGNAL_APP_ID")
	OneSignalRestKey = GetEnv("ONESIGNAL_REST_API_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if WebhookSecret == "" && ServiceRoleKey == "" {
		log.Println("❌ SUPABASE_WEBHOOK_SECRET / SUPABASE_SERVICE_ROLE_KEY belum diset! Webhook akan menolak semua request.")
	} else {
		log.Println("✅ Webhook secret berhasil dimuat.")
	}

	if OneSignalAppID == "" || OneSignalRestKey == "" {
		log.Println("❌ ONESIGNAL_APP_ID / ONESIGNAL_REST_API_KEY belum diset!")
	} else {
		log.Println("✅ Konfigurasi OneSignal berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// AcceptedWebhookSecrets mengembalikan daftar secret yang sah untuk webhook
// (dedicated secret dan/atau service role key), sudah di-trim dan dedupe.
func AcceptedWebhookSecrets() []string {
	candidates := []string{WebhookSecret, ServiceRoleKey}
	out := make([]string, 0, len(candidates))
	seen := map[string]bool{}
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
