package configs

import (
	"os"

	"tebrik.link/configs/configslog"

	"github.com/joho/godotenv"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa sorun değil;
// production ortamında değişkenler dışarıdan verilir.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}
}

// GetAppPort uygulamanın dinleyeceği portu döndürür.
func GetAppPort() string {
	return getEnv("APP_PORT", "3000")
}

// GetBaseURL paylaşım linklerinin üretileceği kök adresi döndürür (şema + host).
func GetBaseURL() string {
	return getEnv("APP_BASE_URL", "http://localhost:3000")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
