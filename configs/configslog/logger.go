package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) logger.
// SLog aynı logger'ın sugared hali; format string gereken yerlerde kullanılır.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger global logger'ları APP_ENV'e göre başlatır.
// production: JSON çıktı, Info seviyesi; diğer her şey: console çıktı, Debug seviyesi.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını diske yazar (main'de defer edilmeli).
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
