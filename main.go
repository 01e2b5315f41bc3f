package main

import (
	"os"
	"os/signal"
	"syscall"

	"tebrik.link/configs"
	"tebrik.link/configs/configsdatabase"
	"tebrik.link/configs/configslog"
	"tebrik.link/configs/configsstorage"
	"tebrik.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	configsstorage.InitStorage()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:     engine,
		AppName:   "tebrik.link",
		BodyLimit: 10 * 1024 * 1024, // Görsel yüklemeleri için
	})

	app.Static("/static", "./static")

	routes.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		_ = app.Shutdown()
	}()

	addr := ":" + configs.GetAppPort()
	configslog.SLog.Infof("Sunucu dinlemede: %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
