package routes

import (
	"tebrik.link/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New())  // Panic yakalama
	app.Use(logger.New())             // İstek loglama
	app.Use(initializeSessionStore()) // Flash mesajları için session store

	// --- Rota Grupları ---
	registerBuilderRoutes(app) // Kart hazırlama (ana sayfa + oluşturma)
	registerViewerRoutes(app)  // Public /card/:key rotası

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionStore session store'u locals'a koyar; flash mesajları
// buradan erişir.
func initializeSessionStore() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		return c.Next()
	}
}

// notFoundHandler eşleşmeyen istekleri karşılar.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
}
