package routes

import (
	viewerhandlers "tebrik.link/handlers/viewer"

	"github.com/gofiber/fiber/v2"
)

// registerViewerRoutes public kart görüntüleme rotasını tanımlar.
// Alıcı linki açtığında kart kapalı zarf görünümüyle yüklenir.
func registerViewerRoutes(app *fiber.App) {
	handler := viewerhandlers.NewViewerCardHandler()

	app.Get("/card/:key", handler.ShowCard)
}
