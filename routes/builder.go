package routes

import (
	builderhandlers "tebrik.link/handlers/builder"

	"github.com/gofiber/fiber/v2"
)

// registerBuilderRoutes kart hazırlama rotalarını tanımlar.
func registerBuilderRoutes(app *fiber.App) {
	handler := builderhandlers.NewBuilderCardHandler()

	app.Get("/", handler.ShowBuilder)
	app.Post("/cards", handler.CreateCard)
}
