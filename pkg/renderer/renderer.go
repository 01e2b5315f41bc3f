package renderer

import (
	"net/http"

	"tebrik.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View tarafında kullanılan anahtarlar.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render view'ı verilen layout ile render eder; bekleyen flash mesajlarını
// render verisine ekler. Status verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, view string, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	if _, exists := data[FlashSuccessKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, exists := data[FlashErrorKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
