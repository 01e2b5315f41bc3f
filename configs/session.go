package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession flash mesajları için kullanılan session store'u oluşturur.
// Bu sistemde oturum açma yok; store yalnızca form hatalarını ve
// oluşturulan paylaşım linkini bir sonraki isteğe taşır.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     30 * time.Minute,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
