package flashmessages

import (
	"encoding/json"

	"tebrik.link/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	FlashLinkKey     = "flash_link" // oluşturulan paylaşım linki
	flashFormDataKey = "flash_form_data"
)

// getSession store'u locals'tan alıp isteğin session'ını açar.
func getSession(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, fiber.ErrInternalServerError
	}
	return store.Get(c)
}

// SetFlashMessage bir sonraki istekte okunacak mesajı session'a yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage mesajı okur ve session'dan siler (tek kullanımlık).
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := getSession(c)
	if err != nil {
		return ""
	}
	msg, _ := sess.Get(key).(string)
	if msg != "" {
		sess.Delete(key)
		if saveErr := sess.Save(); saveErr != nil {
			configslog.Log.Warn("Flash mesajı silinemedi", zap.Error(saveErr))
		}
	}
	return msg
}

// SetFlashFormData hatalı form gönderiminden sonra formu yeniden doldurmak
// için veriyi JSON olarak session'a yazar.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData kaydedilmiş form verisini map olarak döndürür ve siler.
// Veri yoksa boş map döner.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	result := map[string]interface{}{}
	sess, err := getSession(c)
	if err != nil {
		return result
	}
	raw, _ := sess.Get(flashFormDataKey).(string)
	if raw == "" {
		return result
	}
	sess.Delete(flashFormDataKey)
	if saveErr := sess.Save(); saveErr != nil {
		configslog.Log.Warn("Flash form verisi silinemedi", zap.Error(saveErr))
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		configslog.Log.Warn("Flash form verisi çözümlenemedi", zap.Error(err))
	}
	return result
}
