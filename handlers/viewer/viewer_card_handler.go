package handlers // handlers/viewer paketi

import (
	"errors"

	"tebrik.link/configs/configslog"
	"tebrik.link/models"
	"tebrik.link/pkg/cardsession"
	"tebrik.link/pkg/renderer"
	"tebrik.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Temaya göre çalınacak müzik. Yeni temalar buraya eklenir.
var styleMusic = map[string]string{
	models.StyleNameBirthday: "/static/birthday-music.mov",
}

// ViewerCardHandler public kart görüntüleme isteklerini yönetir.
type ViewerCardHandler struct {
	cardService services.ICardService
}

// NewViewerCardHandler yeni bir ViewerCardHandler örneği oluşturur.
func NewViewerCardHandler() *ViewerCardHandler {
	return &ViewerCardHandler{cardService: services.NewCardService()}
}

// NewViewerCardHandlerWith servisi dışarıdan alır (testler için).
func NewViewerCardHandlerWith(cardService services.ICardService) *ViewerCardHandler {
	return &ViewerCardHandler{cardService: cardService}
}

// ShowCard /card/:key isteğini karşılar. Kart bulunursa kapalı zarf
// görünümü render edilir; bulunamayan kart da geçici bir okuma hatası da
// izleyiciyi ana sayfaya yönlendirir (ikisi UI sınırında aynı kabul edilir).
func (h *ViewerCardHandler) ShowCard(c *fiber.Ctx) error {
	key := c.Params("key")
	if len(key) != services.CardKeyLength {
		configslog.SLog.Warnf("Geçersiz formatta kart anahtarı denendi: %s", key)
		return c.Redirect("/", fiber.StatusFound)
	}

	card, err := h.cardService.GetCardByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return c.Redirect("/", fiber.StatusFound)
		}
		configslog.Log.Error("ShowCard: GetCardByKey error", zap.String("key", key), zap.Error(err))
		return c.Redirect("/", fiber.StatusFound)
	}

	musicURL := styleMusic[card.Style.Name]
	if musicURL == "" {
		musicURL = styleMusic[models.StyleNameBirthday]
	}

	// Görüntüleme oturumu: başlangıç durumu kapalı zarf. Açılış ve
	// unfurl geçişleri istemci tarafında aynı sekansla yürür; View()
	// render edilecek ilk durumu belirler.
	sess := cardsession.NewViewing(cardsession.NewLoopTrack(musicURL), cardsession.NewScheduler())
	defer sess.Teardown()
	vis := sess.View()

	return renderer.Render(c, "public/card_view", "layouts/main_layout", fiber.Map{
		"Title":            "Size bir tebrik kartı var",
		"Card":             card,
		"Detail":           card.Detail,
		"MusicURL":         musicURL,
		"ShowClosedLetter": vis.ShowClosedLetter,
		"ShowCard":         vis.ShowCard,
		"Unfurled":         vis.Unfurled,
	})
}
