package handlers // handlers/builder paketi

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"tebrik.link/configs"
	"tebrik.link/configs/configslog"
	"tebrik.link/pkg/flashmessages"
	"tebrik.link/pkg/renderer"
	"tebrik.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BuilderCardHandler kart hazırlama akışını yönetir: form, opsiyonel
// görsel yüklemesi ve paylaşım linkinin üretilmesi.
type BuilderCardHandler struct {
	cardService   services.ICardService
	uploadService services.IUploadService
}

// NewBuilderCardHandler yeni bir BuilderCardHandler örneği oluşturur.
func NewBuilderCardHandler() *BuilderCardHandler {
	return &BuilderCardHandler{
		cardService:   services.NewCardService(),
		uploadService: services.NewUploadService(),
	}
}

// NewBuilderCardHandlerWith bağımlılıkları dışarıdan alır (testler için).
func NewBuilderCardHandlerWith(cardService services.ICardService, uploadService services.IUploadService) *BuilderCardHandler {
	return &BuilderCardHandler{cardService: cardService, uploadService: uploadService}
}

// ShowBuilder kart hazırlama formunu gösterir. Önceki gönderimden kalan
// form verisi ve üretilmiş paylaşım linki varsa view'a aktarılır.
func (h *BuilderCardHandler) ShowBuilder(c *fiber.Ctx) error {
	formData := flashmessages.GetFlashFormData(c)
	generatedLink := flashmessages.GetFlashMessage(c, flashmessages.FlashLinkKey)

	return renderer.Render(c, "builder/create", "layouts/main_layout", fiber.Map{
		"Title":         "Tebrik Kartı Hazırla",
		"FormData":      formData,
		"GeneratedLink": generatedLink,
	})
}

// CreateCard formu doğrular, görsel seçildiyse önce yükler, sonra kartı
// kaydeder ve paylaşım linkini üretir. Sıralama katıdır: validasyon
// hatasında hiçbir ağ çağrısı yapılmaz; yükleme hatasında kart kaydı
// denenmez.
func (h *BuilderCardHandler) CreateCard(c *fiber.Ctx) error {
	draft := services.CardDraft{
		RecipientName: c.FormValue("recipient_name"),
		Message:       c.FormValue("message"),
		SenderName:    c.FormValue("sender_name"),
		CardDate:      c.FormValue("card_date"),
	}
	if caption := strings.TrimSpace(c.FormValue("image_caption")); caption != "" {
		draft.ImageCaption = &caption
	}

	fileHeader, fileErr := c.FormFile("image")
	imageSelected := fileErr == nil && fileHeader != nil && fileHeader.Size > 0

	// Ön doğrulama: görsel henüz yüklenmedi ama caption kuralı için
	// seçili olması yeterli.
	preflight := draft
	if imageSelected {
		pending := "pending"
		preflight.ImageURL = &pending
	}
	if err := services.ValidateCardDraft(preflight); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, draft)
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	// Görsel varsa yükle; başarısız yükleme kart oluşturmayı iptal eder.
	if imageSelected {
		data, readErr := readUpload(fileHeader)
		if readErr != nil {
			configslog.Log.Error("Builder - görsel okunamadı", zap.String("file", fileHeader.Filename), zap.Error(readErr))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Görsel okunamadı, kart kaydedilmedi.")
			_ = flashmessages.SetFlashFormData(c, draft)
			return c.Redirect("/", fiber.StatusSeeOther)
		}

		url, upErr := h.uploadService.Upload(c.UserContext(), services.AssetUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
		if upErr != nil {
			configslog.Log.Error("Builder - görsel yüklemesi başarısız", zap.String("file", fileHeader.Filename), zap.Error(upErr))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Görsel yüklenemedi, kart kaydedilmedi.")
			_ = flashmessages.SetFlashFormData(c, draft)
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		draft.ImageURL = &url
	}

	card, err := h.cardService.CreateCard(c.UserContext(), draft)
	if err != nil {
		if draft.ImageURL != nil {
			// Yükleme geri alınmaz; sahipsiz kalan blob iz bırakması için loglanır.
			configslog.Log.Warn("Kart kaydı başarısız, yüklenen görsel sahipsiz kaldı", zap.String("image_url", *draft.ImageURL))
		}
		configslog.Log.Error("Builder - CreateCard error", zap.Error(err))
		msg := "Kart oluşturulamadı."
		if errors.Is(err, services.ErrCrdInvalidInput) {
			msg = err.Error()
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		_ = flashmessages.SetFlashFormData(c, draft)
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	link := services.BuildViewerLink(configs.GetBaseURL(), card.Key)
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Tebrik kartınız hazır! Linki kopyalayıp paylaşabilirsiniz.")
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashLinkKey, link)
	return c.Redirect("/", fiber.StatusFound)
}

// readUpload multipart dosyasını belleğe okur.
func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
