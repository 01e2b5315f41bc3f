// services/card_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tebrik.link/configs/configsdatabase"
	"tebrik.link/configs/configslog"
	"tebrik.link/models"
	"tebrik.link/repositories"
	"tebrik.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "tebrik kartı bulunamadı"
	ErrCardCreationFailed CardServiceError = "tebrik kartı oluşturulamadı"
	ErrCrdInvalidInput    CardServiceError = "geçersiz kart verisi"
	ErrCrdKeyGeneration   CardServiceError = "kart için link anahtarı üretilemedi"
	ErrCrdStyleNotFound   CardServiceError = "kart teması bulunamadı"
)

// CardKeyLength public link anahtarının uzunluğu (/card/{key}).
const CardKeyLength = 20

// FieldValidationError hangi form alanının geçersiz olduğunu taşır.
// Form tarafında alan bazlı hata göstermek için kullanılır.
type FieldValidationError struct {
	Field  string
	Reason string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// CardDraft kullanıcı formundan gelen, henüz kaydedilmemiş kart taslağı.
// ImageURL yükleme başarılıysa doldurulur; görsel yoksa nil kalır.
type CardDraft struct {
	RecipientName string
	Message       string
	ImageURL      *string
	ImageCaption  *string
	SenderName    string
	CardDate      string
}

// ValidateCardDraft taslağı kurallara göre doğrular. Saf fonksiyondur:
// ağ/veritabanı erişimi yoktur, aynı taslak için her çağrıda aynı sonucu verir.
// Dört zorunlu alan trim sonrası boş olamaz; ImageCaption yalnızca
// ImageURL doluyken kabul edilir.
func ValidateCardDraft(draft CardDraft) error {
	if strings.TrimSpace(draft.RecipientName) == "" {
		return &FieldValidationError{Field: "recipientName", Reason: "alıcı adı zorunludur"}
	}
	if strings.TrimSpace(draft.Message) == "" {
		return &FieldValidationError{Field: "message", Reason: "mesaj zorunludur"}
	}
	if strings.TrimSpace(draft.SenderName) == "" {
		return &FieldValidationError{Field: "senderName", Reason: "gönderen adı zorunludur"}
	}
	if strings.TrimSpace(draft.CardDate) == "" {
		return &FieldValidationError{Field: "cardDate", Reason: "tarih zorunludur"}
	}
	if draft.ImageURL == nil && draft.ImageCaption != nil && strings.TrimSpace(*draft.ImageCaption) != "" {
		return &FieldValidationError{Field: "imageCaption", Reason: "görsel olmadan görsel açıklaması verilemez"}
	}
	return nil
}

// ICardService tebrik kartı işlemleri için arayüz.
// Kartlar oluşturulduktan sonra değiştirilmez; güncelleme/silme yok.
type ICardService interface {
	CreateCard(ctx context.Context, draft CardDraft) (*models.Card, error)
	GetCardByKey(ctx context.Context, key string) (*models.Card, error)
	GetCardCount(ctx context.Context) (int64, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo      repositories.ICardRepository
	styleRepo repositories.IStyleRepository
	db        *gorm.DB // Transaction yönetimi için
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	return NewCardServiceWithDB(configsdatabase.GetDB())
}

// NewCardServiceWithDB verilen bağlantı üzerinde çalışan bir CardService oluşturur.
// Testler in-memory sqlite bağlantısı geçirir.
func NewCardServiceWithDB(db *gorm.DB) ICardService {
	return &CardService{
		repo:      repositories.NewCardRepositoryTx(db),
		styleRepo: repositories.NewStyleRepositoryTx(db),
		db:        db,
	}
}

// CreateCard taslağı doğrular ve kartı, detayını ve benzersiz link
// anahtarını TEK BİR TRANSACTION içinde oluşturur.
// Görsel yüklemesi varsa bu metod çağrılmadan ÖNCE tamamlanmış olmalıdır;
// yarım yükleme ile kart kaydı oluşmaz.
func (s *CardService) CreateCard(ctx context.Context, draft CardDraft) (*models.Card, error) {
	// 1. Girdi Validasyonu (ağ erişiminden önce, fail fast)
	if err := ValidateCardDraft(draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrdInvalidInput, err)
	}

	var createdCard *models.Card

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		styleRepoTx := repositories.NewStyleRepositoryTx(tx)

		// a. Tema kaydını al (şimdilik tek tema)
		style, err := styleRepoTx.FindByName(ctx, models.StyleNameBirthday)
		if err != nil {
			configslog.Log.Error("Kart teması bulunamadı", zap.String("style", models.StyleNameBirthday), zap.Error(err))
			return ErrCrdStyleNotFound
		}

		// b. Benzersiz link anahtarı üret (transaction içinde kontrol edilir)
		var cardKey string
		maxKeyAttempts := 5
		for i := 0; i < maxKeyAttempts; i++ {
			keyAttempt, keyErr := utils.GenerateSecureRandomString(CardKeyLength)
			if keyErr != nil {
				return ErrCrdKeyGeneration
			}
			exists, existsErr := cardRepoTx.KeyExists(ctx, keyAttempt)
			if existsErr != nil {
				configslog.Log.Error("Kart anahtarı benzersizlik kontrolü hatası", zap.Error(existsErr))
				return ErrCrdKeyGeneration
			}
			if !exists {
				cardKey = keyAttempt
				break
			}
			configslog.Log.Warn("Kart anahtarı çakışması, yeniden deneniyor...", zap.String("key", keyAttempt))
		}
		if cardKey == "" {
			return ErrCrdKeyGeneration
		}

		// c. Kartı ve detayını oluştur (alanlar trim edilerek yazılır)
		card := models.Card{
			Key:       cardKey,
			StyleID:   style.ID,
			IsEnabled: true,
			Detail:    buildDetail(draft),
		}
		if err := cardRepoTx.CreateCard(ctx, &card); err != nil {
			configslog.Log.Error("Kart kaydı oluşturulamadı", zap.Error(err))
			return ErrCardCreationFailed
		}

		card.Style = *style
		createdCard = &card
		return nil // Commit
	})

	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Tebrik kartı oluşturuldu: CardID %d, Key: %s", createdCard.ID, createdCard.Key)
	return createdCard, nil
}

// buildDetail taslaktan detay kaydını üretir. ImageURL yoksa
// ImageCaption da null yazılır (birlikte dolu / birlikte boş kuralı).
func buildDetail(draft CardDraft) models.CardDetail {
	detail := models.CardDetail{
		RecipientName: strings.TrimSpace(draft.RecipientName),
		Message:       strings.TrimSpace(draft.Message),
		SenderName:    strings.TrimSpace(draft.SenderName),
		CardDate:      strings.TrimSpace(draft.CardDate),
	}
	if draft.ImageURL != nil && *draft.ImageURL != "" {
		detail.ImageURL = draft.ImageURL
		if draft.ImageCaption != nil && strings.TrimSpace(*draft.ImageCaption) != "" {
			caption := strings.TrimSpace(*draft.ImageCaption)
			detail.ImageCaption = &caption
		}
	}
	return detail
}

// GetCardByKey public link anahtarı ile kartı getirir.
// Bulunamayan, kapatılmış ve hatalı formatlı anahtarların hepsi
// dışarıya ErrCardNotFound olarak görünür.
func (s *CardService) GetCardByKey(ctx context.Context, key string) (*models.Card, error) {
	if len(key) != CardKeyLength {
		return nil, ErrCardNotFound
	}

	card, err := s.repo.FindCardByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardByKey: repo error", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	if !card.IsEnabled {
		configslog.SLog.Infof("Kapatılmış karta erişim denemesi: key=%s", key)
		return nil, ErrCardNotFound
	}

	return card, nil
}

// GetCardCount toplam kart sayısını alır.
func (s *CardService) GetCardCount(ctx context.Context) (int64, error) {
	count, err := s.repo.GetCardCount(ctx)
	if err != nil {
		configslog.Log.Error("Kart sayısı alınırken hata", zap.Error(err))
		return 0, err
	}
	return count, nil
}

var _ ICardService = (*CardService)(nil)
