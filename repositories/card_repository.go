// repositories/card_repository.go
package repositories

import (
	"context"
	"errors"

	"tebrik.link/configs/configsdatabase"
	"tebrik.link/configs/configslog"
	"tebrik.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository tebrik kartı veritabanı işlemleri için arayüz.
// Kartlar oluşturulduktan sonra değiştirilmez; bu yüzden yalnızca
// oluşturma ve okuma metodları var.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *models.Card) error
	FindCardByID(ctx context.Context, id uint) (*models.Card, error)
	FindCardByKey(ctx context.Context, key string) (*models.Card, error)
	KeyExists(ctx context.Context, key string) (bool, error)
	GetCardCount(ctx context.Context) (int64, error)
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	return &CardRepository{db: configsdatabase.GetDB()}
}

// NewCardRepositoryTx transaction'a bağlı bir CardRepository oluşturur.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return &CardRepository{db: tx}
}

// CreateCard kartı ve detayını kaydeder (Detail cascade ile yazılır).
func (r *CardRepository) CreateCard(ctx context.Context, card *models.Card) error {
	if card == nil {
		return errors.New("oluşturulacak kart nil olamaz")
	}
	return r.db.WithContext(ctx).Create(card).Error
}

// FindCardByID kartı ID ile bulur (Detail ve Style ile).
func (r *CardRepository) FindCardByID(ctx context.Context, id uint) (*models.Card, error) {
	if id == 0 {
		return nil, errors.New("geçersiz kart ID")
	}
	var card models.Card
	err := r.db.WithContext(ctx).Preload("Detail").Preload("Style").First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindCardByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindCardByKey kartı public link anahtarı ile bulur (Detail ve Style ile).
func (r *CardRepository) FindCardByKey(ctx context.Context, key string) (*models.Card, error) {
	if key == "" {
		return nil, errors.New("aranacak kart anahtarı boş olamaz")
	}
	var card models.Card
	err := r.db.WithContext(ctx).Preload("Detail").Preload("Style").Where("key = ?", key).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindCardByKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// KeyExists verilen anahtarın veritabanında olup olmadığını kontrol eder.
func (r *CardRepository) KeyExists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("kontrol edilecek kart anahtarı boş olamaz")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Where("key = ?", key).Count(&count).Error
	if err != nil {
		configslog.Log.Error("CardRepository.KeyExists: DB error", zap.String("key", key), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// GetCardCount toplam kart sayısını alır.
func (r *CardRepository) GetCardCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)
