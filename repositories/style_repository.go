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

// IStyleRepository sunum teması sorguları için arayüz.
type IStyleRepository interface {
	FindByName(ctx context.Context, name string) (*models.Style, error)
}

// StyleRepository IStyleRepository arayüzünü uygular.
type StyleRepository struct {
	db *gorm.DB
}

// NewStyleRepository yeni bir StyleRepository örneği oluşturur.
func NewStyleRepository() IStyleRepository {
	return &StyleRepository{db: configsdatabase.GetDB()}
}

// NewStyleRepositoryTx transaction'a bağlı bir StyleRepository oluşturur.
func NewStyleRepositoryTx(tx *gorm.DB) IStyleRepository {
	return &StyleRepository{db: tx}
}

// FindByName temayı adına göre bulur.
func (r *StyleRepository) FindByName(ctx context.Context, name string) (*models.Style, error) {
	if name == "" {
		return nil, errors.New("aranacak tema adı boş olamaz")
	}
	var style models.Style
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&style).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("StyleRepository.FindByName: DB error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &style, nil
}

// Arayüz uyumluluğu kontrolü
var _ IStyleRepository = (*StyleRepository)(nil)
