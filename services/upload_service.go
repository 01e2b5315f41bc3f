// services/upload_service.go
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tebrik.link/configs/configslog"
	"tebrik.link/configs/configsstorage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadServiceError özel yükleme hataları
type UploadServiceError string

func (e UploadServiceError) Error() string { return string(e) }

const (
	ErrUploadEmptyFile UploadServiceError = "yüklenecek dosya boş"
	ErrUploadFailed    UploadServiceError = "görsel yüklenemedi"
	ErrUploadNoURL     UploadServiceError = "yüklenen görsel için public URL alınamadı"
)

// IBlobStore servis katmanının blob deposundan beklediği davranış.
// configsstorage.S3BlobStore bu arayüzü sağlar; testler sahte depo geçirir.
type IBlobStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}

// AssetUpload yüklenecek görselin içeriği ve bildirilen adı.
type AssetUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// IUploadService görsel yükleme hattı için arayüz.
type IUploadService interface {
	Upload(ctx context.Context, asset AssetUpload) (string, error)
}

// UploadService görseli blob deposuna tam bir kez yazar ve public URL döndürür.
// Başarısız yükleme kart oluşturmayı tamamen iptal eder; yarım yükleme ile
// kart kaydı oluşmaz. Otomatik yeniden deneme yoktur.
type UploadService struct {
	store IBlobStore
}

// NewUploadService aktif S3 deposunu kullanan bir UploadService oluşturur.
func NewUploadService() IUploadService {
	return NewUploadServiceWithStore(configsstorage.GetBlobStore())
}

// NewUploadServiceWithStore verilen depoyu kullanan bir UploadService oluşturur.
func NewUploadServiceWithStore(store IBlobStore) IUploadService {
	return &UploadService{store: store}
}

// Upload görseli çakışmaya dayanıklı bir yola yazar ve public URL'sini döndürür.
// Yol adı zaman damgası + rastgele bileşenden üretilir; kriptografik bir
// güvence değildir, anahtarlar güvenlik token'ı olarak kullanılmaz.
func (s *UploadService) Upload(ctx context.Context, asset AssetUpload) (string, error) {
	if len(asset.Data) == 0 {
		return "", ErrUploadEmptyFile
	}

	path := buildStoragePath(asset.FileName)

	contentType := asset.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.store.Put(ctx, path, asset.Data, contentType); err != nil {
		configslog.Log.Error("Görsel blob deposuna yazılamadı", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	url := s.store.PublicURL(path)
	if url == "" {
		configslog.Log.Error("Public URL çözülemedi", zap.String("path", path))
		return "", ErrUploadNoURL
	}

	configslog.SLog.Infof("Görsel yüklendi: %s", url)
	return url, nil
}

// buildStoragePath çakışma olasılığı ihmal edilebilir bir depo yolu üretir.
func buildStoragePath(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New(), ext)
}

var _ IUploadService = (*UploadService)(nil)
