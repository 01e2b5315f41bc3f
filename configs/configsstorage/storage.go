package configsstorage

import (
	"bytes"
	"context"
	"os"
	"strings"

	"tebrik.link/configs/configslog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3BlobStore kart görsellerinin yazıldığı S3 uyumlu blob deposu (dev ortamında MinIO).
// Yol benzersizliği çağıranın sorumluluğundadır; Put var olan bir yolun
// üzerine asla yazmaz (IfNoneMatch koşulu), çakışma sessizce veri ezmek
// yerine hata olarak döner.
type S3BlobStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

var store *S3BlobStore

// InitStorage S3 istemcisini ortam değişkenlerinden kurar.
// Beklenen değişkenler: S3_ENDPOINT, S3_REGION, S3_ACCESS_KEY, S3_SECRET_KEY,
// S3_BUCKET, S3_PUBLIC_BASE_URL (opsiyonel; boşsa endpoint/bucket kullanılır).
func InitStorage() {
	endpoint := os.Getenv("S3_ENDPOINT")
	region := getEnv("S3_REGION", "us-east-1")
	bucket := getEnv("S3_BUCKET", "card-images")

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("S3_ACCESS_KEY"),
			os.Getenv("S3_SECRET_KEY"),
			"", // oturum token'ı gerekmiyor
		)))
	if err != nil {
		configslog.Log.Fatal("S3 konfigürasyonu yüklenemedi", zap.Error(err))
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // MinIO için
		}
	})

	publicBase := os.Getenv("S3_PUBLIC_BASE_URL")
	if publicBase == "" {
		publicBase = strings.TrimSuffix(endpoint, "/") + "/" + bucket
	}

	store = &S3BlobStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBase, "/"),
	}
	configslog.SLog.Infof("Blob deposu hazır: bucket=%s", bucket)
}

// GetBlobStore aktif blob deposunu döndürür. InitStorage çağrılmadan kullanılmamalı.
func GetBlobStore() *S3BlobStore {
	if store == nil {
		configslog.Log.Fatal("GetBlobStore: blob deposu henüz başlatılmadı (InitStorage çağrılmalı)")
	}
	return store
}

// Put veriyi verilen yola tam bir kez yazar. Yol zaten doluysa hata döner.
func (s *S3BlobStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(path),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
		IfNoneMatch:  aws.String("*"), // upsert kapalı: mevcut nesne ezilmez
	})
	return err
}

// PublicURL verilen yol için herkese açık erişim adresini döndürür.
// Yol çözülemiyorsa boş string döner; çağıran bunu hata saymalıdır.
func (s *S3BlobStore) PublicURL(path string) string {
	if path == "" || s.publicBaseURL == "" {
		return ""
	}
	return s.publicBaseURL + "/" + path
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
