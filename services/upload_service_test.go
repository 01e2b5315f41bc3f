package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlobStore Put çağrılarını kaydeder; hata ve URL davranışı ayarlanabilir.
type fakeBlobStore struct {
	putErr   error
	noURL    bool
	putPaths []string
}

func (f *fakeBlobStore) Put(_ context.Context, path string, _ []byte, _ string) error {
	f.putPaths = append(f.putPaths, path)
	return f.putErr
}

func (f *fakeBlobStore) PublicURL(path string) string {
	if f.noURL {
		return ""
	}
	return "https://cdn.test/card-images/" + path
}

func TestUploadSuccess(t *testing.T) {
	store := &fakeBlobStore{}
	svc := NewUploadServiceWithStore(store)

	url, err := svc.Upload(context.Background(), AssetUpload{
		FileName:    "Kutlama.PNG",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)

	require.Len(t, store.putPaths, 1, "başarılı çağrı tam bir blob yazmalı")
	path := store.putPaths[0]
	assert.True(t, strings.HasSuffix(path, ".png"), "uzantı küçük harfe çevrilmeli: %s", path)
	assert.Equal(t, "https://cdn.test/card-images/"+path, url)
}

func TestUploadPathsAreCollisionResistant(t *testing.T) {
	store := &fakeBlobStore{}
	svc := NewUploadServiceWithStore(store)

	for i := 0; i < 20; i++ {
		_, err := svc.Upload(context.Background(), AssetUpload{FileName: "a.png", Data: []byte("x")})
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for _, p := range store.putPaths {
		assert.False(t, seen[p], "depo yolu tekrarlanmamalı: %s", p)
		seen[p] = true
	}
}

func TestUploadEmptyFile(t *testing.T) {
	store := &fakeBlobStore{}
	svc := NewUploadServiceWithStore(store)

	_, err := svc.Upload(context.Background(), AssetUpload{FileName: "a.png"})
	assert.ErrorIs(t, err, ErrUploadEmptyFile)
	assert.Empty(t, store.putPaths, "boş dosya için depoya gidilmemeli")
}

func TestUploadStoreFailure(t *testing.T) {
	store := &fakeBlobStore{putErr: errors.New("bucket erişilemedi")}
	svc := NewUploadServiceWithStore(store)

	_, err := svc.Upload(context.Background(), AssetUpload{FileName: "a.png", Data: []byte("x")})
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadPublicURLFailure(t *testing.T) {
	store := &fakeBlobStore{noURL: true}
	svc := NewUploadServiceWithStore(store)

	_, err := svc.Upload(context.Background(), AssetUpload{FileName: "a.png", Data: []byte("x")})
	assert.ErrorIs(t, err, ErrUploadNoURL)
}
