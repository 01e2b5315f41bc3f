package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"tebrik.link/configs/configslog"
	"tebrik.link/models"
	"tebrik.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

type fakeCardService struct {
	createCalls int
	lastDraft   services.CardDraft
	card        *models.Card
	err         error
}

func (f *fakeCardService) CreateCard(_ context.Context, draft services.CardDraft) (*models.Card, error) {
	f.createCalls++
	f.lastDraft = draft
	return f.card, f.err
}

func (f *fakeCardService) GetCardByKey(context.Context, string) (*models.Card, error) {
	return nil, services.ErrCardNotFound
}

func (f *fakeCardService) GetCardCount(context.Context) (int64, error) { return 0, nil }

type fakeUploadService struct {
	calls int
	url   string
	err   error
}

func (f *fakeUploadService) Upload(context.Context, services.AssetUpload) (string, error) {
	f.calls++
	return f.url, f.err
}

func newBuilderApp(cardSvc services.ICardService, uploadSvc services.IUploadService) *fiber.App {
	app := fiber.New()
	store := session.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		return c.Next()
	})
	h := NewBuilderCardHandlerWith(cardSvc, uploadSvc)
	app.Post("/cards", h.CreateCard)
	return app
}

// postForm multipart form gönderir; fileName boşsa görsel eklenmez.
func postForm(t *testing.T, app *fiber.App, fields map[string]string, fileName string) *http.Response {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("sahte-görsel-verisi"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/cards", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func validFields() map[string]string {
	return map[string]string{
		"recipient_name": "Mina",
		"message":        "Happy Day",
		"sender_name":    "Lee",
		"card_date":      "2024-06-20",
	}
}

func TestCreateCardWithoutImage(t *testing.T) {
	cardSvc := &fakeCardService{card: &models.Card{Key: "abcdefghij0123456789"}}
	uploadSvc := &fakeUploadService{}
	app := newBuilderApp(cardSvc, uploadSvc)

	resp := postForm(t, app, validFields(), "")

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Equal(t, 1, cardSvc.createCalls)
	assert.Zero(t, uploadSvc.calls, "görsel seçilmediyse yükleme yapılmamalı")
	assert.Nil(t, cardSvc.lastDraft.ImageURL)
}

func TestCreateCardWithImage(t *testing.T) {
	cardSvc := &fakeCardService{card: &models.Card{Key: "abcdefghij0123456789"}}
	uploadSvc := &fakeUploadService{url: "https://cdn.test/card-images/1-a.png"}
	app := newBuilderApp(cardSvc, uploadSvc)

	resp := postForm(t, app, validFields(), "kutlama.png")

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, 1, uploadSvc.calls)
	assert.Equal(t, 1, cardSvc.createCalls)
	require.NotNil(t, cardSvc.lastDraft.ImageURL)
	assert.Equal(t, uploadSvc.url, *cardSvc.lastDraft.ImageURL)
}

// Yükleme başarısızsa kart kaydı hiç denenmez: yarım yüklemeyle kayıt oluşmaz.
func TestUploadFailureAbortsCreation(t *testing.T) {
	cardSvc := &fakeCardService{}
	uploadSvc := &fakeUploadService{err: errors.New("bucket erişilemedi")}
	app := newBuilderApp(cardSvc, uploadSvc)

	resp := postForm(t, app, validFields(), "kutlama.png")

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, 1, uploadSvc.calls)
	assert.Zero(t, cardSvc.createCalls, "yükleme hatasında CreateCard çağrılmamalı")
}

// Validasyon hatasında hiçbir ağ çağrısı yapılmaz (fail fast).
func TestValidationFailureSkipsAllNetworkCalls(t *testing.T) {
	cardSvc := &fakeCardService{}
	uploadSvc := &fakeUploadService{}
	app := newBuilderApp(cardSvc, uploadSvc)

	fields := validFields()
	fields["sender_name"] = "   "
	resp := postForm(t, app, fields, "kutlama.png")

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Zero(t, uploadSvc.calls)
	assert.Zero(t, cardSvc.createCalls)
}

// Görsel seçiliyken açıklama geçerli; görselsiz açıklama reddedilir.
func TestCaptionRequiresImage(t *testing.T) {
	cardSvc := &fakeCardService{}
	uploadSvc := &fakeUploadService{}
	app := newBuilderApp(cardSvc, uploadSvc)

	fields := validFields()
	fields["image_caption"] = "ilk mum"
	resp := postForm(t, app, fields, "")

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Zero(t, cardSvc.createCalls)
	assert.Zero(t, uploadSvc.calls)
}
