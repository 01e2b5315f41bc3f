package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tebrik.link/database/seeders"
	"tebrik.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB in-memory sqlite üzerinde şemayı kurar ve temaları seed eder.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: tek bağlantıda yaşar

	require.NoError(t, db.AutoMigrate(&models.Style{}, &models.Card{}, &models.CardDetail{}))
	require.NoError(t, seeders.SeedStyles(db))
	return db
}

func strPtr(s string) *string { return &s }

func validDraft() CardDraft {
	return CardDraft{
		RecipientName: "Mina",
		Message:       "Happy Day",
		SenderName:    "Lee",
		CardDate:      "2024-06-20",
	}
}

func TestValidateCardDraft(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CardDraft)
		wantField string
	}{
		{"geçerli taslak", func(d *CardDraft) {}, ""},
		{"alıcı boş", func(d *CardDraft) { d.RecipientName = "" }, "recipientName"},
		{"alıcı yalnızca boşluk", func(d *CardDraft) { d.RecipientName = "   " }, "recipientName"},
		{"mesaj boş", func(d *CardDraft) { d.Message = " \t " }, "message"},
		{"gönderen boş", func(d *CardDraft) { d.SenderName = "" }, "senderName"},
		{"tarih boş", func(d *CardDraft) { d.CardDate = "" }, "cardDate"},
		{"görselsiz açıklama", func(d *CardDraft) { d.ImageCaption = strPtr("ilk mum") }, "imageCaption"},
		{"görselli açıklama geçerli", func(d *CardDraft) {
			d.ImageURL = strPtr("https://cdn.test/a.png")
			d.ImageCaption = strPtr("ilk mum")
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := ValidateCardDraft(draft)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var fieldErr *FieldValidationError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

// Validasyon saf ve idempotent: aynı taslak için tekrar çağrı aynı sonucu verir.
func TestValidateCardDraftIdempotent(t *testing.T) {
	draft := validDraft()
	draft.SenderName = ""

	first := ValidateCardDraft(draft)
	second := ValidateCardDraft(draft)
	require.Error(t, first)
	assert.Equal(t, first.Error(), second.Error())

	ok := validDraft()
	assert.NoError(t, ValidateCardDraft(ok))
	assert.NoError(t, ValidateCardDraft(ok))
}

func TestCreateCardAndFetchRoundTrip(t *testing.T) {
	svc := NewCardServiceWithDB(newTestDB(t))
	ctx := context.Background()

	draft := validDraft()
	draft.ImageURL = strPtr("https://cdn.test/card-images/1-abc.png")
	draft.ImageCaption = strPtr("pastadaki ilk mum")

	created, err := svc.CreateCard(ctx, draft)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Len(t, created.Key, CardKeyLength)
	assert.True(t, created.IsEnabled)

	fetched, err := svc.GetCardByKey(ctx, created.Key)
	require.NoError(t, err)

	assert.Equal(t, "Mina", fetched.Detail.RecipientName)
	assert.Equal(t, "Happy Day", fetched.Detail.Message)
	assert.Equal(t, "Lee", fetched.Detail.SenderName)
	assert.Equal(t, "2024-06-20", fetched.Detail.CardDate)
	require.NotNil(t, fetched.Detail.ImageURL)
	assert.Equal(t, *draft.ImageURL, *fetched.Detail.ImageURL)
	require.NotNil(t, fetched.Detail.ImageCaption)
	assert.Equal(t, "pastadaki ilk mum", *fetched.Detail.ImageCaption)
	assert.Equal(t, models.StyleNameBirthday, fetched.Style.Name)
}

func TestCreateCardWithoutImage(t *testing.T) {
	svc := NewCardServiceWithDB(newTestDB(t))

	created, err := svc.CreateCard(context.Background(), validDraft())
	require.NoError(t, err)

	fetched, err := svc.GetCardByKey(context.Background(), created.Key)
	require.NoError(t, err)
	assert.Nil(t, fetched.Detail.ImageURL)
	assert.Nil(t, fetched.Detail.ImageCaption, "görsel yoksa açıklama da null olmalı")
}

func TestCreateCardTrimsFields(t *testing.T) {
	svc := NewCardServiceWithDB(newTestDB(t))

	draft := validDraft()
	draft.RecipientName = "  Mina  "
	draft.CardDate = "\t2024-06-20 "

	created, err := svc.CreateCard(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "Mina", created.Detail.RecipientName)
	assert.Equal(t, "2024-06-20", created.Detail.CardDate)
}

func TestCreateCardRejectsInvalidDraft(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardServiceWithDB(db)

	draft := validDraft()
	draft.SenderName = "   "

	_, err := svc.CreateCard(context.Background(), draft)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCrdInvalidInput))

	// Geçersiz taslak hiçbir kayıt bırakmamalı.
	var count int64
	require.NoError(t, db.Model(&models.Card{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetCardByKeyNotFound(t *testing.T) {
	svc := NewCardServiceWithDB(newTestDB(t))

	_, err := svc.GetCardByKey(context.Background(), strings.Repeat("x", CardKeyLength))
	assert.ErrorIs(t, err, ErrCardNotFound)

	// Hatalı uzunluktaki anahtar da aynı hataya düşer.
	_, err = svc.GetCardByKey(context.Background(), "kisa")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestGetCardByKeyDisabledCard(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardServiceWithDB(db)

	created, err := svc.CreateCard(context.Background(), validDraft())
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Card{}).Where("id = ?", created.ID).Update("is_enabled", false).Error)

	_, err = svc.GetCardByKey(context.Background(), created.Key)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCreateCardKeysAreUnique(t *testing.T) {
	svc := NewCardServiceWithDB(newTestDB(t))
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		card, err := svc.CreateCard(ctx, validDraft())
		require.NoError(t, err)
		assert.False(t, seen[card.Key], "anahtar tekrarlanmamalı")
		seen[card.Key] = true
	}

	count, err := svc.GetCardCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, count)
}
