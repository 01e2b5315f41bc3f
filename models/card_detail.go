package models

// CardDetail tebrik kartının içeriğini tutar.
// ImageCaption yalnızca ImageURL doluyken anlamlıdır; ikisi birlikte
// null ya da birlikte dolu yazılır (servis katmanı bunu garanti eder).
type CardDetail struct {
	BaseModel
	CardID uint `gorm:"uniqueIndex;not null"` // cards.id FK

	RecipientName string  `gorm:"type:varchar(150);not null"`
	Message       string  `gorm:"type:text;not null"`
	ImageURL      *string `gorm:"type:varchar(500)"` // Opsiyonel
	ImageCaption  *string `gorm:"type:varchar(255)"` // Yalnızca görselle birlikte
	SenderName    string  `gorm:"type:varchar(150);not null"`
	CardDate      string  `gorm:"type:varchar(100);not null"` // Serbest metin etiket (örn: "20 Haziran 2024")
}
