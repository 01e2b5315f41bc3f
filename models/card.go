package models

// Card paylaşılabilir tebrik kartının ana kaydıdır.
// Key, görüntüleme linkindeki opak kimliktir (/card/{key}).
type Card struct {
	BaseModel
	Key       string `gorm:"type:varchar(20);uniqueIndex;not null"`
	StyleID   uint   `gorm:"not null;index"`     // styles.id FK
	IsEnabled bool   `gorm:"default:true;index"` // Kart erişime açık mı?

	// GORM İlişkileri
	Style  Style      `gorm:"foreignKey:StyleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Detail CardDetail `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
