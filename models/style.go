package models

// Style kartın sunum temasını seçen kayıttır.
// Şimdilik tek tema var; yeni temalar seeder ile eklenir,
// veri modeli ve oturum makinesi temadan bağımsız kalır.
type Style struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

const (
	StyleNameBirthday = "BIRTHDAY"
)
