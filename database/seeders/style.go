package seeders

import (
	"errors"

	"tebrik.link/configs/configslog"
	"tebrik.link/models"

	"gorm.io/gorm"
)

// SeedStyles temaları ekler; var olan kayda dokunmaz.
// Yeni temalar bu listeye eklenerek yayınlanır.
func SeedStyles(db *gorm.DB) error {
	styles := []models.Style{
		{Name: models.StyleNameBirthday, Description: "Doğum günü teması (varsayılan)"},
	}

	for _, style := range styles {
		var existing models.Style
		err := db.Where("name = ?", style.Name).First(&existing).Error
		if err == nil {
			continue // Zaten var
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&style).Error; err != nil {
			return err
		}
		configslog.SLog.Infof("Tema eklendi: %s", style.Name)
	}
	return nil
}
