package migrations

import (
	"tebrik.link/configs/configslog"
	"tebrik.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateStylesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating styles table...")
	err := db.AutoMigrate(&models.Style{})
	if err != nil {
		configslog.Log.Error("Failed to migrate styles table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Styles table migrated successfully")
	return nil
}
