package migration

import (
	"Zero-Desperdicio/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// households.id defaults to uuid_generate_v4()
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Household{}); err != nil {
		log.Errorf("error migrating household table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.StoreSlot{}); err != nil {
		log.Errorf("error migrating store slot table: %v", err)
		return err
	}

	log.Info("database migration complete")
	return nil
}
