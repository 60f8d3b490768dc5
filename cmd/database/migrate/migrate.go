package migration

import (
	"Recipedia-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Admin{}); err != nil {
		log.Fatalf("Error migrating admin database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PendingVerification{}); err != nil {
		log.Fatalf("Error migrating pending verification database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DietaryRestriction{}); err != nil {
		log.Fatalf("Error migrating dietary restriction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserPreference{}); err != nil {
		log.Fatalf("Error migrating user preference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeInteraction{}); err != nil {
		log.Fatalf("Error migrating recipe interaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
