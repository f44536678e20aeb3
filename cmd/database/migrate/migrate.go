package migration

import (
	"fmt"
	"log"

	"Smart-Fridge-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Alert{}); err != nil {
		log.Fatalf("Error migrating alert database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ConsumptionLog{}); err != nil {
		log.Fatalf("Error migrating consumption log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
