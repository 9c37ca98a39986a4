package migration

import (
	"fmt"
	"log"

	"FitLog-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealEntry{}); err != nil {
		log.Fatalf("Error migrating meal entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WorkoutEntry{}); err != nil {
		log.Fatalf("Error migrating workout entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
