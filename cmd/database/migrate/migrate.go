package migration

import (
	"fmt"
	"log"

	"nourish-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.InventoryItem{},
		&entities.ConsumptionLog{},
		&entities.ShoppingItem{},
		&entities.FoodReference{},
		&entities.Resource{},
		&entities.ReceiptScan{},
		&entities.CommunityPost{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
