package initializers

import (
	"log"

	"github.com/vietshop/vietshop-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.WishlistItem{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductSpecs{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Banner{},
	)
	log.Println("Database synced successfully.")
}
