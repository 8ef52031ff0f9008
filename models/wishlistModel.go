package models

import "gorm.io/gorm"

type WishlistItem struct {
	gorm.Model
	UserID    int `json:"userId" gorm:"uniqueIndex:idx_wishlist_user_product"`
	ProductID int `json:"productId" gorm:"uniqueIndex:idx_wishlist_user_product"`
}
