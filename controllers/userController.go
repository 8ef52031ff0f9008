package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/models"
	"gorm.io/gorm"
)

func GetProfile(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load profile", err)
		}
		return
	}

	user.Password = ""
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

func UpdateProfile(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input struct {
		Fullname        *string `json:"fullname"`
		Phone           *string `json:"phone"`
		SubscribeToNews *bool   `json:"subscribeToNews"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{}
	if input.Fullname != nil {
		updates["fullname"] = *input.Fullname
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.SubscribeToNews != nil {
		updates["subscribe_to_news"] = *input.SubscribeToNews
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update profile", err)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Profile updated successfully."})
}

// Wishlist

func AddWishlistItem(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input struct {
		ProductID int `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "productId is required", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	var existing models.WishlistItem
	err := initializers.DB.
		Where("user_id = ? AND product_id = ?", userID, input.ProductID).
		First(&existing).Error
	if err == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product already in wishlist"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to check wishlist", err)
		return
	}

	item := models.WishlistItem{UserID: userID, ProductID: input.ProductID}
	if err := initializers.DB.Create(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add to wishlist", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Product added to wishlist"})
}

func RemoveWishlistItem(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	result := initializers.DB.
		Where("user_id = ? AND product_id = ?", userID, productId).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to remove from wishlist", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not in wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product removed from wishlist"})
}

func GetWishlist(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var items []models.WishlistItem
	if err := initializers.DB.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch wishlist", err)
		return
	}

	productIDs := make([]int, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	var products []models.Product
	if len(productIDs) > 0 {
		if err := initializers.DB.Preload("Images").Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch wishlist products", err)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

// Addresses

func CreateAddress(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var address models.Address
	if err := ctx.ShouldBindJSON(&address); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	address.UserID = userID

	if address.IsDefault {
		if err := clearDefaultAddress(userID); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update default address", err)
			return
		}
	}

	if err := initializers.DB.Create(&address).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create address", err)
		return
	}

	ctx.JSON(http.StatusCreated, address)
}

func clearDefaultAddress(userID int) error {
	return initializers.DB.Model(&models.Address{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

func UpdateAddress(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	addressId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid address ID")
		return
	}

	var address models.Address
	if err := initializers.DB.Where("id = ? AND user_id = ?", addressId, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Address not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load address", err)
		}
		return
	}

	var updates models.Address
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	updates.UserID = userID

	if updates.IsDefault && !address.IsDefault {
		if err := clearDefaultAddress(userID); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update default address", err)
			return
		}
	}

	if err := initializers.DB.Model(&address).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update address", err)
		return
	}

	ctx.JSON(http.StatusOK, address)
}

func DeleteAddress(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	addressId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid address ID")
		return
	}

	result := initializers.DB.Where("id = ? AND user_id = ?", addressId, userID).Delete(&models.Address{})
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete address", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Address not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Address deleted successfully."})
}

func GetAddresses(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var addresses []models.Address
	if err := initializers.DB.Where("user_id = ?", userID).Order("is_default desc, id asc").Find(&addresses).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch addresses", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"addresses": addresses})
}
