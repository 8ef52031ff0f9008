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

func CreateBanner(ctx *gin.Context) {
	var banner models.Banner
	if err := ctx.ShouldBindJSON(&banner); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&banner).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create banner", err)
		return
	}

	ctx.JSON(http.StatusCreated, banner)
}

func UpdateBanner(ctx *gin.Context) {
	bannerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid banner ID")
		return
	}

	var banner models.Banner
	if err := initializers.DB.First(&banner, bannerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Banner not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load banner", err)
		}
		return
	}

	var updates models.Banner
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Model(&banner).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update banner", err)
		return
	}

	ctx.JSON(http.StatusOK, banner)
}

func DeleteBanner(ctx *gin.Context) {
	bannerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid banner ID")
		return
	}

	if result := initializers.DB.Delete(&models.Banner{}, bannerId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete banner", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Banner deleted successfully."})
}

func GetBanners(ctx *gin.Context) {
	query := initializers.DB.Order("sort_order asc, id asc")

	if ctx.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if position := ctx.Query("position"); position != "" {
		query = query.Where("position = ?", position)
	}

	var banners []models.Banner
	if result := query.Find(&banners); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch banners", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"banners": banners})
}
