package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/models"
	"gorm.io/gorm"
)

func CreateCoupon(ctx *gin.Context) {
	var coupon models.Coupon
	if err := ctx.ShouldBindJSON(&coupon); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if coupon.Code == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Coupon code is required")
		return
	}
	if coupon.DiscountType != models.DiscountTypePercentage && coupon.DiscountType != models.DiscountTypeFixed {
		sendErrorResponse(ctx, http.StatusBadRequest, "Discount type must be percentage or fixed")
		return
	}

	var count int64
	if err := initializers.DB.Model(&models.Coupon{}).Where("code = ?", coupon.Code).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to check coupon code", err)
		return
	}
	if count > 0 {
		sendErrorResponse(ctx, http.StatusConflict, "A coupon with this code already exists")
		return
	}

	coupon.UsedCount = 0
	if err := initializers.DB.Create(&coupon).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create coupon", err)
		return
	}

	ctx.JSON(http.StatusCreated, coupon)
}

func UpdateCoupon(ctx *gin.Context) {
	couponId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	var coupon models.Coupon
	if err := initializers.DB.First(&coupon, couponId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Coupon not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load coupon", err)
		}
		return
	}

	var updates models.Coupon
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if updates.Code != "" {
		updates.Code = strings.ToUpper(strings.TrimSpace(updates.Code))
		var count int64
		if err := initializers.DB.Model(&models.Coupon{}).
			Where("code = ? AND id <> ?", updates.Code, coupon.ID).
			Count(&count).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to check coupon code", err)
			return
		}
		if count > 0 {
			sendErrorResponse(ctx, http.StatusConflict, "A coupon with this code already exists")
			return
		}
	}

	// UsedCount only moves through order creation, never through updates.
	updates.UsedCount = coupon.UsedCount
	if err := initializers.DB.Model(&coupon).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update coupon", err)
		return
	}

	ctx.JSON(http.StatusOK, coupon)
}

func DeleteCoupon(ctx *gin.Context) {
	couponId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	// Hard delete so the code is freed from the unique index for reuse.
	if result := initializers.DB.Unscoped().Delete(&models.Coupon{}, couponId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete coupon", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Coupon deleted successfully."})
}

func GetCoupons(ctx *gin.Context) {
	var coupons []models.Coupon
	if result := initializers.DB.Order("created_at desc").Find(&coupons); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch coupons", result.Error)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"coupons": coupons})
}

// ApplyCoupon validates a coupon against an order amount and returns the
// discount that would be applied. It does not consume a usage; that happens
// at order creation.
func ApplyCoupon(ctx *gin.Context) {
	var input struct {
		Code   string  `json:"code" binding:"required"`
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Coupon code and amount are required", err)
		return
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))

	var coupon models.Coupon
	if err := initializers.DB.Where("code = ?", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Coupon not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load coupon", err)
		}
		return
	}

	if err := coupon.Validate(input.Amount, time.Now()); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"code":     coupon.Code,
		"discount": coupon.DiscountFor(input.Amount),
	})
}
