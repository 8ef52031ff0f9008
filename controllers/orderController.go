package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/models"
	"gorm.io/gorm"
)

// CreateOrder records a checkout as an unpaid order. The submitted price
// breakdown is trusted as-is; the server does not recompute totals from line
// items.
func CreateOrder(ctx *gin.Context) {
	var orderInfo models.Order
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	if len(orderInfo.OrderItems) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order must contain at least one item")
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	order := models.Order{
		UserID:          userID,
		FirstName:       orderInfo.FirstName,
		LastName:        orderInfo.LastName,
		Email:           orderInfo.Email,
		Phone:           orderInfo.Phone,
		ShippingAddress: orderInfo.ShippingAddress,
		ShippingCity:    orderInfo.ShippingCity,
		PaymentMethod:   orderInfo.PaymentMethod,
		ItemsPrice:      orderInfo.ItemsPrice,
		TaxPrice:        orderInfo.TaxPrice,
		ShippingPrice:   orderInfo.ShippingPrice,
		DiscountPrice:   orderInfo.DiscountPrice,
		TotalPrice:      orderInfo.TotalPrice,
		CouponCode:      strings.ToUpper(strings.TrimSpace(orderInfo.CouponCode)),
	}

	if order.CouponCode != "" {
		var coupon models.Coupon
		if err := tx.Where("code = ?", order.CouponCode).First(&coupon).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusBadRequest, "Coupon not found")
			} else {
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load coupon")
			}
			return
		}
		if err := coupon.Validate(order.ItemsPrice, time.Now()); err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}
		result := tx.Model(&models.Coupon{}).
			Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", coupon.ID).
			Update("used_count", gorm.Expr("used_count + 1"))
		if result.Error != nil || result.RowsAffected == 0 {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusBadRequest, "Coupon usage limit reached")
			return
		}
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create order")
		return
	}

	for _, item := range orderInfo.OrderItems {
		result := tx.Model(&models.Product{}).
			Where("id = ? AND count_in_stock >= ?", item.ProductId, item.Quantity).
			Update("count_in_stock", gorm.Expr("count_in_stock - ?", item.Quantity))
		if result.Error != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update stock")
			return
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusBadRequest, "Insufficient stock for "+item.Name)
			return
		}

		item.OrderID = int(order.ID)
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create order items")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created successfully.",
		"orderId": order.ID,
	})
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("id LIKE ? OR order_code LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("id LIKE ? OR order_code LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrdersByCustomerId(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	query := initializers.DB.Preload("OrderItems").Where("user_id = ?", userId)
	if result := query.Order("created_at " + sortOrder).Find(&orders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.Preload("OrderItems").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch order.", err)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// CancelOrder cancels an order that has been neither paid nor delivered.
func CancelOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	userID, ok := userIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load order", err)
		}
		return
	}

	if order.UserID != userID {
		sendErrorResponse(ctx, http.StatusForbidden, "You can only cancel your own orders")
		return
	}
	if !order.CanCancel() {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order can no longer be cancelled")
		return
	}

	now := time.Now()
	order.IsCancelled = true
	order.CancelledAt = &now
	if err := initializers.DB.Save(&order).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to cancel order", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order cancelled successfully."})
}

// MarkOrderDelivered is the admin action stamping delivery.
func MarkOrderDelivered(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load order", err)
		}
		return
	}

	if order.IsCancelled {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cannot deliver a cancelled order")
		return
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now
	if err := initializers.DB.Save(&order).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update order", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order marked as delivered."})
}

// MarkOrderPaid is the admin counterpart of the IPN paid transition, used for
// offline payment methods.
func MarkOrderPaid(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to load order", err)
		}
		return
	}

	if order.IsPaid {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order has already been paid")
		return
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	if err := initializers.DB.Save(&order).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update order", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order marked as paid."})
}

func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("is_delivered = ? AND is_cancelled = ?", false, false).
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count undelivered orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
