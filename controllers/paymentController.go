package controllers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/models"
	"github.com/vietshop/vietshop-api/momo"
	"github.com/vietshop/vietshop-api/utils"
	"gorm.io/gorm"
)

func userIDFromContext(ctx *gin.Context) (int, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return int(id), true
}

// generateOrderCode produces a fresh gateway-facing correlation key. Each
// payment attempt overwrites any prior unfinished attempt's code.
func generateOrderCode() (string, error) {
	suffix, err := utils.GenerateCode(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix), nil
}

// CreateMomoPayment initiates a MoMo payment for an unpaid order owned by the
// caller. The order code is persisted before the gateway call so that a
// notification arriving after a slow or failed outbound call can still be
// matched.
func CreateMomoPayment(gateway *momo.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input struct {
			OrderID int `json:"orderId" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "orderId is required", err)
			return
		}

		userID, ok := userIDFromContext(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		var order models.Order
		if err := initializers.DB.First(&order, input.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to load order", err)
			}
			return
		}

		if order.UserID != userID {
			sendErrorResponse(ctx, http.StatusForbidden, "You can only pay for your own orders")
			return
		}
		if order.IsPaid {
			sendErrorResponse(ctx, http.StatusBadRequest, "Order has already been paid")
			return
		}
		if order.IsCancelled {
			sendErrorResponse(ctx, http.StatusBadRequest, "Order has been cancelled")
			return
		}

		orderCode, err := generateOrderCode()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to generate order code", err)
			return
		}
		if err := initializers.DB.Model(&order).Update("order_code", orderCode).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to save order code", err)
			return
		}

		extraPayload, _ := json.Marshal(gin.H{"orderId": order.ID})
		extraData := base64.StdEncoding.EncodeToString(extraPayload)
		orderInfo := fmt.Sprintf("Thanh toan don hang #%d", order.ID)
		amount := int64(math.Round(order.TotalPrice))

		response, err := gateway.CreatePayment(orderCode, amount, orderInfo, extraData)
		if err != nil {
			log.Printf("MoMo create payment error for order %d: %v", order.ID, err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to initiate payment")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"payUrl":    response.PayURL,
			"orderId":   order.ID,
			"orderCode": orderCode,
		})
	}
}

// MomoCallback handles the browser redirect back from the gateway. It is a
// pure UX redirect: the gateway does not guarantee this request happens, so
// payment state is only ever mutated by the IPN path.
func MomoCallback() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		frontendURL := os.Getenv("FRONTEND_URL")
		orderCode := ctx.Query("orderId")
		resultCode := ctx.Query("resultCode")

		if resultCode == "0" {
			ctx.Redirect(http.StatusFound, frontendURL+"/payment/success?orderCode="+url.QueryEscape(orderCode))
			return
		}

		message := ctx.Query("message")
		ctx.Redirect(http.StatusFound, frontendURL+"/payment/failure?message="+url.QueryEscape(message))
	}
}

// MomoIPN handles the asynchronous payment notification, the authoritative
// path for the paid transition. The signature is verified before the order is
// even looked up; an unverified payload never touches any order.
func MomoIPN(gateway *momo.Client) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var notification momo.IPNRequest
		if err := ctx.ShouldBindJSON(&notification); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Missing required IPN fields", err)
			return
		}

		if !momo.VerifyIPN(gateway.Config(), notification) {
			log.Printf("MoMo IPN signature mismatch for order code %s", notification.OrderID)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid signature")
			return
		}

		var order models.Order
		if err := initializers.DB.Where("order_code = ?", notification.OrderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to load order", err)
			}
			return
		}

		if notification.ResultCode == 0 {
			// Gateways retry IPN deliveries; the recorded transaction id makes
			// a duplicate delivery a no-op.
			if !order.HasTransaction(notification.TransID) && !order.IsPaid {
				now := time.Now()
				order.IsPaid = true
				order.PaidAt = &now
				order.SetPaymentResult(models.PaymentResultData{
					TransID:      notification.TransID,
					ResultCode:   notification.ResultCode,
					Message:      notification.Message,
					PayType:      notification.PayType,
					ResponseTime: notification.ResponseTime,
				})
				if err := initializers.DB.Save(&order).Error; err != nil {
					respondWithError(ctx, http.StatusInternalServerError, "Failed to update order", err)
					return
				}
			}
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "IPN processed successfully"})
	}
}
