package controllers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/models"
)

func TestDeleteCouponFreesCode(t *testing.T) {
	setupTestDB(t, &models.Coupon{})

	payload := gin.H{
		"code":           "tet2025",
		"discountType":   "percentage",
		"discountAmount": 10,
	}

	recorder, ctx := jsonRequest(t, http.MethodPost, "/coupon", payload)
	CreateCoupon(ctx)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", recorder.Code, recorder.Body.String())
	}

	var created models.Coupon
	if err := initializers.DB.Where("code = ?", "TET2025").First(&created).Error; err != nil {
		t.Fatalf("created coupon not found: %v", err)
	}

	recorder, ctx = jsonRequest(t, http.MethodDelete, "/coupon/"+strconv.Itoa(int(created.ID)), nil)
	ctx.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(created.ID))}}
	DeleteCoupon(ctx)
	if recorder.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", recorder.Code, recorder.Body.String())
	}

	// The code must be reusable after deletion.
	recorder, ctx = jsonRequest(t, http.MethodPost, "/coupon", payload)
	CreateCoupon(ctx)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("recreating a deleted coupon code failed: %d %s", recorder.Code, recorder.Body.String())
	}
}
