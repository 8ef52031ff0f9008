package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to VietShop API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

CATEGORY
- GET "/category" - Get all categories (flat)
- GET "/category/tree" - Get the nested category tree
- GET "/category/:id" - Get category by ID
- POST "/category" - Create category (admin)
- PUT "/category/reorder" - Reorder categories (admin)
- PUT "/category/:id" - Update category (admin)
- DELETE "/category/:id" - Delete category (admin)

PRODUCT
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID
- POST "/product" - Create new product (admin)
- PUT "/product/:id" - Update product (admin)
- DELETE "/product/:id" - Delete product (admin)
- POST "/product-specs" - Add product specifications (admin)
- POST "/product-images" - Add product images (admin)

CART
- POST "/cart" - Add item to cart
- GET "/cart/:userId" - Get cart by user
- PUT "/cart/item/:itemId" - Update cart item quantity
- DELETE "/cart/item/:itemId" - Remove cart item

ORDER
- POST "/order" - Create a new order
- GET "/order" - Retrieve all orders (admin)
- GET "/order/user/:userId" - Get orders for a specific user
- GET "/order/:orderId" - Get order by ID
- PATCH "/order/:orderId/cancel" - Cancel order
- PATCH "/order/:orderId/deliver" - Mark order delivered (admin)
- PATCH "/order/:orderId/pay" - Mark order paid (admin)
- GET "/order/undelivered/count" - Count undelivered orders (admin)

COUPON
- GET "/coupon" - List coupons (admin)
- POST "/coupon" - Create coupon (admin)
- PUT "/coupon/:id" - Update coupon (admin)
- DELETE "/coupon/:id" - Delete coupon (admin)
- POST "/coupon/apply" - Validate a coupon against an amount

BANNER
- GET "/banner" - List banners
- POST "/banner" - Create banner (admin)
- PUT "/banner/:id" - Update banner (admin)
- DELETE "/banner/:id" - Delete banner (admin)

PAYMENT
- POST "/payment/momo/create" - Initiate MoMo payment
- GET "/payment/momo/callback" - MoMo redirect target
- POST "/payment/momo/ipn" - MoMo payment notification`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
