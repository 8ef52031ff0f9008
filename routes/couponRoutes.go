package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/controllers"
	"github.com/vietshop/vietshop-api/middlewares"
)

func CouponRoutes(server *gin.Engine) {
	server.POST("/coupon/apply", middlewares.RequireAuth(), controllers.ApplyCoupon)

	admin := server.Group("/coupon", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetCoupons)
		admin.POST("", controllers.CreateCoupon)
		admin.PUT("/:id", controllers.UpdateCoupon)
		admin.DELETE("/:id", controllers.DeleteCoupon)
	}
}
