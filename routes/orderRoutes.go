package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/controllers"
	"github.com/vietshop/vietshop-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	order := server.Group("/order", middlewares.RequireAuth())
	{
		order.POST("", controllers.CreateOrder)
		order.GET("/user/:userId", controllers.GetOrdersByCustomerId)
		order.GET("/:orderId", controllers.GetOrderById)
		order.PATCH("/:orderId/cancel", controllers.CancelOrder)
	}

	admin := server.Group("/order", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetOrders)
		admin.PATCH("/:orderId/deliver", controllers.MarkOrderDelivered)
		admin.PATCH("/:orderId/pay", controllers.MarkOrderPaid)
		admin.GET("/undelivered/count", controllers.GetUndeliveredOrders)
	}
}
