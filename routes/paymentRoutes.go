package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/controllers"
	"github.com/vietshop/vietshop-api/middlewares"
	"github.com/vietshop/vietshop-api/momo"
)

func PaymentRoutes(server *gin.Engine, gateway *momo.Client) {
	payment := server.Group("/payment/momo")
	{
		payment.POST("/create", middlewares.RequireAuth(), controllers.CreateMomoPayment(gateway))
		payment.GET("/callback", controllers.MomoCallback())
		payment.POST("/ipn", controllers.MomoIPN(gateway))
	}
}
