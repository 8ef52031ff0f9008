package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/controllers"
	"github.com/vietshop/vietshop-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.POST("", controllers.CreateCartItem)
		cart.GET("/:userId", controllers.GetCart)
		cart.PUT("/item/:itemId", controllers.UpdateCartItem)
		cart.DELETE("/item/:itemId", controllers.DeleteCartItem)
	}
}
