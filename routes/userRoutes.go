package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/controllers"
	"github.com/vietshop/vietshop-api/middlewares"
)

func UserRoutes(server *gin.Engine) {
	user := server.Group("/user", middlewares.RequireAuth())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.GET("/wishlist", controllers.GetWishlist)
		user.POST("/wishlist", controllers.AddWishlistItem)
		user.DELETE("/wishlist/:productId", controllers.RemoveWishlistItem)

		user.GET("/address", controllers.GetAddresses)
		user.POST("/address", controllers.CreateAddress)
		user.PUT("/address/:id", controllers.UpdateAddress)
		user.DELETE("/address/:id", controllers.DeleteAddress)
	}
}
