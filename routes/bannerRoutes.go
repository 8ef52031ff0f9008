package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/controllers"
	"github.com/vietshop/vietshop-api/middlewares"
)

func BannerRoutes(server *gin.Engine) {
	server.GET("/banner", controllers.GetBanners)

	admin := server.Group("/banner", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateBanner)
		admin.PUT("/:id", controllers.UpdateBanner)
		admin.DELETE("/:id", controllers.DeleteBanner)
	}
}
