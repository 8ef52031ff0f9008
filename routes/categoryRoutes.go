package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/controllers"
	"github.com/vietshop/vietshop-api/middlewares"
)

func CategoryRoutes(server *gin.Engine) {
	server.GET("/category", controllers.GetCategories)
	server.GET("/category/tree", controllers.GetCategoryTree)
	server.GET("/category/:id", controllers.GetCategory)

	admin := server.Group("/category", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateCategory)
		admin.PUT("/reorder", controllers.ReorderCategories)
		admin.PUT("/:id", controllers.UpdateCategory)
		admin.DELETE("/:id", controllers.DeleteCategory)
	}
}
