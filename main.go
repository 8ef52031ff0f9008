package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/momo"
	"github.com/vietshop/vietshop-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://www.vietshop.vn"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	momoClient := momo.NewClient(momo.LoadConfig())

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.UserRoutes(server)
	routes.CategoryRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.CouponRoutes(server)
	routes.BannerRoutes(server)
	routes.PaymentRoutes(server, momoClient)

	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
