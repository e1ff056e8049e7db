package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vmaslov/mycars-backend/controllers"
	"github.com/vmaslov/mycars-backend/middleware"
)

func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	cars := api.Group("/cars")
	{
		cars.GET("", controllers.GetPublishedCars)
		cars.POST("", controllers.CreateCar)
		cars.POST("/quick", controllers.QuickAddCar)
		cars.GET("/:slug", controllers.GetCarBySlug)
		cars.PUT("/:slug", controllers.UpdateCar)
		cars.DELETE("/:slug", controllers.DeleteCar)
	}

	api.GET("/about", controllers.AboutPage)
	api.POST("/upload", controllers.UploadFile)

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin"))

		admin.GET("/cars", controllers.GetCarsAdmin)
		admin.POST("/cars/publish", controllers.PublishCars)
		admin.POST("/cars/unpublish", controllers.UnpublishCars)
		admin.PATCH("/cars/:id/publish-status", controllers.SetPublishStatus)

		admin.POST("/manufacturers", controllers.CreateManufacturer)
		admin.GET("/manufacturers", controllers.GetManufacturers)
		admin.GET("/manufacturers/:id", controllers.GetManufacturerDetail)
		admin.PUT("/manufacturers/:id", controllers.UpdateManufacturer)
		admin.DELETE("/manufacturers/:id", controllers.DeleteManufacturer)

		admin.GET("/tags", controllers.GetTags)
		admin.POST("/tags", controllers.CreateTag)
		admin.DELETE("/tags/:id", controllers.DeleteTag)

		admin.POST("/car-details", controllers.CreateCarDetail)
		admin.GET("/car-details", controllers.GetCarDetails)
		admin.GET("/car-details/:id", controllers.GetCarDetailByID)
		admin.PUT("/car-details/:id", controllers.UpdateCarDetail)
		admin.DELETE("/car-details/:id", controllers.DeleteCarDetail)
	}

	return r
}
