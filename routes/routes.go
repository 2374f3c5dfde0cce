package routes

import (
	"beauty-parlor-backend/config"
	"beauty-parlor-backend/controllers"
	"beauty-parlor-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Public pages
	r.GET("/", controllers.Home)
	r.GET("/about", controllers.About)
	r.GET("/services", controllers.GetServices)
	r.GET("/service/:id", controllers.GetService)
	r.POST("/contact", controllers.SubmitContact)
	r.GET("/testimonials", controllers.GetTestimonials)
	r.GET("/recommendations", controllers.Recommendations)

	// Authentication
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)
	r.POST("/logout", controllers.Logout)

	authed := r.Group("/")
	authed.Use(utils.AuthMiddleware())
	{
		authed.GET("/me", controllers.Me)

		profile := authed.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.POST("/picture", controllers.UploadProfilePicture)
		}

		authed.GET("/booking", controllers.NewBooking)
		authed.POST("/booking", controllers.CreateBooking)
		authed.GET("/my-bookings", controllers.MyBookings)
		authed.GET("/booking/:id", controllers.GetBooking)
		authed.POST("/booking/:id", controllers.CreateReview)
		authed.POST("/booking/:id/cancel", controllers.CancelBooking)
	}

	return r
}
