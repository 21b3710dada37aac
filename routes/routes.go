package routes

import (
	"net/http"

	"starwars/config"
	"starwars/controllers"
	"starwars/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SetupRouter wires all controllers onto a gin.Engine. rdb may be nil; the
// token blacklist and login throttle are skipped in that case.
func SetupRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	authController := controllers.NewAuthController(db, rdb, cfg.JWTSecret)
	userController := controllers.NewUserController(db)
	addressController := controllers.NewAddressController(db)
	planetController := controllers.NewPlanetController(db)
	characterController := controllers.NewCharacterController(db)
	vehicleController := controllers.NewVehicleController(db)
	favoriteController := controllers.NewFavoriteController(db)

	// Route listing at the root, handy for exploring the API
	r.GET("/", func(c *gin.Context) {
		sitemap := []gin.H{}
		for _, route := range r.Routes() {
			sitemap = append(sitemap, gin.H{"method": route.Method, "path": route.Path})
		}
		c.JSON(http.StatusOK, sitemap)
	})

	r.POST("/signup", authController.Signup)
	r.POST("/login", authController.Login)

	r.GET("/planets", planetController.List)
	r.POST("/planets", planetController.Create)
	r.GET("/planets/:id", planetController.Get)
	r.PUT("/planets/:id", planetController.Update)
	r.DELETE("/planets/:id", planetController.Delete)

	r.GET("/characters", characterController.List)
	r.POST("/characters", characterController.Create)
	r.GET("/characters/:id", characterController.Get)
	r.PUT("/characters/:id", characterController.Update)
	r.DELETE("/characters/:id", characterController.Delete)

	r.GET("/vehicles", vehicleController.List)
	r.POST("/vehicles", vehicleController.Create)
	r.GET("/vehicles/:id", vehicleController.Get)
	r.PUT("/vehicles/:id", vehicleController.Update)
	r.DELETE("/vehicles/:id", vehicleController.Delete)

	r.GET("/addresses", addressController.List)
	r.POST("/addresses", addressController.Create)
	r.GET("/addresses/:id", addressController.Get)
	r.PUT("/addresses/:id", addressController.Update)
	r.DELETE("/addresses/:id", addressController.Delete)

	protected := r.Group("/", middleware.JWTAuthMiddleware(cfg.JWTSecret, rdb))
	{
		protected.POST("/logout", authController.Logout)

		protected.GET("/users", userController.List)
		protected.GET("/users/favorites", favoriteController.ListUserFavorites)
		protected.GET("/users/:id", userController.Get)
		protected.PUT("/users/:id", userController.Update)
		protected.DELETE("/users/:id", userController.Delete)

		protected.GET("/character-favorite-lists", favoriteController.ListCharacterFavorites)
		protected.POST("/character-favorite-lists", favoriteController.CreateCharacterFavorite)
		protected.GET("/character-favorite-lists/:id", favoriteController.GetCharacterFavorite)
		protected.PUT("/character-favorite-lists/:id", favoriteController.UpdateCharacterFavorite)
		protected.DELETE("/character-favorite-lists/:id", favoriteController.DeleteCharacterFavorite)

		protected.GET("/planet-favorite-lists", favoriteController.ListPlanetFavorites)
		protected.POST("/planet-favorite-lists", favoriteController.CreatePlanetFavorite)
		protected.GET("/planet-favorite-lists/:id", favoriteController.GetPlanetFavorite)
		protected.PUT("/planet-favorite-lists/:id", favoriteController.UpdatePlanetFavorite)
		protected.DELETE("/planet-favorite-lists/:id", favoriteController.DeletePlanetFavorite)

		protected.GET("/vehicle-favorite-lists", favoriteController.ListVehicleFavorites)
		protected.POST("/vehicle-favorite-lists", favoriteController.CreateVehicleFavorite)
		protected.GET("/vehicle-favorite-lists/:id", favoriteController.GetVehicleFavorite)
		protected.PUT("/vehicle-favorite-lists/:id", favoriteController.UpdateVehicleFavorite)
		protected.DELETE("/vehicle-favorite-lists/:id", favoriteController.DeleteVehicleFavorite)

		// Legacy shorthand kept from the first API version
		protected.POST("/favorite/character/:id", favoriteController.AddCharacterFavorite)
		protected.DELETE("/favorite/character/:id", favoriteController.RemoveCharacterFavorite)
		protected.POST("/favorite/planet/:id", favoriteController.AddPlanetFavorite)
		protected.DELETE("/favorite/planet/:id", favoriteController.RemovePlanetFavorite)
		protected.POST("/favorite/vehicle/:id", favoriteController.AddVehicleFavorite)
		protected.DELETE("/favorite/vehicle/:id", favoriteController.RemoveVehicleFavorite)
	}

	return r
}
