package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every controller against the shared services. All
// routes except /auth/* sit behind the JWT middleware.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	hub := services.NewRealtimeHub()
	repo := services.NewMealRepository(db)
	stores := services.NewStoreManager(repo, hub)

	authSvc := services.NewAuthService(db, cfg.JWTSecret)
	foodSvc := services.NewFoodService(
		services.NewUSDAService(cfg.USDAAPIKey),
		services.NewNutritionixService(cfg.NutritionixAppID, cfg.NutritionixAppKey),
	)
	customMealSvc := services.NewCustomMealService(db)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(authSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(stores)
	customMealCtl := controllers.NewCustomMealController(customMealSvc, stores)
	goalCtl := controllers.NewGoalController(stores)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(db, cfg.JWTSecret))
	{
		api.GET("/user/profile", userCtl.GetProfile)

		api.GET("/food/search", foodCtl.Search)

		api.GET("/meals", mealCtl.List)
		api.POST("/meals", mealCtl.Create)
		api.POST("/meals/food", mealCtl.AddFood)
		api.PUT("/meals/:id/foods", mealCtl.UpdateFoods)
		api.PUT("/meals/:id/foods/:foodId", mealCtl.UpdateFood)
		api.DELETE("/meals/:id", mealCtl.Delete)
		api.GET("/meals/date/:date", mealCtl.ByDate)

		api.GET("/totals/:date", mealCtl.Totals)
		api.GET("/summary/:date", mealCtl.Summary)
		api.GET("/calendar/:month", mealCtl.Calendar)

		api.GET("/goals", goalCtl.Get)
		api.PUT("/goals", goalCtl.Update)
		api.GET("/goals/recommended", goalCtl.Recommended)

		api.GET("/custom-meals", customMealCtl.List)
		api.POST("/custom-meals", customMealCtl.Create)
		api.DELETE("/custom-meals/:id", customMealCtl.Delete)
		api.POST("/custom-meals/:id/instantiate", customMealCtl.Instantiate)

		api.GET("/ws/totals", realtimeCtl.TotalsWS)
	}

	return r
}
