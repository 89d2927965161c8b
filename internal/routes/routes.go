package routes

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter builds the services and controllers on top of db and returns the configured gin engine
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	restaurantService := services.NewRestaurantService(db)
	pizzaService := services.NewPizzaService(db)
	restaurantPizzaService := services.NewRestaurantPizzaService(db)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	RegisterRoutes(router,
		controllers.NewRestaurantController(restaurantService),
		controllers.NewPizzaController(pizzaService),
		controllers.NewRestaurantPizzaController(restaurantPizzaService),
	)
	return router
}

// RegisterRoutes defines the routes for the gin router
func RegisterRoutes(
	router *gin.Engine,
	restaurantController controllers.RestaurantController,
	pizzaController controllers.PizzaController,
	restaurantPizzaController controllers.RestaurantPizzaController,
) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.GET("/pizzas/:id", pizzaController.GetPizzaByID)
	router.DELETE("/pizzas/:id", pizzaController.DeletePizza)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgNotFound))
	})
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-restaurants-api",
	})
}
