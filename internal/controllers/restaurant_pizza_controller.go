package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas.
// Pointers tell a missing field apart from a zero value.
type CreateRestaurantPizzaRequest struct {
	Price        *int `json:"price" binding:"required"`
	RestaurantID *int `json:"restaurant_id" binding:"required"`
	PizzaID      *int `json:"pizza_id" binding:"required"`
}

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant's menu at a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Link an existing pizza to an existing restaurant with a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Price, restaurant and pizza"
// @Success 201 {object} models.RestaurantPizzaCreatedView
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(models.MsgBadRequest))
		return
	}

	rp, err := c.service.CreateRestaurantPizza(*req.Price, *req.RestaurantID, *req.PizzaID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	view, err := rp.CreatedView()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, view)
}
