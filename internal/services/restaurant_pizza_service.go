package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService creates the prices linking restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the price, resolves both references and
	// stores the new row. The returned row has Restaurant and Pizza set.
	CreateRestaurantPizza(price, restaurantID, pizzaID int) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(price, restaurantID, pizzaID int) (models.RestaurantPizza, error) {
	rp := models.RestaurantPizza{
		Price:        price,
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}
	if err := rp.Validate(); err != nil {
		return models.RestaurantPizza{}, &ValidationError{Messages: []string{err.Error()}}
	}

	var restaurant models.Restaurant
	var pizza models.Pizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &restaurant, resourceRestaurant, restaurantID); err != nil {
			return err
		}
		if err := findByID(tx, &pizza, resourcePizza, pizzaID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&rp).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return models.RestaurantPizza{}, err
		case errors.Is(err, models.ErrPriceOutOfRange):
			return models.RestaurantPizza{}, &ValidationError{Messages: []string{err.Error()}}
		default:
			return models.RestaurantPizza{}, &PersistenceError{Op: "create restaurant pizza", Err: err}
		}
	}

	rp.Restaurant = &restaurant
	rp.Pizza = &pizza
	return rp, nil
}

// findByID loads a single row without associations
func findByID(db *gorm.DB, dest interface{}, resource string, id int) error {
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: resource, ID: id}
		}
		return err
	}
	return nil
}
