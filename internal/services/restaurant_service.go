package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

const resourceRestaurant = "Restaurant"

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants ordered by ID
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas
	GetRestaurantByID(id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, &NotFoundError{Resource: resourceRestaurant, ID: id}
		}
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id int) error {
	return deleteWithRestaurantPizzas(s.db, &models.Restaurant{}, resourceRestaurant, "restaurant_id", id)
}

// deleteWithRestaurantPizzas removes a parent row and every join row referencing it in one transaction
func deleteWithRestaurantPizzas(db *gorm.DB, parent interface{}, resource, foreignKey string, id int) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(parent, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: resource, ID: id}
			}
			return err
		}
		if err := tx.Where(foreignKey+" = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(parent).Error
	})

	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	return &PersistenceError{Op: "delete " + resource, Err: err}
}
