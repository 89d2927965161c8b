package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var seedRestaurants = []models.Restaurant{
	{Name: "Karen's Pizza Shack", Address: "address1"},
	{Name: "Sanjay's Pizza", Address: "address2"},
	{Name: "Kiki's Pizza", Address: "address3"},
}

var seedPizzas = []models.Pizza{
	{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
}

// seedPrices links seedRestaurants and seedPizzas by index, inserted in order
var seedPrices = []struct {
	restaurant int
	pizza      int
	price      int
}{
	{restaurant: 0, pizza: 0, price: 1},
	{restaurant: 1, pizza: 1, price: 4},
	{restaurant: 2, pizza: 2, price: 5},
}

// SeedIfEmpty seeds the database when no restaurant exists yet
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}
	log.Info("Database is empty, seeding initial data")
	return Seed(db)
}

// Seed inserts the sample restaurants, pizzas and their prices in one transaction
func Seed(db *gorm.DB) error {
	restaurants := append([]models.Restaurant(nil), seedRestaurants...)
	pizzas := append([]models.Pizza(nil), seedPizzas...)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		rps := make([]models.RestaurantPizza, 0, len(seedPrices))
		for _, sp := range seedPrices {
			rps = append(rps, models.RestaurantPizza{
				Price:        sp.price,
				RestaurantID: restaurants[sp.restaurant].ID,
				PizzaID:      pizzas[sp.pizza].ID,
			})
		}
		return tx.Create(&rps).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	log.WithFields(logrus.Fields{
		"restaurants": len(restaurants),
		"pizzas":      len(pizzas),
	}).Info("Database seeded successfully")
	return nil
}

// Reset deletes every row of the three tables, join rows first
func Reset(db *gorm.DB) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	log.Info("Database reset")
	return nil
}
