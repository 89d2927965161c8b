package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ErrPriceOutOfRange is returned when a RestaurantPizza price is outside [1, 30]
var ErrPriceOutOfRange = errors.New("Price must be between 1 and 30")

var validate = validator.New()

// RestaurantPizza links a restaurant to a pizza it sells at a given price
type RestaurantPizza struct {
	ID           int `gorm:"primaryKey" json:"id"`
	Price        int `gorm:"not null;check:price >= 1 AND price <= 30" json:"price" validate:"gte=1,lte=30"`
	RestaurantID int `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      int `gorm:"not null;index" json:"pizza_id"`

	Restaurant *Restaurant `json:"-"`
	Pizza      *Pizza      `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// Validate checks the domain constraints of the join row
func (rp *RestaurantPizza) Validate() error {
	err := validate.Struct(rp)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Price" {
				return ErrPriceOutOfRange
			}
		}
	}
	return err
}

// BeforeSave keeps out-of-range prices from reaching the database on any save path
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return rp.Validate()
}
