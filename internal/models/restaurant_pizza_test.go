package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurantPizzaValidate(t *testing.T) {
	testCases := []struct {
		name    string
		price   int
		wantErr bool
	}{
		{name: "lower bound is valid", price: 1},
		{name: "upper bound is valid", price: 30},
		{name: "middle of range is valid", price: 15},
		{name: "zero is rejected", price: 0, wantErr: true},
		{name: "above range is rejected", price: 31, wantErr: true},
		{name: "negative is rejected", price: -5, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rp := RestaurantPizza{Price: tt.price, RestaurantID: 1, PizzaID: 1}

			err := rp.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPriceOutOfRange)
				assert.Equal(t, "Price must be between 1 and 30", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestaurantPizzaBeforeSave(t *testing.T) {
	rp := &RestaurantPizza{Price: 31, RestaurantID: 1, PizzaID: 1}
	assert.ErrorIs(t, rp.BeforeSave(nil), ErrPriceOutOfRange)

	rp.Price = 30
	assert.NoError(t, rp.BeforeSave(nil))
}

func TestRestaurantPizzaValidateIgnoresAssociations(t *testing.T) {
	rp := RestaurantPizza{
		Price:      10,
		Restaurant: &Restaurant{ID: 1, Name: "Karen's Pizza Shack"},
		Pizza:      &Pizza{ID: 1, Name: "Emma"},
	}
	assert.NoError(t, rp.Validate())
}
