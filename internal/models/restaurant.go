package models

// Restaurant represents a restaurant and the pizzas it sells through RestaurantPizzas
type Restaurant struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	// RestaurantPizzas are removed together with the restaurant
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
