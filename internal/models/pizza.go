package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`

	// RestaurantPizzas are removed together with the pizza
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
