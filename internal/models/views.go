package models

import "errors"

// ErrAssociationsNotLoaded is returned by CreatedView when Restaurant or Pizza is nil
var ErrAssociationsNotLoaded = errors.New("restaurant pizza associations not loaded")

// Views are the response shapes of the API. Nested views never point back to
// their parent, so restaurant -> restaurant_pizzas -> restaurant cannot recurse.

// RestaurantView is the {id, name, address} projection of a Restaurant
type RestaurantView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaView is the {id, name, ingredients} projection of a Pizza
type PizzaView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaView holds the columns of a RestaurantPizza without any nesting
type RestaurantPizzaView struct {
	ID           int `json:"id"`
	Price        int `json:"price"`
	RestaurantID int `json:"restaurant_id"`
	PizzaID      int `json:"pizza_id"`
}

// RestaurantDetailView is a restaurant together with its join rows
type RestaurantDetailView struct {
	RestaurantView
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreatedView is a join row with its pizza and restaurant embedded
type RestaurantPizzaCreatedView struct {
	RestaurantPizzaView
	Pizza      PizzaView      `json:"pizza"`
	Restaurant RestaurantView `json:"restaurant"`
}

func (r Restaurant) View() RestaurantView {
	return RestaurantView{ID: r.ID, Name: r.Name, Address: r.Address}
}

// DetailView uses the preloaded RestaurantPizzas; an unloaded association yields an empty list
func (r Restaurant) DetailView() RestaurantDetailView {
	rps := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		rps = append(rps, rp.View())
	}
	return RestaurantDetailView{
		RestaurantView:   r.View(),
		RestaurantPizzas: rps,
	}
}

func (p Pizza) View() PizzaView {
	return PizzaView{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func (rp RestaurantPizza) View() RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
		PizzaID:      rp.PizzaID,
	}
}

// CreatedView embeds the pizza and restaurant of the row.
// It fails with ErrAssociationsNotLoaded when either is nil.
func (rp RestaurantPizza) CreatedView() (RestaurantPizzaCreatedView, error) {
	if rp.Restaurant == nil || rp.Pizza == nil {
		return RestaurantPizzaCreatedView{}, ErrAssociationsNotLoaded
	}
	return RestaurantPizzaCreatedView{
		RestaurantPizzaView: rp.View(),
		Pizza:               rp.Pizza.View(),
		Restaurant:          rp.Restaurant.View(),
	}, nil
}

// RestaurantViews projects a list of restaurants
func RestaurantViews(restaurants []Restaurant) []RestaurantView {
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, r.View())
	}
	return views
}

// PizzaViews projects a list of pizzas
func PizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, p.View())
	}
	return views
}
