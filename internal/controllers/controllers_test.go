package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRestaurantService struct {
	restaurants []models.Restaurant
	err         error
	deletedID   int
}

func (f *fakeRestaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	return f.restaurants, f.err
}

func (f *fakeRestaurantService) GetRestaurantByID(id int) (models.Restaurant, error) {
	if f.err != nil {
		return models.Restaurant{}, f.err
	}
	for _, r := range f.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Restaurant{}, &services.NotFoundError{Resource: "Restaurant", ID: id}
}

func (f *fakeRestaurantService) DeleteRestaurant(id int) error {
	f.deletedID = id
	return f.err
}

type fakePizzaService struct {
	pizzas []models.Pizza
	err    error
}

func (f *fakePizzaService) GetAllPizzas() ([]models.Pizza, error) {
	return f.pizzas, f.err
}

func (f *fakePizzaService) GetPizzaByID(id int) (models.Pizza, error) {
	return models.Pizza{}, f.err
}

func (f *fakePizzaService) DeletePizza(id int) error {
	return f.err
}

type fakeRestaurantPizzaService struct {
	rp    models.RestaurantPizza
	err   error
	calls int
}

func (f *fakeRestaurantPizzaService) CreateRestaurantPizza(price, restaurantID, pizzaID int) (models.RestaurantPizza, error) {
	f.calls++
	return f.rp, f.err
}

func performRequest(handler gin.HandlerFunc, method, path, route, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Handle(method, route, handler)

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetAllRestaurantsController(t *testing.T) {
	service := &fakeRestaurantService{restaurants: []models.Restaurant{
		{ID: 1, Name: "Kiki's Pizza", Address: "address3", RestaurantPizzas: []models.RestaurantPizza{{ID: 1, Price: 3}}},
	}}
	controller := NewRestaurantController(service)

	w := performRequest(controller.GetAllRestaurants, http.MethodGet, "/restaurants", "/restaurants", "")

	assert.Equal(t, http.StatusOK, w.Code)
	// Join rows are not part of the list view
	assert.JSONEq(t, `[{"id":1,"name":"Kiki's Pizza","address":"address3"}]`, w.Body.String())
}

func TestGetAllRestaurantsControllerError(t *testing.T) {
	controller := NewRestaurantController(&fakeRestaurantService{err: errors.New("connection refused")})

	w := performRequest(controller.GetAllRestaurants, http.MethodGet, "/restaurants", "/restaurants", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestDeleteRestaurantControllerPersistenceError(t *testing.T) {
	service := &fakeRestaurantService{err: &services.PersistenceError{
		Op:  "delete Restaurant",
		Err: errors.New("FOREIGN KEY constraint failed"),
	}}
	controller := NewRestaurantController(service)

	w := performRequest(controller.DeleteRestaurant, http.MethodDelete, "/restaurants/7", "/restaurants/:id", "")

	assert.Equal(t, 7, service.deletedID)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestDeleteRestaurantControllerInvalidID(t *testing.T) {
	service := &fakeRestaurantService{}
	controller := NewRestaurantController(service)

	w := performRequest(controller.DeleteRestaurant, http.MethodDelete, "/restaurants/1.5", "/restaurants/:id", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())
	assert.Zero(t, service.deletedID)
}

func TestGetAllPizzasControllerError(t *testing.T) {
	controller := NewPizzaController(&fakePizzaService{err: errors.New("boom")})

	w := performRequest(controller.GetAllPizzas, http.MethodGet, "/pizzas", "/pizzas", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestCreateRestaurantPizzaController(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		body         string
		expectedCode int
		expectedBody string
		expectCall   bool
	}{
		{
			name:         "created",
			body:         `{"price":15,"restaurant_id":1,"pizza_id":2}`,
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":3,"price":15,"restaurant_id":1,"pizza_id":2,` +
				`"pizza":{"id":2,"name":"Geri","ingredients":"Dough"},` +
				`"restaurant":{"id":1,"name":"Karen's Pizza Shack","address":"address1"}}`,
			expectCall: true,
		},
		{
			name:         "validation error",
			err:          &services.ValidationError{Messages: []string{"Price must be between 1 and 30"}},
			body:         `{"price":31,"restaurant_id":1,"pizza_id":2}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":["Price must be between 1 and 30"]}`,
			expectCall:   true,
		},
		{
			name:         "pizza not found",
			err:          &services.NotFoundError{Resource: "Pizza", ID: 2},
			body:         `{"price":10,"restaurant_id":1,"pizza_id":2}`,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Pizza not found"}`,
			expectCall:   true,
		},
		{
			name:         "persistence error",
			err:          &services.PersistenceError{Op: "create restaurant pizza", Err: errors.New("disk I/O error")},
			body:         `{"price":10,"restaurant_id":1,"pizza_id":2}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
			expectCall:   true,
		},
		{
			name:         "zero values are present values",
			err:          &services.NotFoundError{Resource: "Restaurant", ID: 0},
			body:         `{"price":10,"restaurant_id":0,"pizza_id":0}`,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Restaurant not found"}`,
			expectCall:   true,
		},
		{
			name:         "missing field",
			body:         `{"price":10,"restaurant_id":1}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Bad request"}`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakeRestaurantPizzaService{
				err: tt.err,
				rp: models.RestaurantPizza{
					ID: 3, Price: 15, RestaurantID: 1, PizzaID: 2,
					Restaurant: &models.Restaurant{ID: 1, Name: "Karen's Pizza Shack", Address: "address1"},
					Pizza:      &models.Pizza{ID: 2, Name: "Geri", Ingredients: "Dough"},
				},
			}
			controller := NewRestaurantPizzaController(service)

			w := performRequest(controller.CreateRestaurantPizza, http.MethodPost, "/restaurant_pizzas", "/restaurant_pizzas", tt.body)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.expectCall, service.calls == 1)
		})
	}
}

func TestCreateRestaurantPizzaControllerMissingAssociations(t *testing.T) {
	service := &fakeRestaurantPizzaService{
		rp: models.RestaurantPizza{ID: 3, Price: 15, RestaurantID: 1, PizzaID: 2},
	}
	controller := NewRestaurantPizzaController(service)

	w := performRequest(controller.CreateRestaurantPizza, http.MethodPost, "/restaurant_pizzas", "/restaurant_pizzas",
		`{"price":15,"restaurant_id":1,"pizza_id":2}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
