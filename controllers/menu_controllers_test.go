package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuItemJSON struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	Ingredients     []string `json:"ingredients"`
	PreparationTime int      `json:"preparationTime"`
	IsAvailable     bool     `json:"isAvailable"`
}

func TestMenuCRUD(t *testing.T) {
	r := setupRouter(setupTestDB(t))

	w := doRequest(t, r, http.MethodPost, "/menu", map[string]interface{}{
		"name":        "Margherita",
		"description": "Tomato, mozzarella, basil",
		"category":    "Main Course",
		"price":       12.5,
		"ingredients": []string{"tomato", "mozzarella", "basil"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created menuItemJSON
	env := decode(t, w, &created)
	assert.True(t, env.Status)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 12.5, created.Price)
	assert.Equal(t, 15, created.PreparationTime)
	assert.True(t, created.IsAvailable)
	assert.Equal(t, []string{"tomato", "mozzarella", "basil"}, created.Ingredients)

	path := fmt.Sprintf("/menu/%d", created.ID)

	w = doRequest(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPut, path, map[string]interface{}{"price": 13.75})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated menuItemJSON
	decode(t, w, &updated)
	assert.Equal(t, 13.75, updated.Price)
	assert.Equal(t, "Margherita", updated.Name)

	w = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decode(t, w, nil).Status)
}

func TestCreateMenuItemValidation(t *testing.T) {
	r := setupRouter(setupTestDB(t))

	cases := map[string]map[string]interface{}{
		"missing name":      {"price": 3},
		"zero price":        {"name": "Tea", "price": 0},
		"unknown category":  {"name": "Tea", "price": 3, "category": "Snacks"},
		"prep time too big": {"name": "Tea", "price": 3, "preparationTime": 301},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/menu", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	w := doRequest(t, r, http.MethodGet, "/menu", nil)
	var items []menuItemJSON
	decode(t, w, &items)
	assert.Empty(t, items)
}

func TestMenuMalformedRequests(t *testing.T) {
	r := setupRouter(setupTestDB(t))

	w := doRequest(t, r, http.MethodGet, "/menu/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/menu?isAvailable=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPut, "/menu/999", map[string]interface{}{"price": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/menu/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuFiltersAndSearch(t *testing.T) {
	r := setupRouter(setupTestDB(t))

	teaID := createMenuItem(t, r, "Green Tea", 3)
	createMenuItem(t, r, "Lemonade", 4)

	w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/menu/%d/availability", teaID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled menuItemJSON
	decode(t, w, &toggled)
	assert.False(t, toggled.IsAvailable)

	w = doRequest(t, r, http.MethodGet, "/menu?isAvailable=true", nil)
	var available []menuItemJSON
	decode(t, w, &available)
	require.Len(t, available, 1)
	assert.Equal(t, "Lemonade", available[0].Name)

	w = doRequest(t, r, http.MethodGet, "/menu?category=Beverage", nil)
	var beverages []menuItemJSON
	decode(t, w, &beverages)
	assert.Len(t, beverages, 2)

	w = doRequest(t, r, http.MethodGet, "/menu/search?q=TEA", nil)
	var found []menuItemJSON
	decode(t, w, &found)
	require.Len(t, found, 1)
	assert.Equal(t, teaID, found[0].ID)

	w = doRequest(t, r, http.MethodGet, "/menu/categories", nil)
	var categories []string
	decode(t, w, &categories)
	assert.Equal(t, []string{"Appetizer", "Main Course", "Dessert", "Beverage"}, categories)
}

func TestToggleAvailabilityNotFound(t *testing.T) {
	r := setupRouter(setupTestDB(t))

	w := doRequest(t, r, http.MethodPatch, "/menu/42/availability", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
