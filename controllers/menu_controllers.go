package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-admin/models"
	"github.com/yeremiapane/restaurant-admin/services"
	"github.com/yeremiapane/restaurant-admin/utils"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GetMenuItems
// Endpoint: GET /menu?category=<category>&isAvailable=<bool>
func (mc *MenuController) GetMenuItems(c *gin.Context) {
	var filter services.MenuFilter
	if category := c.Query("category"); category != "" {
		cat := models.Category(category)
		filter.Category = &cat
	}
	if raw := c.Query("isAvailable"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("query parameter 'isAvailable' must be true or false"))
			return
		}
		filter.IsAvailable = &available
	}

	items, err := mc.Menu.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// SearchMenuItems
// Endpoint: GET /menu/search?q=<keyword>
func (mc *MenuController) SearchMenuItems(c *gin.Context) {
	items, err := mc.Menu.Search(c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("%d menu items found", len(items)), items)
}

func (mc *MenuController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Menu categories", mc.Menu.Categories())
}

func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := mc.Menu.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body services.MenuItemInput
	if !bindJSON(c, &body) {
		return
	}

	item, err := mc.Menu.Create(body)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.WithField("menu_item_id", item.ID).Info("menu item created")
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem only replaces the fields present in the body.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body services.MenuItemInput
	if !bindJSON(c, &body) {
		return
	}

	item, err := mc.Menu.Update(id, body)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := mc.Menu.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.InfoLogger.WithField("menu_item_id", id).Info("menu item deleted")
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": id})
}

func (mc *MenuController) ToggleAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := mc.Menu.ToggleAvailability(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Menu item is now unavailable"
	if item.IsAvailable {
		message = "Menu item is now available"
	}
	utils.RespondJSON(c, http.StatusOK, message, item)
}
