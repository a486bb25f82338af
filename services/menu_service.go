package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-admin/models"
	"gorm.io/gorm"
)

const (
	defaultPreparationTime = 15
	maxPreparationTime     = 300
)

// MenuItemInput carries the fields of a create or update request. Nil fields
// are left untouched on update and defaulted on create.
type MenuItemInput struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Category        *models.Category `json:"category"`
	Price           *decimal.Decimal `json:"price"`
	Ingredients     []string         `json:"ingredients"`
	PreparationTime *int             `json:"preparationTime"`
	ImageURL        *string          `json:"imageUrl"`
	IsAvailable     *bool            `json:"isAvailable"`
}

type MenuFilter struct {
	Category    *models.Category
	IsAvailable *bool
}

// MenuService is the menu item store.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// List returns menu items matching the filter in storage order.
func (s *MenuService) List(filter MenuFilter) ([]models.MenuItem, error) {
	q := s.db.Model(&models.MenuItem{})
	if filter.Category != nil {
		if !filter.Category.Valid() {
			return nil, invalid("category", "unknown category %q", *filter.Category)
		}
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.IsAvailable != nil {
		q = q.Where("is_available = ?", *filter.IsAvailable)
	}

	items := []models.MenuItem{}
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, internal("list menu items", err)
	}
	return items, nil
}

// Search matches the query case-insensitively against the name and every
// ingredient. Matching happens in Go: SQL LOWER() is ASCII-only on sqlite and
// ingredients are stored as JSON text.
func (s *MenuService) Search(query string) ([]models.MenuItem, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	all, err := s.List(MenuFilter{})
	if err != nil || needle == "" {
		return all, err
	}

	matches := []models.MenuItem{}
	for _, item := range all {
		if matchesQuery(item, needle) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func matchesQuery(item models.MenuItem, needle string) bool {
	if strings.Contains(strings.ToLower(item.Name), needle) {
		return true
	}
	for _, ingredient := range item.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), needle) {
			return true
		}
	}
	return false
}

func (s *MenuService) Categories() []models.Category {
	return models.Categories
}

func (s *MenuService) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, lookupErr("get menu item", "menu item", id, err)
	}
	return &item, nil
}

func (s *MenuService) Create(in MenuItemInput) (*models.MenuItem, error) {
	item := models.MenuItem{
		Category:        models.CategoryAppetizer,
		Ingredients:     []string{},
		PreparationTime: defaultPreparationTime,
		IsAvailable:     true,
	}
	in.applyTo(&item)
	if err := validateMenuItem(&item); err != nil {
		return nil, err
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, internal("create menu item", err)
	}
	return &item, nil
}

// Update replaces the supplied fields and re-validates the whole record.
func (s *MenuService) Update(id uint, in MenuItemInput) (*models.MenuItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	in.applyTo(item)
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, internal("update menu item", err)
	}
	return item, nil
}

// Delete removes the item. Orders that reference it keep a dangling id.
func (s *MenuService) Delete(id uint) error {
	res := s.db.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return internal("delete menu item", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "menu item", ID: id}
	}
	return nil
}

// ToggleAvailability flips is_available in a single UPDATE so concurrent
// toggles on the same row never lose a flip.
func (s *MenuService) ToggleAvailability(id uint) (*models.MenuItem, error) {
	res := s.db.Model(&models.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_available": gorm.Expr("NOT is_available"),
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return nil, internal("toggle availability", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Resource: "menu item", ID: id}
	}
	return s.GetByID(id)
}

func (in MenuItemInput) applyTo(item *models.MenuItem) {
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Ingredients != nil {
		item.Ingredients = cleanIngredients(in.Ingredients)
	}
	if in.PreparationTime != nil {
		item.PreparationTime = *in.PreparationTime
	}
	if in.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
}

func cleanIngredients(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, ingredient := range raw {
		if trimmed := strings.TrimSpace(ingredient); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validateMenuItem(item *models.MenuItem) error {
	if item.Name == "" {
		return invalid("name", "is required")
	}
	if !item.Category.Valid() {
		return invalid("category", "unknown category %q", item.Category)
	}
	if !item.Price.IsPositive() {
		return invalid("price", "must be greater than 0")
	}
	if !hasCents(item.Price) {
		return invalid("price", "must have at most 2 decimal places")
	}
	if item.PreparationTime < 1 || item.PreparationTime > maxPreparationTime {
		return invalid("preparationTime", "must be between 1 and %d minutes", maxPreparationTime)
	}
	return nil
}
