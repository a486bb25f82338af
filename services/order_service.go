package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-admin/models"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type OrderItemInput struct {
	MenuItemID uint            `json:"menuItem"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// OrderInput is stored as given: the caller computes TotalAmount and the
// per-line price snapshots.
type OrderInput struct {
	OrderNumber  string             `json:"orderNumber"`
	Items        []OrderItemInput   `json:"items"`
	TotalAmount  *decimal.Decimal   `json:"totalAmount"`
	Status       models.OrderStatus `json:"status"`
	CustomerName *string            `json:"customerName"`
	TableNumber  *int               `json:"tableNumber"`
}

type OrderFilter struct {
	Status *models.OrderStatus
}

type OrderPage struct {
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Orders []models.Order `json:"orders"`
}

// OrderService is the order store. Status changes go through the lifecycle.
type OrderService struct {
	db        *gorm.DB
	lifecycle *OrderLifecycle
}

func NewOrderService(db *gorm.DB, lifecycle *OrderLifecycle) *OrderService {
	if lifecycle == nil {
		lifecycle = NewOrderLifecycle(false)
	}
	return &OrderService{db: db, lifecycle: lifecycle}
}

// withItems preloads line items in insertion order and resolves their menu
// items. A deleted menu item leaves MenuItem nil.
func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_items.id ASC") }).
		Preload("Items.MenuItem")
}

// List returns one page of orders, newest first, and the number of orders
// matching the filter. Pages are 1-based.
func (s *OrderService) List(filter OrderFilter, page, limit int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, invalid("status", "unknown status %q", *filter.Status)
	}
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			return db.Where("status = ?", *filter.Status)
		}
		return db
	}

	var total int64
	if err := s.db.Model(&models.Order{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, internal("count orders", err)
	}

	orders := []models.Order{}
	// past math.MaxInt/limit the offset overflows; no page that far holds rows
	if page-1 > math.MaxInt/limit {
		return &OrderPage{Total: total, Page: page, Limit: limit, Orders: orders}, nil
	}
	if err := withItems(s.db).
		Scopes(scope).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, internal("list orders", err)
	}

	return &OrderPage{Total: total, Page: page, Limit: limit, Orders: orders}, nil
}

func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := withItems(s.db).First(&order, id).Error; err != nil {
		return nil, lookupErr("get order", "order", id, err)
	}
	return &order, nil
}

func (s *OrderService) Create(in OrderInput) (*models.Order, error) {
	order, err := in.toOrder()
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).
			Where("order_number = ?", order.OrderNumber).
			Count(&count).Error; err != nil {
			return internal("check order number", err)
		}
		if count > 0 {
			return invalid("orderNumber", "%q already exists", order.OrderNumber)
		}

		if err := tx.Create(order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return invalid("orderNumber", "%q already exists", order.OrderNumber)
			}
			return internal("create order", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(order.ID)
}

// UpdateStatus overwrites the status and touches updated_at. In strict mode
// the write is guarded on the status that was checked, like a
// compare-and-swap, so a concurrent change is reported instead of skipped
// over.
func (s *OrderService) UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	var current models.Order
	if err := s.db.Select("id", "status").First(&current, id).Error; err != nil {
		return nil, lookupErr("get order", "order", id, err)
	}

	if err := s.lifecycle.Check(current.Status, status); err != nil {
		return nil, err
	}

	q := s.db.Model(&models.Order{}).Where("id = ?", id)
	if s.lifecycle.Strict {
		q = q.Where("status = ?", current.Status)
	}
	res := q.Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return nil, internal("update order status", res.Error)
	}
	if res.RowsAffected == 0 {
		// mysql counts changed rows only, so an identical write lands here too
		order, err := s.GetByID(id)
		if err != nil {
			return nil, err
		}
		if s.lifecycle.Strict && order.Status != status {
			return nil, invalid("status", "order %d changed concurrently, reload and retry", id)
		}
		return order, nil
	}

	return s.GetByID(id)
}

func (in OrderInput) toOrder() (*models.Order, error) {
	number := strings.TrimSpace(in.OrderNumber)
	if number == "" {
		return nil, invalid("orderNumber", "is required")
	}
	if in.TotalAmount == nil {
		return nil, invalid("totalAmount", "is required")
	}
	if in.TotalAmount.IsNegative() {
		return nil, invalid("totalAmount", "must not be negative")
	}
	if !hasCents(*in.TotalAmount) {
		return nil, invalid("totalAmount", "must have at most 2 decimal places")
	}

	status := in.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !status.Valid() {
		return nil, invalid("status", "unknown status %q", status)
	}
	if in.TableNumber != nil && *in.TableNumber < 1 {
		return nil, invalid("tableNumber", "must be a positive number")
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for i, line := range in.Items {
		if line.MenuItemID == 0 {
			return nil, invalid("items", "item %d has no menu item", i+1)
		}
		if line.Quantity <= 0 {
			return nil, invalid("items", "item %d quantity must be greater than 0", i+1)
		}
		if !line.Price.IsPositive() {
			return nil, invalid("items", "item %d price must be greater than 0", i+1)
		}
		if !hasCents(line.Price) {
			return nil, invalid("items", "item %d price must have at most 2 decimal places", i+1)
		}
		items = append(items, models.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	order := &models.Order{
		OrderNumber: number,
		Items:       items,
		TotalAmount: *in.TotalAmount,
		Status:      status,
		TableNumber: in.TableNumber,
	}
	if in.CustomerName != nil {
		if name := strings.TrimSpace(*in.CustomerName); name != "" {
			order.CustomerName = &name
		}
	}
	return order, nil
}

// hasCents reports whether d fits the 2-decimal money columns unchanged.
func hasCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
