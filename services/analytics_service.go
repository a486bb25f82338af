package services

import (
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-admin/models"
	"github.com/yeremiapane/restaurant-admin/utils"
	"gorm.io/gorm"
)

// TopSeller aggregates every line item of one menu item. Name, Category and
// ImageURL are empty when the menu item has since been deleted.
type TopSeller struct {
	MenuItemID    uint            `json:"menuItemId"`
	Name          string          `json:"name,omitempty"`
	Category      models.Category `json:"category,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	OrderCount    int64           `json:"orderCount"`
}

type TopSellerFilter struct {
	// Status restricts the scan to orders in one status. Nil scans every order.
	Status *models.OrderStatus
	// Limit caps the number of rows; zero means no cap.
	Limit int
}

type RevenueSummary struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	FormattedRevenue string          `json:"formattedRevenue"`
	DeliveredOrders  int64           `json:"deliveredOrders"`
}

type DashboardStats struct {
	TotalOrders      int64                        `json:"totalOrders"`
	TotalRevenue     decimal.Decimal              `json:"totalRevenue"`
	FormattedRevenue string                       `json:"formattedRevenue"`
	TotalMenuItems   int64                        `json:"totalMenuItems"`
	AvailableItems   int64                        `json:"availableItems"`
	OrdersByStatus   map[models.OrderStatus]int64 `json:"ordersByStatus"`
}

type sellerRow struct {
	MenuItemID    uint
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	OrderCount    int64
	FirstSeen     uint
}

type statusCount struct {
	Status models.OrderStatus
	Count  int64
}

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// TopSellers ranks menu items by total quantity sold. Ties keep the order in
// which the items were first ordered.
func (s *AnalyticsService) TopSellers(filter TopSellerFilter) ([]TopSeller, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, invalid("status", "unknown status %q", *filter.Status)
	}

	var rows []sellerRow

	q := s.db.Table("order_items").
		Select(`order_items.menu_item_id AS menu_item_id,
			SUM(order_items.quantity) AS total_quantity,
			SUM(order_items.price * order_items.quantity) AS total_revenue,
			COUNT(DISTINCT order_items.order_id) AS order_count,
			MIN(order_items.id) AS first_seen`).
		Group("order_items.menu_item_id").
		Order("total_quantity DESC, first_seen ASC")
	if filter.Status != nil {
		q = q.Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("orders.status = ?", *filter.Status)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, internal("aggregate top sellers", err)
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.MenuItemID)
	}
	byID := map[uint]models.MenuItem{}
	if len(ids) > 0 {
		var items []models.MenuItem
		if err := s.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
			return nil, internal("load top seller menu items", err)
		}
		for _, item := range items {
			byID[item.ID] = item
		}
	}

	sellers := make([]TopSeller, 0, len(rows))
	for _, r := range rows {
		seller := TopSeller{
			MenuItemID:    r.MenuItemID,
			TotalQuantity: r.TotalQuantity,
			TotalRevenue:  r.TotalRevenue.Round(2),
			OrderCount:    r.OrderCount,
		}
		if item, ok := byID[r.MenuItemID]; ok {
			seller.Name = item.Name
			seller.Category = item.Category
			seller.ImageURL = item.ImageURL
		}
		sellers = append(sellers, seller)
	}
	return sellers, nil
}

// RevenueSummary sums totalAmount over delivered orders only.
func (s *AnalyticsService) RevenueSummary() (*RevenueSummary, error) {
	var totals []decimal.Decimal
	if err := s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusDelivered).
		Pluck("total_amount", &totals).Error; err != nil {
		return nil, internal("sum revenue", err)
	}

	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	sum = sum.Round(2)

	return &RevenueSummary{
		TotalRevenue:     sum,
		FormattedRevenue: utils.FormatMoney(sum),
		DeliveredOrders:  int64(len(totals)),
	}, nil
}

func (s *AnalyticsService) DashboardStats() (*DashboardStats, error) {
	revenue, err := s.RevenueSummary()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalRevenue:     revenue.TotalRevenue,
		FormattedRevenue: revenue.FormattedRevenue,
		OrdersByStatus:   make(map[models.OrderStatus]int64, len(models.OrderStatuses)),
	}
	for _, st := range models.OrderStatuses {
		stats.OrdersByStatus[st] = 0
	}

	var counts []statusCount
	if err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, internal("count orders by status", err)
	}
	for _, c := range counts {
		stats.OrdersByStatus[c.Status] = c.Count
		stats.TotalOrders += c.Count
	}

	if err := s.db.Model(&models.MenuItem{}).Count(&stats.TotalMenuItems).Error; err != nil {
		return nil, internal("count menu items", err)
	}
	if err := s.db.Model(&models.MenuItem{}).
		Where("is_available = ?", true).
		Count(&stats.AvailableItems).Error; err != nil {
		return nil, internal("count available menu items", err)
	}

	return stats, nil
}
