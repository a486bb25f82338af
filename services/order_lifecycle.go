package services

import "github.com/yeremiapane/restaurant-admin/models"

// nominalNext is the fulfillment graph staff normally follow.
var nominalNext = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing: {models.OrderStatusReady, models.OrderStatusCancelled},
	models.OrderStatusReady:     {models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered: nil,
	models.OrderStatusCancelled: nil,
}

// OrderLifecycle decides whether a status change may be applied.
//
// By default any known status may overwrite any other so staff can correct
// mistakes. With Strict set, only moves along the nominal graph (or to the
// same status) are accepted.
type OrderLifecycle struct {
	Strict bool
}

func NewOrderLifecycle(strict bool) *OrderLifecycle {
	return &OrderLifecycle{Strict: strict}
}

// AllowedNext returns the nominal successors of from.
func (l *OrderLifecycle) AllowedNext(from models.OrderStatus) []models.OrderStatus {
	return nominalNext[from]
}

func (l *OrderLifecycle) Check(from, to models.OrderStatus) error {
	if !to.Valid() {
		return invalid("status", "unknown status %q", to)
	}
	if !l.Strict || from == to {
		return nil
	}
	for _, next := range nominalNext[from] {
		if next == to {
			return nil
		}
	}
	if from.IsTerminal() {
		return invalid("status", "order is already %s", from)
	}
	return invalid("status", "cannot move order from %s to %s", from, to)
}
