package services

import (
	"github.com/wbonfim/DeliveryApp/entity"
)

// orderTransitions is the full lifecycle graph. Cancelled is reachable from
// every non-terminal state; delivered and cancelled are terminal.
var orderTransitions = map[string][]string{
	entity.OrderStatusPending:    {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed:  {entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.OrderStatusPreparing:  {entity.OrderStatusReady, entity.OrderStatusCancelled},
	entity.OrderStatusReady:      {entity.OrderStatusDelivering, entity.OrderStatusCancelled},
	entity.OrderStatusDelivering: {entity.OrderStatusDelivered, entity.OrderStatusCancelled},
	entity.OrderStatusDelivered:  {},
	entity.OrderStatusCancelled:  {},
}

// ValidOrderStatus reports whether s names a known lifecycle state.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether the graph permits from -> to.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
