package order

type Status string

const (
	StatusPending         Status = "pending"
	StatusPreparing       Status = "preparing"
	StatusDelivering      Status = "delivering"
	StatusCompleted       Status = "completed"
	StatusPickupReady     Status = "pickup_ready"
	StatusPickupCompleted Status = "pickup_completed"
	StatusCancelled       Status = "cancelled"
)

// The second transition branches on the order's delivery type; cancellation
// is allowed from any non-terminal state.
var deliveryNext = map[Status]map[Status]bool{
	StatusPending:    {StatusPreparing: true, StatusCancelled: true},
	StatusPreparing:  {StatusDelivering: true, StatusCancelled: true},
	StatusDelivering: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

var pickupNext = map[Status]map[Status]bool{
	StatusPending:         {StatusPreparing: true, StatusCancelled: true},
	StatusPreparing:       {StatusPickupReady: true, StatusCancelled: true},
	StatusPickupReady:     {StatusPickupCompleted: true, StatusCancelled: true},
	StatusPickupCompleted: {},
	StatusCancelled:       {},
}

// CanTransition reports whether an order of the given delivery type may move
// from one status to another.
func CanTransition(t DeliveryType, from, to Status) bool {
	if t == DeliveryTypePickup {
		return pickupNext[from][to]
	}
	return deliveryNext[from][to]
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(t DeliveryType, s Status) bool {
	if t == DeliveryTypePickup {
		return len(pickupNext[s]) == 0
	}
	return len(deliveryNext[s]) == 0
}
