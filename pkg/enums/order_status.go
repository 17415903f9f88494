package enums

import "fmt"

// OrderStatus tracks the lifecycle of a placed order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:    "Pending",
	OrderStatusProcessing: "Processing",
	OrderStatusCompleted:  "Completed",
	OrderStatusCancelled:  "Cancelled",
}

// AllOrderStatuses returns the statuses in display order.
func AllOrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(validOrderStatuses))
	copy(out, validOrderStatuses)
	return out
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// Label returns the human-readable form shown in the admin dashboard.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
