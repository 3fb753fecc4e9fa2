package entity

import "time"

// NotificationQueue names one of the two independent notification queues.
// Each role owns its queue outright; there is no fan-out between them.
type NotificationQueue string

const (
	QueueOwner    NotificationQueue = "owner"
	QueueCustomer NotificationQueue = "customer"
)

// Notification is one entry in a role queue. Entries are prepended, newest
// first, and always start unread.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	OrderID   string    `json:"orderId,omitempty"` // Set when the message refers to an order.
}
