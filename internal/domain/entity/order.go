package entity

import "time"

// OrderStatus is the five-stage order lifecycle. The stages describe the
// intended forward sequence; setting a status does not enforce ordering, so
// an owner may jump an order straight to any stage.
type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "New"
	OrderStatusAccepted       OrderStatus = "Accepted"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// OrderStatusSequence lists the stages in display order, New first.
var OrderStatusSequence = []OrderStatus{
	OrderStatusNew,
	OrderStatusAccepted,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// Valid reports whether s is one of the five known stages.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatusSequence {
		if s == known {
			return true
		}
	}

	return false
}

// Order is an immutable snapshot taken at placement time. Items are deep
// copies of the cart lines, so later product edits or deletes never alter a
// placed order.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customerId"`
	CustomerName string      `json:"customerName"`
	ShopOwnerID  string      `json:"shopOwnerId"`
	Items        []CartItem  `json:"items"`
	TotalPrice   int         `json:"totalPrice"` // Line subtotal plus the flat delivery charge.
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}
