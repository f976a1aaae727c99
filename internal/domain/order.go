package domain

import "time"

// OrderStatus tracks fulfilment. The store only ever creates orders in
// Processing; later transitions belong to a fulfilment system that does not
// exist in this demo.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Order is an immutable record of a checkout. Items are a deep snapshot of
// the cart at commit time; mutating the live cart or catalog afterwards must
// not change them.
type Order struct {
	ID             string      `json:"id"`
	Date           time.Time   `json:"date"`
	Items          []CartItem  `json:"items"`
	Total          int64       `json:"total"`
	Status         OrderStatus `json:"status"`
	PaymentMethod  string      `json:"paymentMethod"`
	TrackingNumber string      `json:"trackingNumber"`
}

// Clone deep-copies the order so callers cannot reach the stored items.
func (o Order) Clone() Order {
	out := o
	out.Items = CloneCart(o.Items)
	return out
}
