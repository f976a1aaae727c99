package domain

// CartItem is a product snapshot plus a quantity. The cart holds at most one
// item per product id; adding the same product again merges quantities.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Clone deep-copies the item, including the embedded product snapshot.
func (i CartItem) Clone() CartItem {
	return CartItem{Product: i.Product.Clone(), Quantity: i.Quantity}
}

// CartTotal sums the line subtotals. Shipping is a presentation concern and
// is never folded in here.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// CloneCart deep-copies a cart slice.
func CloneCart(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
