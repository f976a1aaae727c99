package store

import (
	"errors"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
)

// Common errors returned by the store
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Store owns every mutable collection of the storefront: catalog, cart,
// wishlist, orders and session auth. All reads return deep snapshots and all
// writes are atomic, so callers can never observe or cause a partial update.
type Store interface {
	// Products returns a snapshot of the full catalog in insertion order.
	Products() []domain.Product

	// Product returns a snapshot of a single catalog entry.
	Product(id string) (domain.Product, error)

	// AddProduct inserts a new catalog entry at the front of the catalog.
	AddProduct(p domain.Product) error

	// UpdateProduct replaces the catalog entry with the same id in place.
	UpdateProduct(p domain.Product) error

	// DeleteProduct removes a catalog entry and purges it from the live cart
	// and wishlist. Orders keep their snapshots untouched.
	DeleteProduct(id string) error

	// AddReview prepends a review to the product's review list.
	AddReview(productID string, review domain.Review) error

	// Cart returns a snapshot of the cart lines.
	Cart() []domain.CartItem

	// AddToCart inserts a new line for the product or, if one exists,
	// increments its quantity by qty.
	AddToCart(productID string, qty int) error

	// UpdateCartQuantity adjusts a line's quantity by delta, clamped to a
	// minimum of 1.
	UpdateCartQuantity(productID string, delta int) error

	// RemoveFromCart deletes the line for the product. Removing an absent
	// line is not an error.
	RemoveFromCart(productID string)

	// Wishlist returns the wishlisted product ids in insertion order.
	Wishlist() []string

	// ToggleWishlist adds the id if absent or removes it if present, and
	// reports whether the id is now wishlisted.
	ToggleWishlist(productID string) bool

	// PlaceOrder snapshots the cart into a new Processing order, clears the
	// cart and returns the order. Fails with ErrEmptyCart on an empty cart.
	PlaceOrder(paymentMethod string) (domain.Order, error)

	// Orders returns order snapshots, newest first.
	Orders() []domain.Order

	// Order returns a snapshot of a single order.
	Order(id string) (domain.Order, error)

	// Login replaces the session auth state with the given role's profile.
	Login(role domain.UserRole) domain.AuthState

	// Logout clears the session auth state.
	Logout()

	// Auth returns the current session auth state.
	Auth() domain.AuthState

	// Series returns the sorted distinct series names across the catalog.
	Series() []string
}
