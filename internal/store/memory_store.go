package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/balapuneethsujay07/zenkira-store/internal/domain"
)

// orderIDBase is where the session-local order numbering starts.
const orderIDBase = 100000

// Options tunes store behavior.
type Options struct {
	// EnforceStock makes AddToCart reject quantities that would push a cart
	// line past the product's stock. Off by default: stock is advisory in
	// the storefront and the cart merely displays availability.
	EnforceStock bool
}

// MemoryStore implements Store with in-memory collections guarded by a
// single RWMutex. Every operation copies data across the boundary, so the
// internal slices are never shared with callers.
type MemoryStore struct {
	mu       sync.RWMutex
	products []domain.Product
	cart     []domain.CartItem
	wishlist []string
	orders   []domain.Order
	auth     domain.AuthState
	opts     Options
	orderSeq int
}

// NewMemoryStore creates a store seeded with the given catalog.
func NewMemoryStore(seed []domain.Product, opts Options) *MemoryStore {
	products := make([]domain.Product, 0, len(seed))
	for _, p := range seed {
		products = append(products, p.Clone())
	}
	return &MemoryStore{
		products: products,
		opts:     opts,
	}
}

func (s *MemoryStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out
}

func (s *MemoryStore) Product(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (s *MemoryStore) AddProduct(p domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.ID == p.ID {
			return &domain.ValidationError{Field: "id", Message: fmt.Sprintf("product %q already exists", p.ID)}
		}
	}

	// New arrivals go to the front, matching the admin dashboard ordering.
	s.products = append([]domain.Product{p.Clone()}, s.products...)
	return nil
}

func (s *MemoryStore) UpdateProduct(p domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p.Clone()
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *MemoryStore) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrProductNotFound
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)

	// Purge dangling references. Orders keep their snapshots.
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			break
		}
	}
	for i := range s.wishlist {
		if s.wishlist[i] == id {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) AddReview(productID string, review domain.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == productID {
			if review.ID == "" {
				review.ID = uuid.NewString()
			}
			if review.Date.IsZero() {
				review.Date = time.Now()
			}
			s.products[i].Reviews = append([]domain.Review{review}, s.products[i].Reviews...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *MemoryStore) Cart() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneCart(s.cart)
}

func (s *MemoryStore) AddToCart(productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var product *domain.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return ErrProductNotFound
	}

	current := 0
	for i := range s.cart {
		if s.cart[i].ID == productID {
			current = s.cart[i].Quantity
			break
		}
	}
	if s.opts.EnforceStock && current+qty > product.Stock {
		return ErrInsufficientStock
	}

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity += qty
			return nil
		}
	}
	s.cart = append(s.cart, domain.CartItem{Product: product.Clone(), Quantity: qty})
	return nil
}

func (s *MemoryStore) UpdateCartQuantity(productID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			qty := s.cart[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			s.cart[i].Quantity = qty
			return nil
		}
	}
	return ErrProductNotFound
}

func (s *MemoryStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) Wishlist() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.wishlist...)
}

func (s *MemoryStore) ToggleWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i] == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			return false
		}
	}
	s.wishlist = append(s.wishlist, productID)
	return true
}

func (s *MemoryStore) PlaceOrder(paymentMethod string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	s.orderSeq++
	order := domain.Order{
		ID:             fmt.Sprintf("ZK-%06d", orderIDBase+s.orderSeq),
		Date:           time.Now(),
		Items:          domain.CloneCart(s.cart),
		Total:          domain.CartTotal(s.cart),
		Status:         domain.OrderStatusProcessing,
		PaymentMethod:  paymentMethod,
		TrackingNumber: newTrackingNumber(),
	}

	// Newest first, then clear the cart wholesale.
	s.orders = append([]domain.Order{order}, s.orders...)
	s.cart = nil

	return order.Clone(), nil
}

func (s *MemoryStore) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out
}

func (s *MemoryStore) Order(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

func (s *MemoryStore) Login(role domain.UserRole) domain.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := domain.ProfileForRole(role)
	s.auth = domain.AuthState{
		IsLoggedIn: true,
		Role:       role,
		User:       &profile,
	}
	return s.auth.Clone()
}

func (s *MemoryStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = domain.AuthState{}
}

func (s *MemoryStore) Auth() domain.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.Clone()
}

func (s *MemoryStore) Series() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	out := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := seen[p.Series]; ok {
			continue
		}
		seen[p.Series] = struct{}{}
		out = append(out, p.Series)
	}
	sort.Strings(out)
	return out
}

// newTrackingNumber builds the cosmetic ZK- tracking code. Uniqueness within
// a session comes from the UUID material.
func newTrackingNumber() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ZK-" + hex[:9]
}
