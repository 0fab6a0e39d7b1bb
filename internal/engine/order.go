package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/agenson/cinema-booking/internal/model"
	"github.com/agenson/cinema-booking/internal/security"
)

// OrderService manages ticket baskets. Creation and global listing are
// staff operations (orders are opened by the checkout flow); a user may
// list only their own orders.
type OrderService struct {
	st Store
}

// NewOrderService binds the service to its store.
func NewOrderService(st Store) *OrderService {
	return &OrderService{st: st}
}

// Find returns the order with the given public identifier, or nil when no
// such order exists.
func (s *OrderService) Find(ctx context.Context, orderUUID string) (*model.Order, error) {
	o, err := s.st.Orders().FindByUUID(ctx, orderUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return o, err
}

// FindAll lists every order. Staff only.
func (s *OrderService) FindAll(ctx context.Context, ident *security.Identity) ([]model.Order, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	return s.st.Orders().FindAll(ctx)
}

// FindByUser lists one user's orders. Owner only: the caller must be the
// user whose orders are requested. An unknown user yields an empty list.
func (s *OrderService) FindByUser(ctx context.Context, ident *security.Identity, userUUID string) ([]model.Order, error) {
	if err := security.RequireUser(ident, userUUID); err != nil {
		return nil, err
	}
	return s.st.Orders().FindByUser(ctx, userUUID)
}

// Create opens an empty order for the given user. Staff only; the user
// must exist.
func (s *OrderService) Create(ctx context.Context, ident *security.Identity, userUUID string) (*model.Order, error) {
	if err := security.RequireStaff(ident); err != nil {
		return nil, err
	}
	user, err := s.st.Users().FindByUUID(ctx, userUUID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	order := &model.Order{UUID: uuid.NewString(), UserUUID: user.UUID}
	if err := s.st.Orders().Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Remove deletes an order. Staff only. Tickets still referencing it lose
// their order reference at the storage layer rather than being deleted.
func (s *OrderService) Remove(ctx context.Context, ident *security.Identity, orderUUID string) error {
	if err := security.RequireStaff(ident); err != nil {
		return err
	}
	return s.st.Orders().DeleteByUUID(ctx, orderUUID)
}
