package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"serviceos/internal/domain/entities"
	"serviceos/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound       = errors.New("service order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrMissingDescription  = errors.New("missing order description")
	ErrNegativeOrderValue  = errors.New("negative order value")
	ErrCloseBeforeOpenDate = errors.New("close date before open date")
)

// IOrderUseCase exposes the service-order operations behind the HTTP
// surface.

type IOrderUseCase interface {
	List(ctx context.Context, search string, status entities.OrderStatus) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error)
	Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, order entities.ServiceOrder) error
	Delete(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (entities.DashboardStats, error)
}

// OrderUseCase validates input and delegates persistence to whichever
// backend the facade selected.
//
// strict mirrors STRICT_ORDER_VALIDATION: historically neither the
// value sign nor the open/close date ordering were checked, and stored
// data may violate both, so the checks are opt-in.
type OrderUseCase struct {
	store  interfaces.IOrderStore
	strict bool
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store interfaces.IOrderStore, strict bool) *OrderUseCase {
	return &OrderUseCase{store: store, strict: strict}
}

// List returns orders in backend-defined order, optionally narrowed by
// a case-insensitive client-name search and an exact status match.
func (u *OrderUseCase) List(ctx context.Context, search string, status entities.OrderStatus) ([]entities.ServiceOrder, error) {
	orders, err := u.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" && status == "" {
		return orders, nil
	}

	filtered := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if search != "" && !strings.Contains(strings.ToLower(o.ClientName), search) {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	order, err := u.store.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	order.ID = 0
	if order.Status == "" {
		order.Status = entities.OrderStatusOpen
	}
	if err := u.validate(order); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.store.Create(ctx, order)
}

// Update replaces the stored order wholesale. An unknown id is a silent
// no-op on both backends; callers that care check GetByID first.
func (u *OrderUseCase) Update(ctx context.Context, order entities.ServiceOrder) error {
	if order.ID <= 0 {
		return ErrInvalidOrderID
	}
	if err := u.validate(order); err != nil {
		return err
	}
	return u.store.Update(ctx, order)
}

func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}
	return u.store.Delete(ctx, id)
}

func (u *OrderUseCase) GetStats(ctx context.Context) (entities.DashboardStats, error) {
	return u.store.GetStats(ctx)
}

func (u *OrderUseCase) validate(order entities.ServiceOrder) error {
	if strings.TrimSpace(order.Description) == "" {
		return ErrMissingDescription
	}
	if !u.strict {
		return nil
	}
	if order.Value < 0 {
		return ErrNegativeOrderValue
	}
	if order.CloseDate != "" && order.OpenDate != "" {
		open, okOpen := parseOrderDate(order.OpenDate)
		closed, okClose := parseOrderDate(order.CloseDate)
		if okOpen && okClose && closed.Before(open) {
			return ErrCloseBeforeOpenDate
		}
	}
	return nil
}

func parseOrderDate(v string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
