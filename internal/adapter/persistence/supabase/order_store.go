package supabase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"serviceos/internal/domain/entities"
	"serviceos/internal/domain/principal"
	"serviceos/internal/domain/stats"
	"serviceos/internal/usecase/interfaces"
)

const ordersTable = restPrefix + "/service_orders"

// orderRow is the PostgREST wire shape of a service order. Every domain
// field has exactly one snake_case counterpart here; keep the two
// conversions below total when the schema grows.
type orderRow struct {
	ID            int64   `json:"id,omitempty"`
	ClientName    string  `json:"client_name"`
	ClientPhone   string  `json:"client_phone"`
	Description   string  `json:"description"`
	OpenDate      string  `json:"open_date"`
	CloseDate     *string `json:"close_date"`
	Value         float64 `json:"value"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	Observations  string  `json:"observations"`
	UserID        *string `json:"user_id,omitempty"`
}

// OrderStore persists service orders in the collaborator's
// service_orders table. Reads come back newest first (descending id),
// unlike the local backend's storage order.
type OrderStore struct {
	c *Client
}

var _ interfaces.IOrderStore = (*OrderStore)(nil)

func NewOrderStore(c *Client) *OrderStore {
	return &OrderStore{c: c}
}

func (s *OrderStore) GetAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "id.desc")

	var rows []orderRow
	if err := s.c.do(ctx, http.MethodGet, ordersTable, q, nil, &rows, nil, ""); err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, fromOrderRow(r))
	}
	return orders, nil
}

func (s *OrderStore) GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+strconv.FormatInt(id, 10))
	q.Set("limit", "1")

	var rows []orderRow
	if err := s.c.do(ctx, http.MethodGet, ordersTable, q, nil, &rows, nil, ""); err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(rows) == 0 {
		return entities.ServiceOrder{}, nil
	}
	return fromOrderRow(rows[0]), nil
}

func (s *OrderStore) Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	row := toOrderRow(order)
	row.ID = 0

	// The owning principal is stamped explicitly even though the
	// collaborator defaults it server-side.
	if user := principal.UserFrom(ctx); user.ID != "" {
		row.UserID = &user.ID
	}

	var created []orderRow
	headers := map[string]string{"Prefer": "return=representation"}
	if err := s.c.do(ctx, http.MethodPost, ordersTable, nil, []orderRow{row}, &created, headers, ""); err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(created) == 0 {
		return entities.ServiceOrder{}, &APIError{Method: http.MethodPost, Path: ordersTable, Status: http.StatusNoContent, Body: "empty representation"}
	}
	return fromOrderRow(created[0]), nil
}

func (s *OrderStore) Update(ctx context.Context, order entities.ServiceOrder) error {
	q := url.Values{}
	q.Set("id", "eq."+strconv.FormatInt(order.ID, 10))

	row := toOrderRow(order)
	row.ID = 0

	// A filter matching nothing is an empty OK result, not an error.
	return s.c.do(ctx, http.MethodPatch, ordersTable, q, row, nil, nil, "")
}

func (s *OrderStore) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	q.Set("id", "eq."+strconv.FormatInt(id, 10))
	return s.c.do(ctx, http.MethodDelete, ordersTable, q, nil, nil, nil, "")
}

func (s *OrderStore) GetStats(ctx context.Context) (entities.DashboardStats, error) {
	orders, err := s.GetAll(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	return stats.Compute(orders, time.Now()), nil
}

func toOrderRow(o entities.ServiceOrder) orderRow {
	var closeDate *string
	if o.CloseDate != "" {
		closeDate = &o.CloseDate
	}
	return orderRow{
		ID:            o.ID,
		ClientName:    o.ClientName,
		ClientPhone:   o.ClientPhone,
		Description:   o.Description,
		OpenDate:      o.OpenDate,
		CloseDate:     closeDate,
		Value:         o.Value,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		Observations:  o.Observations,
	}
}

func fromOrderRow(r orderRow) entities.ServiceOrder {
	closeDate := ""
	if r.CloseDate != nil {
		closeDate = *r.CloseDate
	}
	return entities.ServiceOrder{
		ID:            r.ID,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		Description:   r.Description,
		OpenDate:      r.OpenDate,
		CloseDate:     closeDate,
		Value:         r.Value,
		Status:        entities.OrderStatus(r.Status),
		PaymentMethod: r.PaymentMethod,
		Observations:  r.Observations,
	}
}
