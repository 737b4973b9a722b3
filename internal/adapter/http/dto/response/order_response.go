package response

import (
	"serviceos/internal/domain/entities"
)

// OrderResponse mirrors the wire shape the web client renders. Field
// names are camelCase by contract with the front end.
type OrderResponse struct {
	ID            int64   `json:"id"`
	ClientName    string  `json:"clientName"`
	ClientPhone   string  `json:"clientPhone"`
	Description   string  `json:"description"`
	OpenDate      string  `json:"openDate"`
	CloseDate     string  `json:"closeDate,omitempty"`
	Value         float64 `json:"value"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	Observations  string  `json:"observations"`
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		ClientName:    o.ClientName,
		ClientPhone:   o.ClientPhone,
		Description:   o.Description,
		OpenDate:      o.OpenDate,
		CloseDate:     o.CloseDate,
		Value:         o.Value,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		Observations:  o.Observations,
	}
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
