package request

import (
	"serviceos/internal/domain/entities"
)

// OrderRequest is the JSON payload accepted by the order endpoints. The
// field names match what the web client sends; id is never accepted
// from the body, it comes from the route on updates.
type OrderRequest struct {
	ClientName    string  `json:"clientName"`
	ClientPhone   string  `json:"clientPhone"`
	Description   string  `json:"description" binding:"required"`
	OpenDate      string  `json:"openDate"`
	CloseDate     string  `json:"closeDate"`
	Value         float64 `json:"value"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	Observations  string  `json:"observations"`
}

func (r OrderRequest) ToEntity(id int64) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:            id,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		Description:   r.Description,
		OpenDate:      r.OpenDate,
		CloseDate:     r.CloseDate,
		Value:         r.Value,
		Status:        entities.OrderStatus(r.Status),
		PaymentMethod: r.PaymentMethod,
		Observations:  r.Observations,
	}
}
