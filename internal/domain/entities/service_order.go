package entities

// OrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The values are the Portuguese labels stored on the wire; the UI
//     renders them verbatim.
//   - Declaration order is the fixed display order used by the dashboard
//     breakdown. There is no enforced transition graph; Concluída and
//     Cancelada are terminal only by convention.

type OrderStatus string

const (
	OrderStatusOpen                 OrderStatus = "Aberta"
	OrderStatusCreation             OrderStatus = "Criação"
	OrderStatusProduction           OrderStatus = "Produção"
	OrderStatusAwaitingInstallation OrderStatus = "Aguardando instalação"
	OrderStatusCompleted            OrderStatus = "Concluída"
	OrderStatusCancelled            OrderStatus = "Cancelada"
)

// AllOrderStatuses returns every status in declaration order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusOpen,
		OrderStatusCreation,
		OrderStatusProduction,
		OrderStatusAwaitingInstallation,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

// PaymentMethod is the agreed payment method for an order.
//
// The known values below are what the form offers, but the field is an
// open string: orders imported from elsewhere may carry arbitrary labels.

type PaymentMethod = string

const (
	PaymentMethodCash   PaymentMethod = "Dinheiro"
	PaymentMethodPix    PaymentMethod = "Pix"
	PaymentMethodCredit PaymentMethod = "Crédito"
	PaymentMethodDebit  PaymentMethod = "Débito"
	PaymentMethodBoleto PaymentMethod = "Boleto"
)

// ServiceOrder is a unit of billable work tracked through the status
// lifecycle.
//
// Storage model:
//   - ID is assigned by the persistence layer on creation and immutable
//     afterwards; callers never choose it.
//   - OpenDate/CloseDate are ISO date strings as stored on the wire.
//     CloseDate is empty while the work is unfinished.
type ServiceOrder struct {
	ID            int64       `json:"id"`
	ClientName    string      `json:"clientName"`
	ClientPhone   string      `json:"clientPhone"`
	Description   string      `json:"description"`
	OpenDate      string      `json:"openDate"`
	CloseDate     string      `json:"closeDate,omitempty"`
	Value         float64     `json:"value"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	Observations  string      `json:"observations"`
}

// StatusCount is one slice of the dashboard status breakdown.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardStats is derived from the full order set and never persisted.
//
// ByStatus always carries one entry per OrderStatus value, in declaration
// order, including zero counts.
type DashboardStats struct {
	TotalOpen          int           `json:"totalOpen"`
	CompletedThisMonth int           `json:"completedThisMonth"`
	RevenueThisMonth   float64       `json:"revenueThisMonth"`
	ByStatus           []StatusCount `json:"byStatus"`
}
