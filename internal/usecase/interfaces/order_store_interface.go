package interfaces

import (
	"context"

	"serviceos/internal/domain/entities"
)

// IOrderStore is the persistence contract both backends implement: the
// local single-slot store and the hosted Supabase adapter. Callers are
// adapter-agnostic; the facade picks one implementation at startup.
//
// Conventions:
//   - GetByID returns a zero-ID order when the id is absent.
//   - Create assigns the id; the caller's id field is ignored.
//   - Update/Delete of a missing id are silent no-ops.
//   - Result ordering is backend-defined (remote: descending id,
//     local: storage order). Sort explicitly if order matters.

type IOrderStore interface {
	GetAll(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error)
	Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, order entities.ServiceOrder) error
	Delete(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (entities.DashboardStats, error)
}
