package usecase

import (
	"context"
	"errors"
	"testing"

	"serviceos/internal/domain/entities"
	mock_interfaces "serviceos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("missing description", func(t *testing.T) {
		uc := NewOrderUseCase(nil, false)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{Description: "   "})
		if !errors.Is(err, ErrMissingDescription) {
			t.Fatalf("expected ErrMissingDescription, got %v", err)
		}
	})

	t.Run("defaults status and strips client id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, false)

		store.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ID != 0 {
					t.Fatalf("client-chosen id must be dropped, got %d", o.ID)
				}
				if o.Status != entities.OrderStatusOpen {
					t.Fatalf("status = %q, expected default Aberta", o.Status)
				}
				o.ID = 1
				return o, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.ServiceOrder{ID: 99, Description: "bancada"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 {
			t.Fatalf("expected assigned id 1, got %d", created.ID)
		}
	})

	t.Run("permissive mode accepts negative value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, false)

		store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				o.ID = 1
				return o, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.ServiceOrder{Description: "estorno", Value: -50}); err != nil {
			t.Fatalf("permissive mode rejected negative value: %v", err)
		}
	})

	t.Run("strict mode rejects negative value", func(t *testing.T) {
		uc := NewOrderUseCase(nil, true)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{Description: "x", Value: -1})
		if !errors.Is(err, ErrNegativeOrderValue) {
			t.Fatalf("expected ErrNegativeOrderValue, got %v", err)
		}
	})

	t.Run("strict mode rejects close before open", func(t *testing.T) {
		uc := NewOrderUseCase(nil, true)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{
			Description: "x",
			OpenDate:    "2024-03-10",
			CloseDate:   "2024-03-01",
		})
		if !errors.Is(err, ErrCloseBeforeOpenDate) {
			t.Fatalf("expected ErrCloseBeforeOpenDate, got %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, false)
		_, err := uc.GetByID(context.Background(), 0)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("absent maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, false)

		store.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetByID(context.Background(), 7)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, false)

		store.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.ServiceOrder{}, errors.New("backend down"))

		_, err := uc.GetByID(context.Background(), 7)
		if err == nil || err.Error() != "backend down" {
			t.Fatalf("expected backend error, got %v", err)
		}
	})
}

func TestOrderUseCase_List(t *testing.T) {
	orders := []entities.ServiceOrder{
		{ID: 3, ClientName: "Ana Souza", Status: entities.OrderStatusOpen},
		{ID: 2, ClientName: "Bruno Lima", Status: entities.OrderStatusCompleted},
		{ID: 1, ClientName: "Mariana Costa", Status: entities.OrderStatusOpen},
	}

	newUC := func(t *testing.T) *OrderUseCase {
		ctrl := gomock.NewController(t)
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		store.EXPECT().GetAll(gomock.Any()).Return(orders, nil)
		return NewOrderUseCase(store, false)
	}

	t.Run("no filters returns backend order", func(t *testing.T) {
		got, err := newUC(t).List(context.Background(), "", "")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 3 || got[0].ID != 3 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("client name search is case-insensitive", func(t *testing.T) {
		got, err := newUC(t).List(context.Background(), "ana", "")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		// Matches both "Ana Souza" and "Mariana Costa".
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %+v", got)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := newUC(t).List(context.Background(), "", entities.OrderStatusCompleted)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != 2 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestOrderUseCase_UpdateDelete(t *testing.T) {
	t.Run("update invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, false)
		if err := uc.Update(context.Background(), entities.ServiceOrder{Description: "x"}); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("update unknown id stays silent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, false)

		store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.Update(context.Background(), entities.ServiceOrder{ID: 42, Description: "x"}); err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
	})

	t.Run("delete invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, false)
		if err := uc.Delete(context.Background(), -1); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})
}
