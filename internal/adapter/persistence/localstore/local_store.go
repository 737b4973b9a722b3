// Package localstore is the offline persistence backend: the whole order
// set lives as one JSON array under a fixed key in an embedded SQLite
// key-value table, the way the browser build kept it in a single
// localStorage slot.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"time"

	_ "modernc.org/sqlite"

	"serviceos/internal/domain/entities"
	"serviceos/internal/domain/stats"
	"serviceos/internal/usecase/interfaces"
)

// Fixed slot holding the serialized order collection. Renaming it is a
// breaking format change; there is no migration path.
const storageKey = "service_orders_db"

const (
	minLatency = 200 * time.Millisecond
	maxLatency = 300 * time.Millisecond
)

// Store keeps every order in a single kv row and rewrites the whole
// slot on each mutation. The read-modify-write is deliberately not
// wrapped in a transaction: two concurrent writers race exactly like
// two browser tabs did, last write wins.
type Store struct {
	db *sql.DB

	// Simulated network latency so callers exercise the same async
	// code paths whichever backend is active. Swapped out in tests.
	pause func(ctx context.Context) error
}

var _ interfaces.IOrderStore = (*Store)(nil)

func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, pause: simulateLatency}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GetAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	return s.readAll(ctx), nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	if err := s.pause(ctx); err != nil {
		return entities.ServiceOrder{}, err
	}
	for _, o := range s.readAll(ctx) {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (s *Store) Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := s.pause(ctx); err != nil {
		return entities.ServiceOrder{}, err
	}

	orders := s.readAll(ctx)

	// Next id derives from the current contents, not a counter, so it
	// reuses ids freed by deleting the newest order.
	var maxID int64
	for _, o := range orders {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	order.ID = maxID + 1

	orders = append(orders, order)
	if err := s.writeAll(ctx, orders); err != nil {
		return entities.ServiceOrder{}, err
	}
	return order, nil
}

func (s *Store) Update(ctx context.Context, order entities.ServiceOrder) error {
	if err := s.pause(ctx); err != nil {
		return err
	}

	orders := s.readAll(ctx)
	for i, o := range orders {
		if o.ID == order.ID {
			orders[i] = order
			return s.writeAll(ctx, orders)
		}
	}
	// Unknown id: silent no-op, nothing is written.
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.pause(ctx); err != nil {
		return err
	}

	orders := s.readAll(ctx)
	filtered := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			filtered = append(filtered, o)
		}
	}
	return s.writeAll(ctx, filtered)
}

func (s *Store) GetStats(ctx context.Context) (entities.DashboardStats, error) {
	if err := s.pause(ctx); err != nil {
		return entities.DashboardStats{}, err
	}
	return stats.Compute(s.readAll(ctx), time.Now()), nil
}

// readAll deserializes the slot. A missing row or malformed payload is
// treated as an empty collection: availability wins over surfacing a
// corrupt cache.
func (s *Store) readAll(ctx context.Context) []entities.ServiceOrder {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, storageKey).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[localstore] read failed key=%s err=%v", storageKey, err)
		}
		return nil
	}

	var orders []entities.ServiceOrder
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		log.Printf("[localstore] malformed payload discarded key=%s err=%v", storageKey, err)
		return nil
	}
	return orders
}

func (s *Store) writeAll(ctx context.Context, orders []entities.ServiceOrder) error {
	if orders == nil {
		orders = []entities.ServiceOrder{}
	}
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		storageKey, string(raw))
	return err
}

func simulateLatency(ctx context.Context) error {
	d := minLatency + time.Duration(rand.Int63n(int64(maxLatency-minLatency)))
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
