// Package stats derives the dashboard metrics from the full order set.
//
// Both persistence adapters delegate here so the aggregation cannot
// drift between backends.
package stats

import (
	"time"

	"serviceos/internal/domain/entities"
)

// Accepted CloseDate layouts. The wire carries ISO strings; older local
// data may hold date-only values.
var closeDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// Compute aggregates the dashboard metrics for the given orders at the
// given instant. It never fails: unparseable close dates simply don't
// count toward the current month and missing values contribute zero.
func Compute(orders []entities.ServiceOrder, now time.Time) entities.DashboardStats {
	month, year := now.Month(), now.Year()

	totalOpen := 0
	completed := 0
	revenue := 0.0
	counts := make(map[entities.OrderStatus]int, 6)

	for _, o := range orders {
		counts[o.Status]++
		if o.Status == entities.OrderStatusOpen {
			totalOpen++
		}
		if o.Status != entities.OrderStatusCompleted || o.CloseDate == "" {
			continue
		}
		closed, ok := parseDate(o.CloseDate)
		if !ok {
			continue
		}
		if closed.Month() == month && closed.Year() == year {
			completed++
			revenue += o.Value
		}
	}

	byStatus := make([]entities.StatusCount, 0, 6)
	for _, s := range entities.AllOrderStatuses() {
		byStatus = append(byStatus, entities.StatusCount{Name: string(s), Value: counts[s]})
	}

	return entities.DashboardStats{
		TotalOpen:          totalOpen,
		CompletedThisMonth: completed,
		RevenueThisMonth:   revenue,
		ByStatus:           byStatus,
	}
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range closeDateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
