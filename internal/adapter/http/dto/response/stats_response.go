package response

import (
	"serviceos/internal/domain/entities"
)

type StatusCountResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type StatsResponse struct {
	TotalOpen          int                   `json:"totalOpen"`
	CompletedThisMonth int                   `json:"completedThisMonth"`
	RevenueThisMonth   float64               `json:"revenueThisMonth"`
	ByStatus           []StatusCountResponse `json:"byStatus"`
}

func FromStats(s entities.DashboardStats) StatsResponse {
	byStatus := make([]StatusCountResponse, 0, len(s.ByStatus))
	for _, sc := range s.ByStatus {
		byStatus = append(byStatus, StatusCountResponse{Name: sc.Name, Value: sc.Value})
	}
	return StatsResponse{
		TotalOpen:          s.TotalOpen,
		CompletedThisMonth: s.CompletedThisMonth,
		RevenueThisMonth:   s.RevenueThisMonth,
		ByStatus:           byStatus,
	}
}
