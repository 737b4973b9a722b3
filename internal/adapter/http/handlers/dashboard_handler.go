package handlers

import (
	"log"
	"net/http"

	response "serviceos/internal/adapter/http/dto/response"
	"serviceos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated stats the dashboard renders.

type DashboardHandler struct {
	usecase usecase.IOrderUseCase
}

func NewDashboardHandler(uc usecase.IOrderUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

//	@Summary	Return aggregated dashboard stats
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	response.StatsResponse
//	@Security	Bearer
//	@Router		/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.GetStats(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard][handler] stats failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStats(stats))
}
