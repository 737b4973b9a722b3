package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"serviceos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the full order book as an xlsx spreadsheet.

type ExportHandler struct {
	usecase usecase.IOrderUseCase
}

func NewExportHandler(uc usecase.IOrderUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

//	@Summary	Export all orders as an xlsx spreadsheet
//	@Tags		orders
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200
//	@Security	Bearer
//	@Router		/orders/export [get]
func (h *ExportHandler) ExportOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), "", "")
	if err != nil {
		log.Printf("[export][handler] list failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ordens de Serviço"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		log.Printf("[export][handler] sheet failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Cliente", "Telefone", "Descrição", "Abertura", "Conclusão", "Valor", "Status", "Pagamento", "Observações"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 2
	for _, o := range orders {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), o.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), o.ClientName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), o.ClientPhone)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), o.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), formatDateBR(o.OpenDate))
		if o.CloseDate != "" {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), formatDateBR(o.CloseDate))
		}
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), o.Value)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), string(o.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowIndex), o.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", rowIndex), o.Observations)
		rowIndex++
	}

	filename := fmt.Sprintf("ordens_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[export][handler] write failed err=%v", err)
	}
}
