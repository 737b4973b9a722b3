package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"serviceos/internal/adapter/http/handlers/mocks"
	"serviceos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestExportHandler_ExportOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewExportHandler(uc)

	r := gin.New()
	r.GET("/v1/orders/export", h.ExportOrders)

	uc.EXPECT().List(gomock.Any(), "", entities.OrderStatus("")).Return([]entities.ServiceOrder{
		{ID: 1, ClientName: "Ana", Description: "bancada", OpenDate: "2024-03-10", Value: 150.5, Status: entities.OrderStatusOpen, PaymentMethod: entities.PaymentMethodPix},
		{ID: 2, ClientName: "Bruno", Description: "painel", OpenDate: "2024-03-12", CloseDate: "2024-03-20", Value: 300, Status: entities.OrderStatusCompleted},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") || !strings.Contains(cd, ".xlsx") {
		t.Fatalf("unexpected content disposition: %s", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a valid workbook: %v", err)
	}
	defer f.Close()

	sheet := "Ordens de Serviço"
	if header, _ := f.GetCellValue(sheet, "A1"); header != "ID" {
		t.Fatalf("unexpected header A1 = %q", header)
	}
	if client, _ := f.GetCellValue(sheet, "B2"); client != "Ana" {
		t.Fatalf("unexpected B2 = %q", client)
	}
	if open, _ := f.GetCellValue(sheet, "E2"); open != "10/03/2024" {
		t.Fatalf("unexpected E2 = %q", open)
	}
	if closeDate, _ := f.GetCellValue(sheet, "F2"); closeDate != "" {
		t.Fatalf("open order must have empty close date, got %q", closeDate)
	}
	if status, _ := f.GetCellValue(sheet, "H3"); status != "Concluída" {
		t.Fatalf("unexpected H3 = %q", status)
	}
}
