package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"serviceos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler renders a printable thermal-printer receipt (78mm
// ticket) for a single order. Output is self-contained HTML; the
// client opens it and triggers the print dialog.

type ReceiptHandler struct {
	usecase     usecase.IOrderUseCase
	companyName string
}

func NewReceiptHandler(uc usecase.IOrderUseCase, companyName string) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc, companyName: companyName}
}

//	@Summary	Render a printable receipt for an order
//	@Tags		orders
//	@Produce	html
//	@Param		id	path	int	true	"Order id"
//	@Success	200
//	@Failure	404	{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders/{id}/receipt [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[receipt][handler] get failed id=%d err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data := receiptData{
		CompanyName:   h.companyName,
		ID:            order.ID,
		PrintedAt:     time.Now().Format("02/01/2006 15:04:05"),
		ClientName:    order.ClientName,
		ClientPhone:   orDash(order.ClientPhone),
		OpenDate:      formatDateBR(order.OpenDate),
		Status:        string(order.Status),
		Description:   order.Description,
		Observations:  order.Observations,
		PaymentMethod: orDash(order.PaymentMethod),
		Total:         formatBRL(order.Value),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := receiptTemplate.Execute(c.Writer, data); err != nil {
		log.Printf("[receipt][handler] render failed id=%d err=%v", id, err)
	}
}

type receiptData struct {
	CompanyName   string
	ID            int64
	PrintedAt     string
	ClientName    string
	ClientPhone   string
	OpenDate      string
	Status        string
	Description   string
	Observations  string
	PaymentMethod string
	Total         string
}

// formatBRL renders a value the way pt-BR currency formatting does:
// thousands separated by dots, decimals by a comma.
func formatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// formatDateBR turns a stored ISO date into dd/mm/yyyy; unparseable
// input passes through untouched so old records still print.
func formatDateBR(v string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return v
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>OS #{{.ID}}</title>
    <style>
      @page { margin: 0; size: auto; }
      body {
        margin: 0;
        padding: 0;
        font-family: 'Courier New', Courier, monospace;
        font-size: 11px;
        color: #000;
        white-space: pre-wrap;
      }
      .ticket {
        width: 78mm;
        max-width: 78mm;
        padding: 2px 5px;
        margin: 0 auto;
      }
      .center { text-align: center; }
      .bold { font-weight: bold; }
      .divider {
        border-top: 1px dashed #000;
        margin: 4px 0;
        width: 100%;
      }
      .row {
        display: flex;
        justify-content: space-between;
        margin-bottom: 2px;
      }
      .label { font-weight: bold; margin-right: 5px; }
      .section-title {
        margin-top: 8px;
        font-weight: bold;
        text-decoration: underline;
        font-size: 12px;
      }
      .obs { font-size: 10px; font-style: italic; white-space: pre-wrap; }
      .signature-area {
        margin-top: 25px;
        text-align: center;
        border-top: 1px solid #000;
        padding-top: 5px;
      }
      h1 { font-size: 14px; margin: 2px 0; font-weight: bold; }

      @media print {
        .no-print { display: none; }
        body { margin: 0; }
      }
    </style>
  </head>
  <body>
    <div class="ticket">
      <div class="center">
        <h1>{{.CompanyName}}</h1>
        <div style="font-size: 10px;">ORDEM DE SERVIÇO</div>
        <div class="divider"></div>
        <div style="font-size: 14px; font-weight: bold;">OS Nº {{.ID}}</div>
        <div style="font-size: 10px;">{{.PrintedAt}}</div>
      </div>

      <div class="divider"></div>

      <div><span class="label">CLIENTE:</span>{{.ClientName}}</div>
      <div><span class="label">FONE:</span>{{.ClientPhone}}</div>

      <div class="row">
        <div><span class="label">ABERTURA:</span>{{.OpenDate}}</div>
      </div>

      <div class="row">
        <div><span class="label">STATUS:</span>{{.Status}}</div>
      </div>

      <div class="divider"></div>

      <div class="section-title">DESCRIÇÃO</div>
      <div style="margin-top: 2px; line-height: 1.1;">{{.Description}}</div>

      {{if .Observations}}
      <div class="section-title">OBSERVAÇÕES</div>
      <div class="obs">{{.Observations}}</div>
      {{end}}

      <div class="divider"></div>

      <div class="row">
        <span class="label">PAGAMENTO:</span>
        <span>{{.PaymentMethod}}</span>
      </div>

      <div class="row" style="font-size: 14px; margin-top: 5px;">
        <span class="bold">TOTAL:</span>
        <span class="bold">{{.Total}}</span>
      </div>

      <div class="signature-area">
        Assinatura do Cliente
      </div>

      <div class="center" style="margin-top: 10px; font-size: 9px;">
        Obrigado pela preferência!
      </div>
    </div>
    <script>window.onload = function () { window.print(); };</script>
  </body>
</html>
`))
