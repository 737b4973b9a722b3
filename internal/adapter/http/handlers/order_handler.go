package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "serviceos/internal/adapter/http/dto/request"
	response "serviceos/internal/adapter/http/dto/response"
	"serviceos/internal/domain/entities"
	"serviceos/internal/usecase"
	"serviceos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
	errInvalidOrderRoute   = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid service order id", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for service orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders returns all orders, optionally filtered by ?q= (client name
// substring, case-insensitive) and ?status= (exact match).
//
//	@Summary	List service orders
//	@Tags		orders
//	@Produce	json
//	@Param		q		query	string	false	"Client name search (case-insensitive)"
//	@Param		status	query	string	false	"Exact status filter"
//	@Success	200	{array}	response.OrderResponse
//	@Security	Bearer
//	@Router		/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	search := c.Query("q")
	status := entities.OrderStatus(c.Query("status"))

	orders, err := h.usecase.List(c.Request.Context(), search, status)
	if err != nil {
		log.Printf("[order][handler] list failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

//	@Summary	Get a service order by id
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	response.OrderResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[order][handler] get failed id=%d err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

//	@Summary	Create a service order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.OrderRequest	true	"Order data"
//	@Success	201	{object}	response.OrderResponse
//	@Failure	400	{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(0))
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success id=%d", created.ID)

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// UpdateOrder replaces the order wholesale. An unknown id is accepted
// and ignored, matching the persistence contract.
//
//	@Summary	Replace a service order
//	@Tags		orders
//	@Accept		json
//	@Param		id		path	int						true	"Order id"
//	@Param		payload	body	request.OrderRequest	true	"Order data"
//	@Success	204
//	@Failure	400	{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Update(c.Request.Context(), payload.ToEntity(id)); err != nil {
		log.Printf("[order][handler] update failed id=%d err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

//	@Summary	Delete a service order
//	@Tags		orders
//	@Param		id	path	int	true	"Order id"
//	@Success	204
//	@Security	Bearer
//	@Router		/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[order][handler] delete failed id=%d err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrderRoute.HTTPStatus, errInvalidOrderRoute.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid service order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDescription):
		return pkg.NewDomainErrorSimple("MISSING_DESCRIPTION", "Description is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegativeOrderValue):
		return pkg.NewDomainErrorSimple("NEGATIVE_ORDER_VALUE", "Order value must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCloseBeforeOpenDate):
		return pkg.NewDomainErrorSimple("CLOSE_BEFORE_OPEN", "Close date must not precede open date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
