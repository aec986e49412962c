// Package http is the request/response adapter over the application layer.
// Handlers translate JSON bodies into commands and queries, run them, and
// map domain errors onto HTTP status codes. Identity comes from the JWT
// middleware; handlers trust the resolved principal.
package http

import (
	"errors"
	"net/http"
	"time"

	"chefbook/internal/adapters/in/auth"
	"chefbook/internal/core/application/usecases/commands"
	"chefbook/internal/core/application/usecases/queries"
	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	rejectOrderHandler    commands.RejectOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	declareExpiredHandler commands.DeclareOrderExpiredCommandHandler
	submitPaymentHandler  commands.SubmitPaymentCommandHandler
	verifyPaymentHandler  commands.VerifyPaymentCommandHandler
	markPaidHandler       commands.MarkOrderPaidCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	getPendingForChefHandler queries.GetPendingOrdersForChefQueryHandler
	getForCustomerHandler    queries.GetOrdersForCustomerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	declareExpiredHandler commands.DeclareOrderExpiredCommandHandler,
	submitPaymentHandler commands.SubmitPaymentCommandHandler,
	verifyPaymentHandler commands.VerifyPaymentCommandHandler,
	markPaidHandler commands.MarkOrderPaidCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPendingForChefHandler queries.GetPendingOrdersForChefQueryHandler,
	getForCustomerHandler queries.GetOrdersForCustomerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		acceptOrderHandler:       acceptOrderHandler,
		rejectOrderHandler:       rejectOrderHandler,
		completeOrderHandler:     completeOrderHandler,
		declareExpiredHandler:    declareExpiredHandler,
		submitPaymentHandler:     submitPaymentHandler,
		verifyPaymentHandler:     verifyPaymentHandler,
		markPaidHandler:          markPaidHandler,
		getOrderHandler:          getOrderHandler,
		getPendingForChefHandler: getPendingForChefHandler,
		getForCustomerHandler:    getForCustomerHandler,
	}
}

// RegisterRoutes mounts the order API under /api/v1 behind the JWT middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, parser *auth.TokenParser) {
	api := e.Group("/api/v1", JWTMiddleware(parser))

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/expire", s.DeclareOrderExpired)
	api.POST("/orders/:id/payment", s.SubmitPayment)
	api.POST("/orders/:id/payment/verification", s.VerifyPayment)
	api.POST("/orders/:id/paid", s.MarkOrderPaid)
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code             int    `json:"code"`
	Message          string `json:"message"`
	RemainingSeconds int64  `json:"remaining_seconds,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ChefID       string            `json:"chef_id"`
	Items        []LineItemRequest `json:"items"`
	People       int               `json:"people"`
	Vegetarian   bool              `json:"vegetarian"`
	Allergies    []string          `json:"allergies"`
	Address      string            `json:"address"`
	Instructions string            `json:"instructions"`
	SelectedDate time.Time         `json:"selected_date"`
	Slot         TimeSlotRequest   `json:"slot"`
}

// LineItemRequest is one dish selection in a create request.
type LineItemRequest struct {
	DishID    string          `json:"dish_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// TimeSlotRequest names the requested cooking window.
type TimeSlotRequest struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateOrderResponse returns the id of the newly placed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// SubmitPaymentRequest is the body of POST /api/v1/orders/:id/payment.
type SubmitPaymentRequest struct {
	Method string `json:"method"`
}

// VerifyPaymentRequest is the body of POST /api/v1/orders/:id/payment/verification.
type VerifyPaymentRequest struct {
	Verified bool   `json:"verified"`
	Note     string `json:"note"`
}

// CreateOrder handles POST /api/v1/orders. The customer identity comes from
// the token; the order id is generated server side.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	chefID, err := kernel.UUIDFromString(req.ChefID)
	if err != nil {
		return badRequest(ctx, "Invalid chef id")
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, ir := range req.Items {
		dishID, dishErr := kernel.UUIDFromString(ir.DishID)
		if dishErr != nil {
			return badRequest(ctx, "Invalid dish id")
		}

		item, itemErr := order.NewLineItem(dishID, ir.Quantity, ir.UnitPrice)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, item)
	}

	slot, err := order.NewTimeSlot(req.Slot.Day, req.Slot.Start, req.Slot.End)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, principal.UserID, chefID,
		items, req.People, req.Vegetarian, req.Allergies,
		req.Address, req.Instructions, req.SelectedDate, slot,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ListOrders handles GET /api/v1/orders. Chefs see their pending queue,
// customers see their order history.
func (s *Server) ListOrders(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	if principal.IsChef() {
		query, err := queries.NewGetPendingOrdersForChefQuery(principal.UserID)
		if err != nil {
			return respondError(ctx, err)
		}

		resp, err := s.getPendingForChefHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, resp)
	}

	query, err := queries.NewGetOrdersForCustomerQuery(principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getForCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.chefDecision(ctx, func(orderID, chefID kernel.UUID) error {
		cmd, err := commands.NewAcceptOrderCommand(orderID, chefID)
		if err != nil {
			return err
		}
		return s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	return s.chefDecision(ctx, func(orderID, chefID kernel.UUID) error {
		cmd, err := commands.NewRejectOrderCommand(orderID, chefID)
		if err != nil {
			return err
		}
		return s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.chefDecision(ctx, func(orderID, chefID kernel.UUID) error {
		cmd, err := commands.NewCompleteOrderCommand(orderID, chefID)
		if err != nil {
			return err
		}
		return s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeclareOrderExpired handles POST /api/v1/orders/:id/expire.
func (s *Server) DeclareOrderExpired(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeclareOrderExpiredCommand(orderID, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.declareExpiredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SubmitPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) SubmitPayment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req SubmitPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := order.PaymentMethodFromString(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitPaymentCommand(orderID, principal.UserID, method)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.submitPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// VerifyPayment handles POST /api/v1/orders/:id/payment/verification.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req VerifyPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyPaymentCommand(orderID, principal.UserID, req.Verified, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkOrderPaid handles POST /api/v1/orders/:id/paid, the settlement path
// used before chef verification existed. Chef only.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}
	if !principal.IsChef() {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Only chefs can mark orders paid",
		})
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) chefDecision(ctx echo.Context, run func(orderID, chefID kernel.UUID) error) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondMissingPrincipal(ctx)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = run(orderID, principal.UserID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func respondMissingPrincipal(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Missing identity",
	})
}

// respondError maps domain errors onto HTTP statuses. A conflict carrying
// remaining window time exposes it so clients can show the countdown.
func respondError(ctx echo.Context, err error) error {
	var conflict *errs.ConflictError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrNotAuthorized):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.As(err, &conflict):
		resp := ErrorResponse{
			Code:    http.StatusConflict,
			Message: conflict.Message,
		}
		if conflict.Remaining > 0 {
			resp.RemainingSeconds = int64(conflict.Remaining.Seconds())
		}
		return ctx.JSON(http.StatusConflict, resp)
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
