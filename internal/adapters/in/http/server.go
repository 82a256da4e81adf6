package http

import (
	"context"
	"errors"
	"math"
	"net/http"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/generated/servers"
	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Pinger reports connectivity of an infrastructure dependency.
// The health endpoint probes the database and the cache through it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

// Ping calls the wrapped function.
func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler     commands.PlaceOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	payOrderHandler       commands.PayOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	prepareOrderHandler   commands.PrepareOrderCommandHandler
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler
	deliverOrderHandler   commands.DeliverOrderCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler

	// Snapshot cache, written through after every successful command
	cache ports.OrderCache

	// Health probes
	dbPinger    Pinger
	cachePinger Pinger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	prepareOrderHandler commands.PrepareOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	cache ports.OrderCache,
	dbPinger Pinger,
	cachePinger Pinger,
) *Server {
	return &Server{
		placeOrderHandler:     placeOrderHandler,
		updateOrderHandler:    updateOrderHandler,
		payOrderHandler:       payOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		prepareOrderHandler:   prepareOrderHandler,
		markOrderReadyHandler: markOrderReadyHandler,
		deliverOrderHandler:   deliverOrderHandler,
		getOrderHandler:       getOrderHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		cache:                 cache,
		dbPinger:              dbPinger,
		cachePinger:           cachePinger,
	}
}

// GetHealth handles GET /health - probes the database and the cache.
//
//	@Summary	Service health
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	servers.HealthStatus
//	@Failure	503	{object}	servers.HealthStatus
//	@Router		/health [get]
func (s *Server) GetHealth(ctx echo.Context) error {
	requestCtx := ctx.Request().Context()

	health := servers.HealthStatus{
		Status:   "ok",
		Database: "up",
		Cache:    "up",
	}

	code := http.StatusOK
	if err := s.dbPinger.Ping(requestCtx); err != nil {
		health.Database = "down"
		health.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	if err := s.cachePinger.Ping(requestCtx); err != nil {
		health.Cache = "down"
		health.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, health)
}

// ListOrders handles GET /orders - retrieves orders, optionally filtered
// by status and payment record.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Param		status	query	string	false	"Filter by lifecycle status"	Enums(pending, paid, preparing, ready, delivered, cancelled)
//	@Param		paid	query	bool	false	"Filter by payment record"
//	@Success	200	{array}		servers.Order
//	@Failure	400	{object}	servers.Error
//	@Router		/orders [get]
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var statusFilter *order.Status
	if params.Status != nil {
		status, err := order.StatusFromString(string(*params.Status))
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status filter: " + err.Error(),
			})
		}
		statusFilter = &status
	}

	query, err := queries.NewGetAllOrdersQuery(statusFilter, params.Paid)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid filter data: " + err.Error(),
		})
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, item := range orders {
		response[i] = servers.Order{
			Id:           item.ID.Bytes(),
			Drink:        item.Drink,
			Size:         item.Size.String(),
			Milk:         item.Milk.String(),
			Shots:        item.Shots,
			Status:       servers.OrderStatus(item.Status.String()),
			Cost:         centsToDollars(item.CostCents),
			Paid:         item.Paid,
			CardLastFour: optionalString(item.CardLastFour),
			CreatedAt:    item.CreatedAt,
			Links:        orderLinks(item.ID, item.Status),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /orders - places a new order in the pending status.
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body	servers.NewOrder	true	"Order to place"
//	@Success	201	{object}	servers.Order
//	@Failure	400	{object}	servers.Error
//	@Router		/orders [post]
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	size := order.DefaultSize
	if newOrder.Size != nil {
		parsed, err := order.SizeFromString(string(*newOrder.Size))
		if err != nil {
			return invalidOrderData(ctx, err)
		}
		size = parsed
	}

	milk := order.DefaultMilk
	if newOrder.Milk != nil {
		parsed, err := order.MilkFromString(string(*newOrder.Milk))
		if err != nil {
			return invalidOrderData(ctx, err)
		}
		milk = parsed
	}

	shots := order.DefaultShots
	if newOrder.Shots != nil {
		shots = *newOrder.Shots
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), newOrder.Drink, size, milk, shots)
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	s.refreshCache(ctx, placed)

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// GetOrder handles GET /orders/{orderId} - retrieves one order representation.
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	string	true	"Order ID"	Format(uuid)
//	@Success	200	{object}	servers.Order
//	@Failure	404	{object}	servers.Error
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	item, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:           item.ID.Bytes(),
		Drink:        item.Drink,
		Size:         item.Size.String(),
		Milk:         item.Milk.String(),
		Shots:        item.Shots,
		Status:       servers.OrderStatus(item.Status.String()),
		Cost:         centsToDollars(item.CostCents),
		Paid:         item.Paid,
		CardLastFour: optionalString(item.CardLastFour),
		CreatedAt:    item.CreatedAt,
		Links:        orderLinks(item.ID, item.Status),
	})
}

// UpdateOrder handles PUT /orders/{orderId} - changes the recipe of a
// pending order.
//
//	@Summary	Modify an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path	string				true	"Order ID"	Format(uuid)
//	@Param		order	body	servers.OrderUpdate	true	"Recipe changes"
//	@Success	200	{object}	servers.Order
//	@Failure	400	{object}	servers.Error
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/orders/{orderId} [put]
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	var update servers.OrderUpdate
	if err = ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var size *order.Size
	if update.Size != nil {
		parsed, parseErr := order.SizeFromString(string(*update.Size))
		if parseErr != nil {
			return invalidOrderData(ctx, parseErr)
		}
		size = &parsed
	}

	var milk *order.Milk
	if update.Milk != nil {
		parsed, parseErr := order.MilkFromString(string(*update.Milk))
		if parseErr != nil {
			return invalidOrderData(ctx, parseErr)
		}
		milk = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, update.Drink, size, milk, update.Shots)
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	s.refreshCache(ctx, updated)

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// CancelOrder handles DELETE /orders/{orderId} - cancels a pending or paid order.
//
//	@Summary	Cancel an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	string	true	"Order ID"	Format(uuid)
//	@Success	200	{object}	servers.Order
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/orders/{orderId} [delete]
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	s.refreshCache(ctx, cancelled)

	return ctx.JSON(http.StatusOK, toOrderResponse(cancelled))
}

// PayOrder handles PUT /orders/{orderId}/payment - records a card payment.
//
//	@Summary	Pay for an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path	string			true	"Order ID"	Format(uuid)
//	@Param		payment	body	servers.Payment	true	"Card payment"
//	@Success	201	{object}	servers.Order
//	@Failure	400	{object}	servers.Error
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/orders/{orderId}/payment [put]
func (s *Server) PayOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	var payment servers.Payment
	if err = ctx.Bind(&payment); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPayOrderCommand(orderID, payment.CardNumber, dollarsToCents(payment.Amount))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid payment data: " + err.Error(),
		})
	}

	paid, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	s.refreshCache(ctx, paid)

	return ctx.JSON(http.StatusCreated, toOrderResponse(paid))
}

// UpdateOrderStatus handles PUT /orders/{orderId}/status - moves a paid order
// through preparation, readiness and handover.
//
//	@Summary	Advance an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	string	true	"Order ID"	Format(uuid)
//	@Param		status	query	string	true	"Target status"	Enums(preparing, ready, delivered)
//	@Success	200	{object}	servers.Order
//	@Failure	400	{object}	servers.Error
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/orders/{orderId}/status [put]
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID, params servers.UpdateOrderStatusParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return invalidOrderData(ctx, err)
	}

	var updated *order.Order
	switch params.Status {
	case servers.UpdateOrderStatusParamsStatusPreparing:
		cmd, cmdErr := commands.NewPrepareOrderCommand(orderID)
		if cmdErr != nil {
			return invalidOrderData(ctx, cmdErr)
		}
		updated, err = s.prepareOrderHandler.Handle(ctx.Request().Context(), cmd)
	case servers.UpdateOrderStatusParamsStatusReady:
		cmd, cmdErr := commands.NewMarkOrderReadyCommand(orderID)
		if cmdErr != nil {
			return invalidOrderData(ctx, cmdErr)
		}
		updated, err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	case servers.UpdateOrderStatusParamsStatusDelivered:
		cmd, cmdErr := commands.NewDeliverOrderCommand(orderID)
		if cmdErr != nil {
			return invalidOrderData(ctx, cmdErr)
		}
		updated, err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	default:
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown target status: " + string(params.Status),
		})
	}

	if err != nil {
		return errorJSON(ctx, err)
	}

	s.refreshCache(ctx, updated)

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// refreshCache writes the latest snapshot of an order through to the cache.
// Failures are swallowed; the cache is never authoritative.
func (s *Server) refreshCache(ctx echo.Context, aggregate *order.Order) {
	_ = s.cache.Put(ctx.Request().Context(), aggregate)
}

// toOrderResponse maps an order aggregate to its HTTP representation.
func toOrderResponse(aggregate *order.Order) servers.Order {
	return servers.Order{
		Id:           aggregate.ID().Bytes(),
		Drink:        aggregate.Drink(),
		Size:         aggregate.Size().String(),
		Milk:         aggregate.Milk().String(),
		Shots:        aggregate.Shots(),
		Status:       servers.OrderStatus(aggregate.Status().String()),
		Cost:         centsToDollars(aggregate.CostCents()),
		Paid:         aggregate.Paid(),
		CardLastFour: optionalString(aggregate.CardLastFour()),
		CreatedAt:    aggregate.CreatedAt(),
		Links:        orderLinks(aggregate.ID(), aggregate.Status()),
	}
}

// errorJSON renders a failed operation as the shared error body with the
// status code matching the error family. Unrecognized errors are reported
// as internal without their details.
func errorJSON(ctx echo.Context, err error) error {
	code := statusCodeFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// invalidOrderData renders a request validation failure.
func invalidOrderData(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid order data: " + err.Error(),
	})
}

// statusCodeFor maps an error family to its HTTP status code.
// Validation failures are client errors, missing aggregates are not found,
// rejected lifecycle moves and stale writes are conflicts.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInsufficientAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// centsToDollars converts an amount kept in integer cents to the dollar
// value rendered over the wire.
func centsToDollars(cents int) float64 {
	return float64(cents) / 100
}

// dollarsToCents converts a dollar amount from the wire to integer cents.
// The value is rounded to absorb floating point noise from JSON decoding.
func dollarsToCents(dollars float64) int {
	return int(math.Round(dollars * 100))
}

// optionalString returns nil for an empty string so the field is omitted
// from the rendered JSON.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
