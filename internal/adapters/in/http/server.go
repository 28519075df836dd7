package http

import (
	"context"
	"net/http"
	"strings"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handler contracts consumed by Server. The command and query handlers of
// the application layer satisfy them.
type (
	CreatePurchaseOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePurchaseOrderCommand) (commands.PurchaseOrderDetails, error)
	}
	UpdatePurchaseOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdatePurchaseOrderCommand) (commands.PurchaseOrderDetails, error)
	}
	PatchPurchaseOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PatchPurchaseOrderCommand) (commands.PurchaseOrderDetails, error)
	}
	DeletePurchaseOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeletePurchaseOrderCommand) error
	}
	GetPurchaseOrderHandler interface {
		Handle(ctx context.Context, query queries.GetPurchaseOrderQuery) (queries.GetPurchaseOrderQueryResponse, error)
	}
	ListPurchaseOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListPurchaseOrdersQuery) ([]queries.PurchaseOrderSummary, error)
	}
)

// Server exposes the purchase order use cases over HTTP. Handlers return
// errors and leave the status mapping to ErrorHandler.
type Server struct {
	// Command handlers
	createHandler CreatePurchaseOrderHandler
	updateHandler UpdatePurchaseOrderHandler
	patchHandler  PatchPurchaseOrderHandler
	deleteHandler DeletePurchaseOrderHandler

	// Query handlers
	getHandler  GetPurchaseOrderHandler
	listHandler ListPurchaseOrdersHandler
}

func NewServer(
	createHandler CreatePurchaseOrderHandler,
	updateHandler UpdatePurchaseOrderHandler,
	patchHandler PatchPurchaseOrderHandler,
	deleteHandler DeletePurchaseOrderHandler,
	getHandler GetPurchaseOrderHandler,
	listHandler ListPurchaseOrdersHandler,
) *Server {
	return &Server{
		createHandler: createHandler,
		updateHandler: updateHandler,
		patchHandler:  patchHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// Register mounts the purchase order routes on e.
func (s *Server) Register(e *echo.Echo) {
	g := e.Group("/api/purchase-orders")
	g.POST("", s.CreatePurchaseOrder)
	g.GET("", s.ListPurchaseOrders)
	g.GET("/:id", s.GetPurchaseOrder)
	g.PUT("/:id", s.UpdatePurchaseOrder)
	g.PATCH("/:id", s.PatchPurchaseOrder)
	g.DELETE("/:id", s.DeletePurchaseOrder)
}

// CreatePurchaseOrder handles POST /api/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var req PurchaseOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	in, err := req.toInput()
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreatePurchaseOrderCommand(in)
	if err != nil {
		return err
	}

	details, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, detailsResponse(details))
}

// UpdatePurchaseOrder handles PUT /api/purchase-orders/:id.
func (s *Server) UpdatePurchaseOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req PurchaseOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	in, err := req.toInput()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdatePurchaseOrderCommand(id, in)
	if err != nil {
		return err
	}

	details, err := s.updateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, detailsResponse(details))
}

// PatchPurchaseOrder handles PATCH /api/purchase-orders/:id.
func (s *Server) PatchPurchaseOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var req PatchPurchaseOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewPatchPurchaseOrderCommand(id, req.Status, req.deliveryDate(), req.Notes)
	if err != nil {
		return err
	}

	details, err := s.patchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, detailsResponse(details))
}

// DeletePurchaseOrder handles DELETE /api/purchase-orders/:id.
func (s *Server) DeletePurchaseOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePurchaseOrderCommand(id)
	if err != nil {
		return err
	}

	if err := s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DeleteResponse{Success: true})
}

// GetPurchaseOrder handles GET /api/purchase-orders/:id.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPurchaseOrderQuery(id)
	if err != nil {
		return err
	}

	po, err := s.getHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, queryResponse(po))
}

// ListPurchaseOrders handles GET /api/purchase-orders.
func (s *Server) ListPurchaseOrders(ctx echo.Context) error {
	raw := ctx.QueryParam("supplierId")
	supplierID, err := parseOptionalID("supplierId", &raw)
	if err != nil {
		return err
	}

	query, err := queries.NewListPurchaseOrdersQuery(ctx.QueryParam("status"), supplierID, ctx.QueryParam("search"))
	if err != nil {
		return err
	}

	rows, err := s.listHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, summariesResponse(rows))
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	raw := strings.TrimSpace(ctx.Param("id"))
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("id")
	}
	return parseID("id", raw)
}
