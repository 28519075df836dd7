package commands

import (
	"context"

	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"

	"go.uber.org/zap"
)

// UpdatePurchaseOrderCommandHandler applies full revisions. The header
// update, the removal of the old items and the insert of the new ones share
// one transaction; any failure leaves the stored order unchanged.
//
// The order number, status and creation time are never touched, and the
// revision is allowed in every status.
type UpdatePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator purchaseorder.TotalsCalculator
	logger     *zap.Logger
}

func NewUpdatePurchaseOrderCommandHandler(
	uowFactory UoWFactory,
	calculator purchaseorder.TotalsCalculator,
	logger *zap.Logger,
) (*UpdatePurchaseOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if calculator == nil {
		return nil, errs.NewValueIsRequiredError("calculator")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &UpdatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		logger:     logger.Named("update_purchase_order"),
	}, nil
}

func (h *UpdatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePurchaseOrderCommand,
) (PurchaseOrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return PurchaseOrderDetails{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PurchaseOrderDetails{}, errs.NewInternalErrorWithCause("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseOrderRepository()
	po, err := repo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return PurchaseOrderDetails{}, err
	}

	userID := po.UserID()
	if requested := cmd.UserID(); requested != nil {
		userID = *requested
	}
	user, err := uow.UserRepository().Get(ctx, userID)
	if err != nil {
		return PurchaseOrderDetails{}, err
	}

	discount := po.DiscountAmount()
	if requested := cmd.DiscountAmount(); requested != nil {
		discount = *requested
	}

	a, err := assemble(ctx, uow, cmd.input, user, discount)
	if err != nil {
		return PurchaseOrderDetails{}, err
	}

	if err = po.Revise(a.header, a.items, h.calculator); err != nil {
		return PurchaseOrderDetails{}, err
	}

	if err = repo.Update(ctx, po); err != nil {
		return PurchaseOrderDetails{}, err
	}
	if err = repo.ReplaceItems(ctx, po); err != nil {
		return PurchaseOrderDetails{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PurchaseOrderDetails{}, errs.NewInternalErrorWithCause("commit transaction", err)
	}

	h.logger.Info("purchase order revised",
		zap.String("id", po.ID().String()),
		zap.String("po_number", po.Number().String()),
		zap.Int("items", len(a.items)),
	)

	return PurchaseOrderDetails{
		Order:    po,
		Supplier: a.supplier,
		User:     a.user,
		Products: a.products,
	}, nil
}
