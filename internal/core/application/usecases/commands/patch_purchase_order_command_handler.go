package commands

import (
	"context"

	"purchasing/internal/pkg/errs"

	"go.uber.org/zap"
)

// PatchPurchaseOrderCommandHandler applies status and metadata changes.
// A status change goes through the transition table; delivery date and notes
// are independent of status.
type PatchPurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *zap.Logger
}

func NewPatchPurchaseOrderCommandHandler(uowFactory UoWFactory, logger *zap.Logger) (*PatchPurchaseOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatchPurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.Named("patch_purchase_order"),
	}, nil
}

func (h *PatchPurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PatchPurchaseOrderCommand,
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
	from := po.Status()

	if status := cmd.Status(); status != nil {
		if err = po.ChangeStatus(*status); err != nil {
			return PurchaseOrderDetails{}, err
		}
	}
	if deliveryDate := cmd.DeliveryDate(); deliveryDate != nil {
		if err = po.Reschedule(*deliveryDate); err != nil {
			return PurchaseOrderDetails{}, err
		}
	}
	if notes := cmd.Notes(); notes != nil {
		po.SetNotes(*notes)
	}

	if !cmd.IsEmpty() {
		if err = repo.Update(ctx, po); err != nil {
			return PurchaseOrderDetails{}, err
		}
	}

	details, err := hydrate(ctx, uow, po)
	if err != nil {
		return PurchaseOrderDetails{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PurchaseOrderDetails{}, errs.NewInternalErrorWithCause("commit transaction", err)
	}

	if from != po.Status() {
		h.logger.Info("purchase order status changed",
			zap.String("id", po.ID().String()),
			zap.String("from", from.String()),
			zap.String("to", po.Status().String()),
		)
	}

	return details, nil
}
