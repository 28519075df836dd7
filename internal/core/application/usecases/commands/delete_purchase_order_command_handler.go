package commands

import (
	"context"

	"purchasing/internal/pkg/errs"

	"go.uber.org/zap"
)

// DeletePurchaseOrderCommandHandler deletes orders that the configured
// DeletionPolicy allows to be deleted.
type DeletePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     DeletionPolicy
	logger     *zap.Logger
}

func NewDeletePurchaseOrderCommandHandler(
	uowFactory UoWFactory,
	policy DeletionPolicy,
	logger *zap.Logger,
) (*DeletePurchaseOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if policy == nil {
		policy = AnyStatusDeletion{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeletePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		logger:     logger.Named("delete_purchase_order"),
	}, nil
}

func (h *DeletePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd DeletePurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewInternalErrorWithCause("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseOrderRepository()
	po, err := repo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanDelete(po); err != nil {
		return err
	}

	if err = repo.Delete(ctx, po.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewInternalErrorWithCause("commit transaction", err)
	}

	h.logger.Info("purchase order deleted",
		zap.String("id", po.ID().String()),
		zap.String("po_number", po.Number().String()),
	)
	return nil
}
