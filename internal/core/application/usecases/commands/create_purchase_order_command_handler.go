package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// ErrPONumberCollision is wrapped in the ConflictError returned when every
// attempt to store a new order lost the race for its number.
var ErrPONumberCollision = errors.New("purchase order number collision")

// NumberingSettings controls order number allocation.
type NumberingSettings struct {
	// Location is the business time zone that decides "today".
	Location *time.Location
	// MaxAttempts bounds how often a create is tried when its number is taken.
	MaxAttempts int
	// RetryInterval is the initial wait between attempts; it grows exponentially.
	RetryInterval time.Duration
}

func (s NumberingSettings) validate() error {
	if s.Location == nil {
		return errs.NewValueIsRequiredError("numbering location")
	}
	if s.MaxAttempts < 1 {
		return errs.NewValueIsOutOfRangeError("maxAttempts", s.MaxAttempts, 1, "unbounded")
	}
	if s.RetryInterval < 0 {
		return errs.NewValueIsInvalidErrorWithCause("retryInterval", fmt.Errorf("%s is negative", s.RetryInterval))
	}
	return nil
}

// CreatePurchaseOrderCommandHandler creates purchase orders.
//
// One attempt runs in one unit of work:
//  1. resolve the user
//  2. verify supplier and products, snapshot product names
//  3. compute totals
//  4. allocate today's next number
//  5. insert header and items, commit
//
// Two concurrent creates can read the same last number. The unique index on
// the number rejects the second insert and the whole attempt is repeated
// with a new unit of work, so the retry reads the winner's number.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator purchaseorder.TotalsCalculator
	users      UserResolver
	numbering  NumberingSettings
	now        func() time.Time
	logger     *zap.Logger
}

func NewCreatePurchaseOrderCommandHandler(
	uowFactory UoWFactory,
	calculator purchaseorder.TotalsCalculator,
	users UserResolver,
	numbering NumberingSettings,
	logger *zap.Logger,
) (*CreatePurchaseOrderCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if calculator == nil {
		return nil, errs.NewValueIsRequiredError("calculator")
	}
	if users == nil {
		return nil, errs.NewValueIsRequiredError("users")
	}
	if err := numbering.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		users:      users,
		numbering:  numbering,
		now:        time.Now,
		logger:     logger.Named("create_purchase_order"),
	}, nil
}

// WithClock replaces the time source.
func (h *CreatePurchaseOrderCommandHandler) WithClock(now func() time.Time) *CreatePurchaseOrderCommandHandler {
	h.now = now
	return h
}

// Handle creates the order and returns it with its supplier, user and products.
func (h *CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
) (PurchaseOrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return PurchaseOrderDetails{}, err
	}

	attempt := 0
	operation := func() (PurchaseOrderDetails, error) {
		attempt++
		details, err := h.createOnce(ctx, cmd)
		if err != nil && !errors.Is(err, ports.ErrDuplicatePONumber) {
			return PurchaseOrderDetails{}, backoff.Permanent(err)
		}
		return details, err
	}
	notify := func(err error, wait time.Duration) {
		h.logger.Warn("purchase order number taken, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	details, err := backoff.RetryNotifyWithData(operation, h.newBackOff(ctx), notify)
	if err != nil {
		if errors.Is(err, ports.ErrDuplicatePONumber) {
			h.logger.Error("purchase order number allocation exhausted", zap.Int("attempts", attempt), zap.Error(err))
			return PurchaseOrderDetails{}, errs.NewConflictErrorWithCause(
				fmt.Sprintf("could not allocate a unique purchase order number after %d attempts", attempt),
				ErrPONumberCollision,
			)
		}
		return PurchaseOrderDetails{}, err
	}

	h.logger.Info("purchase order created",
		zap.String("id", details.Order.ID().String()),
		zap.String("po_number", details.Order.Number().String()),
		zap.Int("attempts", attempt),
	)
	return details, nil
}

func (h *CreatePurchaseOrderCommandHandler) createOnce(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
) (PurchaseOrderDetails, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PurchaseOrderDetails{}, errs.NewInternalErrorWithCause("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := h.users.Resolve(ctx, uow.UserRepository(), cmd.UserID())
	if err != nil {
		return PurchaseOrderDetails{}, err
	}

	a, err := assemble(ctx, uow, cmd.input, user, cmd.DiscountAmount())
	if err != nil {
		return PurchaseOrderDetails{}, err
	}

	now := h.now()
	today := now.In(h.numbering.Location)

	repo := uow.PurchaseOrderRepository()
	last, err := repo.LastNumberWithPrefix(ctx, purchaseorder.PrefixFor(today))
	if err != nil {
		return PurchaseOrderDetails{}, err
	}
	number, err := purchaseorder.NextNumber(today, last)
	if err != nil {
		return PurchaseOrderDetails{}, err
	}

	po, err := purchaseorder.NewPurchaseOrder(number, a.header, a.items, h.calculator, now)
	if err != nil {
		return PurchaseOrderDetails{}, err
	}

	if err = repo.Add(ctx, po); err != nil {
		return PurchaseOrderDetails{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PurchaseOrderDetails{}, errs.NewInternalErrorWithCause("commit transaction", err)
	}

	return PurchaseOrderDetails{
		Order:    po,
		Supplier: a.supplier,
		User:     a.user,
		Products: a.products,
	}, nil
}

func (h *CreatePurchaseOrderCommandHandler) newBackOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = h.numbering.RetryInterval
	eb.MaxElapsedTime = 0
	eb.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(h.numbering.MaxAttempts-1)), ctx)
}
