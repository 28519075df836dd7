package commands

import (
	"errors"
	"strings"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
)

var ErrPatchPurchaseOrderCommandIsNotConstructed = errors.New(
	"PatchPurchaseOrderCommand must be created via NewPatchPurchaseOrderCommand constructor",
)

// PatchPurchaseOrderCommand changes status and metadata of an order without
// touching its items or totals. Every field is optional; a nil field is left
// as stored. Notes may be set to "" to clear them.
type PatchPurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	status          *purchaseorder.Status
	deliveryDate    *time.Time
	notes           *string

	guard guard.ConstructorGuard
}

// NewPatchPurchaseOrderCommand parses status; an unknown status name is a
// validation error.
func NewPatchPurchaseOrderCommand(
	purchaseOrderID kernel.UUID,
	status *string,
	deliveryDate *time.Time,
	notes *string,
) (PatchPurchaseOrderCommand, error) {
	cmd := PatchPurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPurchaseOrderID(purchaseOrderID),
		cmd.setStatus(status),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return PatchPurchaseOrderCommand{}, err
	}

	if notes != nil {
		n := *notes
		cmd.notes = &n
	}

	return cmd, nil
}

func (c PatchPurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrPatchPurchaseOrderCommandIsNotConstructed)
}

func (c PatchPurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c PatchPurchaseOrderCommand) Status() *purchaseorder.Status {
	return c.status
}

func (c PatchPurchaseOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

func (c PatchPurchaseOrderCommand) Notes() *string {
	return c.notes
}

// IsEmpty reports whether the command changes nothing.
func (c PatchPurchaseOrderCommand) IsEmpty() bool {
	return c.status == nil && c.deliveryDate == nil && c.notes == nil
}

func (c *PatchPurchaseOrderCommand) setPurchaseOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.purchaseOrderID = id
	return nil
}

func (c *PatchPurchaseOrderCommand) setStatus(status *string) error {
	if status == nil || strings.TrimSpace(*status) == "" {
		return nil
	}
	parsed, err := purchaseorder.ParseStatus(*status)
	if err != nil {
		return err
	}
	c.status = &parsed
	return nil
}

func (c *PatchPurchaseOrderCommand) setDeliveryDate(deliveryDate *time.Time) error {
	if deliveryDate == nil {
		return nil
	}
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	d := *deliveryDate
	c.deliveryDate = &d
	return nil
}
