package commands_test

import (
	"errors"
	"testing"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deleteHandler(t *testing.T, factory commands.UoWFactory, policy commands.DeletionPolicy) *commands.DeletePurchaseOrderCommandHandler {
	t.Helper()
	h, err := commands.NewDeletePurchaseOrderCommandHandler(factory, policy, nil)
	require.NoError(t, err)
	return h
}

func TestDeletePurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	po := existingOrder(kernel.NewUUID(), kernel.NewUUID(), purchaseorder.Sent)
	r := newRepos()

	uow := newUoW(r)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		r.orders.On("Delete", ctx, po.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDeletePurchaseOrderCommand(po.ID())
	require.NoError(t, err)

	err = deleteHandler(t, factory, commands.AnyStatusDeletion{}).Handle(ctx, cmd)

	require.NoError(t, err)
	r.orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeletePurchaseOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	r := newRepos()
	r.orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("purchase order", id.String())).Once()

	uow := newUoW(r)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDeletePurchaseOrderCommand(id)
	require.NoError(t, err)

	err = deleteHandler(t, factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeletePurchaseOrderCommandHandler_Handle_DraftOnlyPolicy(t *testing.T) {
	ctx := t.Context()
	po := existingOrder(kernel.NewUUID(), kernel.NewUUID(), purchaseorder.Approved)
	r := newRepos()
	r.orders.On("Get", ctx, po.ID()).Return(po, nil).Once()

	uow := newUoW(r)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDeletePurchaseOrderCommand(po.ID())
	require.NoError(t, err)

	err = deleteHandler(t, factory, commands.DraftOnlyDeletion{}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "only DRAFT orders can be deleted")
	r.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeletePurchaseOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	po := existingOrder(kernel.NewUUID(), kernel.NewUUID(), purchaseorder.Draft)
	r := newRepos()
	r.orders.On("Get", ctx, po.ID()).Return(po, nil).Once()
	r.orders.On("Delete", ctx, po.ID()).Return(nil).Once()

	uow := newUoW(r)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDeletePurchaseOrderCommand(po.ID())
	require.NoError(t, err)

	err = deleteHandler(t, factory, commands.DraftOnlyDeletion{}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInternal)
}

func TestNewDeletionPolicy(t *testing.T) {
	assert.IsType(t, commands.DraftOnlyDeletion{}, commands.NewDeletionPolicy(true))
	assert.IsType(t, commands.AnyStatusDeletion{}, commands.NewDeletionPolicy(false))
}

func TestNewDeletePurchaseOrderCommand(t *testing.T) {
	_, err := commands.NewDeletePurchaseOrderCommand(kernel.UUID{})
	require.Error(t, err)

	require.ErrorIs(t, commands.DeletePurchaseOrderCommand{}.Validate(), commands.ErrDeletePurchaseOrderCommandIsNotConstructed)
}
