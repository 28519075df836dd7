// Package postgres provides the GORM unit of work that scopes the purchase
// order and reference repositories to a single database transaction.
//
// One unit of work serves one command. Order creation under contention uses a
// fresh unit per attempt, because a failed insert aborts the transaction it
// ran in:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Units of work are not safe for concurrent use; give each goroutine its own.
package postgres

import (
	"context"

	"purchasing/internal/adapters/out/postgres/purchaseorderrepo"
	"purchasing/internal/adapters/out/postgres/referencerepo"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction started yet.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit makes the transaction's writes permanent and logs the aggregates
// written inside it at debug level.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil && len(uow.trackedAggregates) > 0 {
		logger.FromContext(ctx).Debug("unit of work committed",
			zap.Stringers("aggregates", uow.trackedIDs()),
		)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction's writes and forgets tracked aggregates.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which is
// what a deferred Rollback after a successful Commit sees.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// PurchaseOrderRepository returns a repository bound to the open transaction,
// or to the plain connection before Begin.
func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return purchaseorderrepo.NewGormPurchaseOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SupplierRepository() ports.SupplierRepository {
	return referencerepo.NewGormSupplierRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return referencerepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return referencerepo.NewGormUserRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// trackedIDs lists the identifiers of aggregates written so far, in write order.
func (uow *GormUnitOfWork) trackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}
