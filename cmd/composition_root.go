package cmd

import (
	httpin "purchasing/internal/adapters/in/http"
	"purchasing/internal/adapters/out/postgres"
	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	calculator services.TotalsCalculator
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	calculator, err := services.NewTotalsCalculator(config.VATRate)
	if err != nil {
		return CompositionRoot{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: calculator,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) newUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() (*commands.CreatePurchaseOrderCommandHandler, error) {
	users, err := commands.NewUserResolver(c.config.UserFallback)
	if err != nil {
		return nil, err
	}
	return commands.NewCreatePurchaseOrderCommandHandler(
		c.newUoWFactory(),
		c.calculator,
		users,
		c.config.Numbering(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdatePurchaseOrderCommandHandler() (*commands.UpdatePurchaseOrderCommandHandler, error) {
	return commands.NewUpdatePurchaseOrderCommandHandler(c.newUoWFactory(), c.calculator, c.logger)
}

func (c *CompositionRoot) CreatePatchPurchaseOrderCommandHandler() (*commands.PatchPurchaseOrderCommandHandler, error) {
	return commands.NewPatchPurchaseOrderCommandHandler(c.newUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeletePurchaseOrderCommandHandler() (*commands.DeletePurchaseOrderCommandHandler, error) {
	return commands.NewDeletePurchaseOrderCommandHandler(
		c.newUoWFactory(),
		commands.NewDeletionPolicy(c.config.DeleteDraftOnly),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetPurchaseOrderQueryHandler() queries.GetPurchaseOrderQueryHandler {
	return queries.NewGetPurchaseOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPurchaseOrdersQueryHandler() queries.ListPurchaseOrdersQueryHandler {
	return queries.NewListPurchaseOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	create, err := c.CreateCreatePurchaseOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	update, err := c.CreateUpdatePurchaseOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	patch, err := c.CreatePatchPurchaseOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	remove, err := c.CreateDeletePurchaseOrderCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		create,
		update,
		patch,
		remove,
		c.CreateGetPurchaseOrderQueryHandler(),
		c.CreateListPurchaseOrdersQueryHandler(),
	), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
