package cmd

import (
	"github.com/thtta/farmlend/internal/adapters/out/postgres"
	"github.com/thtta/farmlend/internal/core/application/usecases/commands"
	"github.com/thtta/farmlend/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the application's use cases to their infrastructure.
// Command handlers get unit-of-work factories; query handlers read the
// database directly.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) organizationUoWFactory() commands.OrganizationUoWFactory {
	return FuncOrganizationUoWFactory(func() commands.OrganizationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrganizationCommandHandler() commands.CreateOrganizationCommandHandler {
	return commands.NewCreateOrganizationCommandHandler(c.organizationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrganizationCommandHandler() commands.UpdateOrganizationCommandHandler {
	return commands.NewUpdateOrganizationCommandHandler(c.organizationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrganizationCommandHandler() commands.DeleteOrganizationCommandHandler {
	return commands.NewDeleteOrganizationCommandHandler(c.organizationUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreatePurgeRemovedRecordsCommandHandler() commands.PurgeRemovedRecordsCommandHandler {
	return commands.NewPurgeRemovedRecordsCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrganizationsQueryHandler() queries.GetAllOrganizationsQueryHandler {
	return queries.NewGetAllOrganizationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrganizationQueryHandler() queries.GetOrganizationQueryHandler {
	return queries.NewGetOrganizationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncOrganizationUoWFactory func() commands.OrganizationUoW

func (f FuncOrganizationUoWFactory) Create() commands.OrganizationUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
