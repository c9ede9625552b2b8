package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "github.com/thtta/farmlend/internal/adapters/out/postgres"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/orderrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/productrepo"
	"github.com/thtta/farmlend/internal/core/domain/model/order"
	"github.com/thtta/farmlend/internal/core/domain/model/organization"
	"github.com/thtta/farmlend/internal/core/domain/model/product"
	"github.com/thtta/farmlend/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&organizationrepo.OrganizationDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ReferencedOrderDTO{},
		&orderrepo.LineItemDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE organizations, products, orders, referenced_orders, order_products RESTART IDENTITY CASCADE",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrganizationRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe and do not nest.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Error(uow.Commit(ctx))
	suite.Error(uow.Rollback(ctx))
}

// TestUnitOfWork_CommitPersistsAcrossRepositories builds the full
// organization -> product -> order chain in one transaction and verifies
// everything landed after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	org, err := organization.NewOrganization("Fresh Fruits BV", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrganizationRepository().Add(ctx, org))

	p, err := product.NewProduct("Apples", "Golden", "18KG Boxes", org.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	item, err := order.NewLineItem("100KG", "1.5USD/1KG", p)
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(order.Buy, org.ID(), nil, []*order.LineItem{item})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	suite.Require().NoError(uow.Commit(ctx))

	var orgCount, productCount, orderCount, itemCount int64
	suite.db.Model(&organizationrepo.OrganizationDTO{}).Count(&orgCount)
	suite.db.Model(&productrepo.ProductDTO{}).Count(&productCount)
	suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount)
	suite.db.Model(&orderrepo.LineItemDTO{}).Count(&itemCount)

	suite.Equal(int64(1), orgCount)
	suite.Equal(int64(1), productCount)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), itemCount)
}

// TestUnitOfWork_RollbackDiscardsEverything verifies no partial rows survive
// a rolled-back multi-repository transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	org, err := organization.NewOrganization("Fresh Fruits BV", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrganizationRepository().Add(ctx, org))

	p, err := product.NewProduct("Apples", "Golden", "18KG Boxes", org.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	suite.Require().NoError(uow.Rollback(ctx))

	var orgCount, productCount int64
	suite.db.Model(&organizationrepo.OrganizationDTO{}).Count(&orgCount)
	suite.db.Model(&productrepo.ProductDTO{}).Count(&productCount)

	suite.Equal(int64(0), orgCount)
	suite.Equal(int64(0), productCount)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
