package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/orderrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/productrepo"
	"github.com/thtta/farmlend/internal/core/application/usecases/queries"
	"github.com/thtta/farmlend/internal/core/domain/model/order"
	"github.com/thtta/farmlend/internal/core/domain/model/organization"
	"github.com/thtta/farmlend/internal/core/domain/model/product"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker implements the repositories' aggregateTracker. Query tests do
// not care about aggregate tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ int64, _ any) {}

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL database: pagination math, soft-delete visibility and the
// relation graph of the by-id lookups.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orgRepo   *organizationrepo.GormOrganizationRepository
	prodRepo  *productrepo.GormProductRepository
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&organizationrepo.OrganizationDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ReferencedOrderDTO{},
		&orderrepo.LineItemDTO{},
	))

	suite.orgRepo = organizationrepo.NewGormOrganizationRepository(db, noopTracker{})
	suite.prodRepo = productrepo.NewGormProductRepository(db, noopTracker{})
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE organizations, products, orders, referenced_orders, order_products RESTART IDENTITY CASCADE",
	).Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllOrganizations_PaginationMath() {
	ctx := context.Background()
	for i := range 25 {
		suite.seedOrganization(ctx, fmt.Sprintf("Organization %02d", i))
	}

	handler := queries.NewGetAllOrganizationsQueryHandler(suite.db)

	items, meta, err := handler.Handle(ctx, queries.NewGetAllOrganizationsQuery(3, 10))
	suite.Require().NoError(err)

	// 25 rows at 10 per page: the third page holds the last 5
	suite.Len(items, 5)
	suite.Equal(5, meta.ItemCount)
	suite.Equal(int64(25), meta.TotalItems)
	suite.Equal(10, meta.ItemsPerPage)
	suite.Equal(3, meta.TotalPages)
	suite.Equal(3, meta.CurrentPage)

	// Primary-key ascending, so the window is stable across pages
	suite.Equal("Organization 20", items[0].Name)
	suite.Equal("Organization 24", items[4].Name)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllOrganizations_ExcludesSoftDeleted() {
	ctx := context.Background()
	kept := suite.seedOrganization(ctx, "Fresh Fruits BV")
	removed := suite.seedOrganization(ctx, "Green Veggies GmbH")
	suite.Require().NoError(suite.orgRepo.Delete(ctx, removed.ID()))

	handler := queries.NewGetAllOrganizationsQueryHandler(suite.db)

	items, meta, err := handler.Handle(ctx, queries.NewGetAllOrganizationsQuery(1, 20))
	suite.Require().NoError(err)

	suite.Require().Len(items, 1)
	suite.Equal(kept.ID(), items[0].ID)
	suite.Equal(int64(1), meta.TotalItems)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrganization_IncludesOwnedProductsAndOrders() {
	ctx := context.Background()
	org := suite.seedOrganization(ctx, "Fresh Fruits BV")
	prod := suite.seedProduct(ctx, org.ID())
	placed := suite.seedOrder(ctx, org.ID(), prod, nil)

	handler := queries.NewGetOrganizationQueryHandler(suite.db)

	query, err := queries.NewGetOrganizationQuery(org.ID())
	suite.Require().NoError(err)

	detail, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(org.ID(), detail.ID)
	suite.Equal("Fresh Fruits BV", detail.Name)
	suite.Require().Len(detail.Products, 1)
	suite.Equal(prod.ID(), detail.Products[0].ID)
	suite.Require().Len(detail.Orders, 1)
	suite.Equal(placed.ID(), detail.Orders[0].ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrganization_NonExistent_ReturnsNotFoundError() {
	handler := queries.NewGetOrganizationQueryHandler(suite.db)

	query, err := queries.NewGetOrganizationQuery(9999)
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetProduct_NestsOwningOrganization() {
	ctx := context.Background()
	org := suite.seedOrganization(ctx, "Fresh Fruits BV")
	prod := suite.seedProduct(ctx, org.ID())

	handler := queries.NewGetProductQueryHandler(suite.db)

	query, err := queries.NewGetProductQuery(prod.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(prod.ID(), resp.ID)
	suite.Equal("Apples", resp.Category)
	suite.Require().NotNil(resp.Organization)
	suite.Equal(org.ID(), resp.Organization.ID)
}

// TestGetOrder_FullRelationGraph round-trips an order through create and
// read: organization, referenced order summaries and line items with their
// nested product all come back.
func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_FullRelationGraph() {
	ctx := context.Background()
	org := suite.seedOrganization(ctx, "Fresh Fruits BV")
	prod := suite.seedProduct(ctx, org.ID())
	referenced := suite.seedOrder(ctx, org.ID(), prod, nil)
	placed := suite.seedOrder(ctx, org.ID(), prod, []int64{referenced.ID()})

	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(placed.ID(), resp.ID)
	suite.Equal("buy", resp.Type)
	suite.Require().NotNil(resp.Organization)
	suite.Equal(org.ID(), resp.Organization.ID)

	suite.Require().Len(resp.ReferencedOrders, 1)
	suite.Equal(referenced.ID(), resp.ReferencedOrders[0].ID)

	suite.Require().Len(resp.LineItems, 1)
	item := resp.LineItems[0]
	suite.Equal("100KG", item.Volume)
	suite.Equal("1.5USD/1KG", item.PricePerUnit)
	suite.Require().NotNil(item.Product)
	suite.Equal(prod.ID(), item.Product.ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_DetachedProductIsNull() {
	ctx := context.Background()
	org := suite.seedOrganization(ctx, "Fresh Fruits BV")
	prod := suite.seedProduct(ctx, org.ID())
	placed := suite.seedOrder(ctx, org.ID(), prod, nil)

	suite.Require().NoError(suite.prodRepo.Delete(ctx, prod.ID()))

	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(resp.LineItems, 1)
	suite.Nil(resp.LineItems[0].Product)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllOrders_InvalidQuery_ReturnsError() {
	handler := queries.NewGetAllOrdersQueryHandler(suite.db)

	_, _, err := handler.Handle(context.Background(), queries.GetAllOrdersQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrganization(
	ctx context.Context, name string,
) *organization.Organization {
	org, err := organization.NewOrganization(name, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orgRepo.Add(ctx, org))
	return org
}

func (suite *QueryHandlersIntegrationTestSuite) seedProduct(
	ctx context.Context, organizationID int64,
) *product.Product {
	prod, err := product.NewProduct("Apples", "Golden", "18KG Boxes", organizationID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.prodRepo.Add(ctx, prod))
	return prod
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(
	ctx context.Context, organizationID int64, prod *product.Product, refs []int64,
) *order.Order {
	item, err := order.NewLineItem("100KG", "1.5USD/1KG", prod)
	suite.Require().NoError(err)

	placed, err := order.NewOrder(order.Buy, organizationID, refs, []*order.LineItem{item})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, placed))
	return placed
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
