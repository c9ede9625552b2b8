package organizationrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/core/domain/model/organization"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrganizationRepositoryIntegrationTestSuite provides integration tests for
// OrganizationRepository using PostgreSQL containers.
type OrganizationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *organizationrepo.GormOrganizationRepository
	tracker    *MockAggregateTracker
}

func (suite *OrganizationRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&organizationrepo.OrganizationDTO{}))
}

func (suite *OrganizationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE organizations RESTART IDENTITY CASCADE",
	).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = organizationrepo.NewGormOrganizationRepository(suite.db, suite.tracker)
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TestAdd_ValidOrganization_Success() {
	ctx := context.Background()

	buyer := organization.Buyer
	org, err := organization.NewOrganization("Fresh Fruits BV", &buyer)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), org).Once()

	suite.Require().NoError(suite.repository.Add(ctx, org))
	suite.Positive(org.ID())

	suite.assertOrganizationCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TestGet_ExistingOrganization_ReturnsOrganization() {
	ctx := context.Background()

	original := suite.createOrganization(ctx, "Fresh Fruits BV", nil)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Fresh Fruits BV", retrieved.Name())
	suite.Nil(retrieved.OrgType())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TestGet_NonExistentOrganization_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), 9999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TestUpdate_RewritesNameAndType() {
	ctx := context.Background()

	buyer := organization.Buyer
	original := suite.createOrganization(ctx, "Fresh Fruits BV", &buyer)

	// Renaming and clearing the type must both land
	updated, err := organization.RestoreOrganization(original.ID(), "Fresh Fruits International BV", nil)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", updated.ID(), updated).Once()
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal("Fresh Fruits International BV", retrieved.Name())
	suite.Nil(retrieved.OrgType())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrganization_ReturnsNotFoundError() {
	ctx := context.Background()

	phantom, err := organization.RestoreOrganization(9999, "Fresh Fruits BV", nil)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, phantom)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TestDelete_SoftDeletesRow() {
	ctx := context.Background()

	org := suite.createOrganization(ctx, "Fresh Fruits BV", nil)
	suite.Require().NoError(suite.repository.Delete(ctx, org.ID()))

	suite.assertOrganizationCount(0)

	var dto organizationrepo.OrganizationDTO
	suite.Require().NoError(suite.db.Unscoped().First(&dto, "id = ?", org.ID()).Error)
	suite.True(dto.DeletedAt.Valid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TestDelete_NonExistentOrganization_ReturnsNotFoundError() {
	err := suite.repository.Delete(context.Background(), 9999)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrganizationRepositoryIntegrationTestSuite) TestPurgeDeletedBefore_RemovesOnlyOldRows() {
	ctx := context.Background()

	oldOrg := suite.createOrganization(ctx, "Fresh Fruits BV", nil)
	recentOrg := suite.createOrganization(ctx, "Green Veggies GmbH", nil)

	suite.Require().NoError(suite.repository.Delete(ctx, oldOrg.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, recentOrg.ID()))

	suite.Require().NoError(suite.db.Unscoped().
		Model(&organizationrepo.OrganizationDTO{}).
		Where("id = ?", oldOrg.ID()).
		Update("deleted_at", time.Now().Add(-48*time.Hour)).Error)

	purged, err := suite.repository.PurgeDeletedBefore(ctx, time.Now().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), purged)

	var physical int64
	suite.Require().NoError(suite.db.Unscoped().
		Model(&organizationrepo.OrganizationDTO{}).Count(&physical).Error)
	suite.Equal(int64(1), physical)

	suite.tracker.AssertExpectations(suite.T())
}

// createOrganization persists an organization through the repository.
func (suite *OrganizationRepositoryIntegrationTestSuite) createOrganization(
	ctx context.Context, name string, orgType *organization.Type,
) *organization.Organization {
	org, err := organization.NewOrganization(name, orgType)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), org).Once()
	suite.Require().NoError(suite.repository.Add(ctx, org))

	return org
}

// assertOrganizationCount verifies the number of live organizations.
func (suite *OrganizationRepositoryIntegrationTestSuite) assertOrganizationCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&organizationrepo.OrganizationDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrganizationRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrganizationRepositoryIntegrationTestSuite))
}
