package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/pgtest"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), postgres_adapter.Models()...)
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products, product_movements, audit_logs, outbox_messages").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

type registration struct {
	product  *product.Product
	movement *product.Movement
	entry    *audit.Entry
	message  *outbox.Message
}

func (suite *UnitOfWorkIntegrationTestSuite) newRegistration() registration {
	now := time.Now()
	userID := kernel.NewUUID()

	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "SKU-"+kernel.NewUUID().String()[:8], "Mesa", 2, nil, now)
	suite.Require().NoError(err)
	m, err := product.NewMovement(p, nil, product.RegistrationReason, userID, now)
	suite.Require().NoError(err)
	e, err := audit.NewEntry(p.TenantID(), userID, audit.ActionProductCreate, audit.EntityProduct, p.ID(), nil, now)
	suite.Require().NoError(err)
	msg, err := outbox.NewMessage("product.created", p.ID(), map[string]string{"id": p.ID().String()}, now)
	suite.Require().NoError(err)

	return registration{product: p, movement: m, entry: e, message: msg}
}

func (suite *UnitOfWorkIntegrationTestSuite) write(uow ports.UnitOfWork, r registration) {
	ctx := context.Background()
	suite.Require().NoError(uow.ProductRepository().Add(ctx, r.product))
	suite.Require().NoError(uow.MovementRepository().Add(ctx, r.movement))
	suite.Require().NoError(uow.AuditLogRepository().Add(ctx, r.entry))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, r.message))
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.db.Table(table).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.MovementRepository())
	suite.NotNil(uow1.AuditLogRepository())
	suite.NotNil(uow1.OutboxRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAllWritesTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()
	r := suite.newRegistration()

	suite.Require().NoError(uow.Begin(ctx))
	suite.write(uow, r)
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().ProductRepository().Get(ctx, r.product.ID())
	suite.Require().NoError(err)
	suite.Equal(lifecycle.Received, got.Status())
	suite.Equal(int64(1), suite.count("product_movements"))
	suite.Equal(int64(1), suite.count("audit_logs"))
	suite.Equal(int64(1), suite.count("outbox_messages"))

	var previous *string
	suite.Require().NoError(suite.db.Raw("SELECT previous_status FROM product_movements").Scan(&previous).Error)
	suite.Nil(previous, "registration movement has no previous status")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	r := suite.newRegistration()

	suite.Require().NoError(uow.Begin(ctx))
	suite.write(uow, r)

	_, err := uow.ProductRepository().Get(ctx, r.product.ID())
	suite.Require().NoError(err, "writes are visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().ProductRepository().Get(ctx, r.product.ID())
	suite.Require().Error(err, "Product should not exist after rollback")
	suite.Zero(suite.count("product_movements"))
	suite.Zero(suite.count("audit_logs"))
	suite.Zero(suite.count("outbox_messages"))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
