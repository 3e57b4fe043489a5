package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "flowerdelivery/internal/adapters/out/postgres"
	"flowerdelivery/internal/adapters/out/postgres/contactrepo"
	"flowerdelivery/internal/adapters/out/postgres/deliveryrepo"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/clock"
	"flowerdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	db, err := postgres_adapter.Open(dsn, logger.Silent)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, contacts").Error)

	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})
	seed := []struct {
		id     string
		status delivery.Status
		fee    int
	}{
		{"231231-001", delivery.StatusSettled, 9000},
		{"240101-001", delivery.StatusPickedUp, 10000},
		{"240101-002", delivery.StatusSettled, 20000},
		{"240101-003", delivery.StatusPickedUp, 5000},
		{"240101-004", delivery.StatusPendingSettlement, 0},
	}
	for _, s := range seed {
		number, err := kernel.ParseOrderNumber(s.id)
		suite.Require().NoError(err)
		d, err := delivery.RestoreDelivery(number, s.status, delivery.SettlementCollect, delivery.Details{
			BusinessName: "MSS 플라워",
			Recipient:    delivery.NewRecipient("용인시 기흥구 중부대로 184", ""),
			BoxCount:     1,
			Fee:          s.fee,
		}, testTime)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(context.Background(), d))
	}
}

func (suite *QueriesIntegrationTestSuite) TestListDeliveries_All() {
	views := suite.listDeliveries(nil, delivery.ViewAll, "")

	suite.Equal([]string{"231231-001", "240101-001", "240101-002", "240101-003", "240101-004"}, viewIDs(views))
	suite.Equal("용인시 기흥구", views[0].AbbreviatedAddress)
	suite.Equal("착불", views[0].SettlementLabel)
}

func (suite *QueriesIntegrationTestSuite) TestListDeliveries_OnlyPickedUpKeepsOrder() {
	pickedUp := delivery.StatusPickedUp

	views := suite.listDeliveries(&pickedUp, delivery.ViewAll, "")

	suite.Equal([]string{"240101-001", "240101-003"}, viewIDs(views))
	for _, v := range views {
		suite.Equal(delivery.StatusPickedUp, v.Status)
	}
}

func (suite *QueriesIntegrationTestSuite) TestListDeliveries_Views() {
	suite.Equal(
		[]string{"240101-001", "240101-003", "240101-004"},
		viewIDs(suite.listDeliveries(nil, delivery.ViewInProgress, "")),
	)
	suite.Equal(
		[]string{"231231-001", "240101-002"},
		viewIDs(suite.listDeliveries(nil, delivery.ViewSettled, "")),
	)
}

func (suite *QueriesIntegrationTestSuite) TestListDeliveries_OneDay() {
	suite.Equal(
		[]string{"231231-001"},
		viewIDs(suite.listDeliveries(nil, delivery.ViewAll, "231231")),
	)
	suite.Empty(suite.listDeliveries(nil, delivery.ViewAll, "240102"))
}

func (suite *QueriesIntegrationTestSuite) TestGetDelivery() {
	h := queries.NewGetDeliveryQueryHandler(suite.db)

	number, err := kernel.ParseOrderNumber("240101-003")
	suite.Require().NoError(err)
	query, err := queries.NewGetDeliveryQuery(number)
	suite.Require().NoError(err)

	view, err := h.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("240101-003", view.ID)
	suite.Equal(5000, view.Fee)
	suite.Equal(delivery.StatusPickedUp, view.Status)

	missing, err := kernel.ParseOrderNumber("240101-099")
	suite.Require().NoError(err)
	query, err = queries.NewGetDeliveryQuery(missing)
	suite.Require().NoError(err)

	_, err = h.Handle(context.Background(), query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestTodaySummary() {
	seoul := time.FixedZone("KST", 9*60*60)
	h := queries.NewTodaySummaryQueryHandler(suite.db, clock.Fixed(time.Date(2024, 1, 1, 23, 0, 0, 0, seoul)))

	summary, err := h.Handle(context.Background(), queries.NewTodaySummaryQuery())

	suite.Require().NoError(err)
	suite.Equal(queries.TodaySummaryQueryResponse{Date: "240101", Count: 4, FeeTotal: 35000}, summary)
}

func (suite *QueriesIntegrationTestSuite) TestTodaySummary_EmptyDay() {
	h := queries.NewTodaySummaryQueryHandler(suite.db, clock.Fixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))

	summary, err := h.Handle(context.Background(), queries.NewTodaySummaryQuery())

	suite.Require().NoError(err)
	suite.Equal(queries.TodaySummaryQueryResponse{Date: "240301"}, summary)
}

func (suite *QueriesIntegrationTestSuite) TestListContacts_FillsCacheOnMiss() {
	ctx := context.Background()
	suite.addContact("새 가든브리즈", "010-3", "010-2")
	suite.addContact("MSS Flower", "010-1")

	cache := new(MockContactCache)
	cache.On("Get", mock.Anything).Return(nil, int64(7), false, nil).Once()
	cache.On("Set", mock.Anything, int64(7), mock.MatchedBy(func(list []*contact.Contact) bool {
		return len(list) == 2
	})).Return(nil).Once()

	h := queries.NewListContactsQueryHandler(suite.db, cache, discardLogger())
	views, err := h.Handle(ctx, queries.NewListContactsQuery(""))

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal("MSS Flower", views[0].BusinessName)
	suite.Equal([]string{"010-3", "010-2"}, views[1].Phones)
	cache.AssertExpectations(suite.T())
}

func (suite *QueriesIntegrationTestSuite) TestListContacts_CacheErrorsFallBackToDatabase() {
	ctx := context.Background()
	suite.addContact("MSS Flower", "010-1")

	cache := new(MockContactCache)
	cache.On("Get", mock.Anything).Return(nil, int64(0), false, errCacheDown).Once()

	h := queries.NewListContactsQueryHandler(suite.db, cache, discardLogger())
	views, err := h.Handle(ctx, queries.NewListContactsQuery("flower"))

	suite.Require().NoError(err)
	suite.Len(views, 1)
	cache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QueriesIntegrationTestSuite) TestListContacts_CacheWriteErrorIsIgnored() {
	ctx := context.Background()
	suite.addContact("MSS Flower", "010-1")

	cache := new(MockContactCache)
	cache.On("Get", mock.Anything).Return(nil, int64(0), false, nil).Once()
	cache.On("Set", mock.Anything, int64(0), mock.Anything).Return(errCacheDown).Once()

	h := queries.NewListContactsQueryHandler(suite.db, cache, discardLogger())
	views, err := h.Handle(ctx, queries.NewListContactsQuery(""))

	suite.Require().NoError(err)
	suite.Len(views, 1)
	cache.AssertExpectations(suite.T())
}

func (suite *QueriesIntegrationTestSuite) TestListContacts_WithoutCache() {
	suite.addContact("MSS Flower", "010-1")

	h := queries.NewListContactsQueryHandler(suite.db, nil, discardLogger())
	views, err := h.Handle(context.Background(), queries.NewListContactsQuery("가든"))

	suite.Require().NoError(err)
	suite.Empty(views)
}

func (suite *QueriesIntegrationTestSuite) listDeliveries(
	status *delivery.Status,
	view delivery.View,
	prefix string,
) []queries.DeliveryView {
	query, err := queries.NewListDeliveriesQuery(status, view, prefix)
	suite.Require().NoError(err)

	views, err := queries.NewListDeliveriesQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return views
}

func (suite *QueriesIntegrationTestSuite) addContact(name string, phones ...string) {
	c, err := contact.NewContact(kernel.NewUUID(), name, phones, "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(contactrepo.NewGormContactRepository(suite.db, noopTracker{}).Add(context.Background(), c))
}

func viewIDs(views []queries.DeliveryView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}
