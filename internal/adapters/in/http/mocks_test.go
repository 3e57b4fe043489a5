package http_test

import (
	"context"

	"flowerdelivery/internal/core/application/usecases/commands"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/mock"
)

type MockCreateDelivery struct{ mock.Mock }

func (m *MockCreateDelivery) Handle(ctx context.Context, cmd commands.CreateDeliveryCommand) (*delivery.Delivery, error) {
	args := m.Called(ctx, cmd)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

type MockEditDelivery struct{ mock.Mock }

func (m *MockEditDelivery) Handle(ctx context.Context, cmd commands.EditDeliveryCommand) (*delivery.Delivery, error) {
	args := m.Called(ctx, cmd)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

type MockAdvanceDeliveryStatus struct{ mock.Mock }

func (m *MockAdvanceDeliveryStatus) Handle(
	ctx context.Context,
	cmd commands.AdvanceDeliveryStatusCommand,
) (*delivery.Delivery, error) {
	args := m.Called(ctx, cmd)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

type MockSaveContact struct{ mock.Mock }

func (m *MockSaveContact) Handle(ctx context.Context, cmd commands.SaveContactCommand) (*contact.Contact, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*contact.Contact)
	return c, args.Error(1)
}

type MockDeleteContact struct{ mock.Mock }

func (m *MockDeleteContact) Handle(ctx context.Context, cmd commands.DeleteContactCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListDeliveries struct{ mock.Mock }

func (m *MockListDeliveries) Handle(ctx context.Context, query queries.ListDeliveriesQuery) ([]queries.DeliveryView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.DeliveryView)
	return views, args.Error(1)
}

type MockGetDelivery struct{ mock.Mock }

func (m *MockGetDelivery) Handle(ctx context.Context, query queries.GetDeliveryQuery) (queries.DeliveryView, error) {
	args := m.Called(ctx, query)
	view, _ := args.Get(0).(queries.DeliveryView)
	return view, args.Error(1)
}

type MockTodaySummary struct{ mock.Mock }

func (m *MockTodaySummary) Handle(
	ctx context.Context,
	query queries.TodaySummaryQuery,
) (queries.TodaySummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	summary, _ := args.Get(0).(queries.TodaySummaryQueryResponse)
	return summary, args.Error(1)
}

type MockListContacts struct{ mock.Mock }

func (m *MockListContacts) Handle(ctx context.Context, query queries.ListContactsQuery) ([]queries.ContactView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.ContactView)
	return views, args.Error(1)
}
