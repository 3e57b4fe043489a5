package commands_test

import (
	"context"

	"flowerdelivery/internal/core/application/usecases/commands"
	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, number kernel.OrderNumber) (*delivery.Delivery, error) {
	args := m.Called(ctx, number)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) LockOrderNumbers(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

func (m *MockDeliveryRepository) GetOrderNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type MockContactRepository struct{ mock.Mock }

func (m *MockContactRepository) Add(ctx context.Context, c *contact.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContactRepository) Get(ctx context.Context, id kernel.UUID) (*contact.Contact, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*contact.Contact)
	return c, args.Error(1)
}

func (m *MockContactRepository) FindByBusinessName(ctx context.Context, name string) (*contact.Contact, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*contact.Contact)
	return c, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) ContactRepository() ports.ContactRepository {
	return m.Called().Get(0).(ports.ContactRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockContactUoW struct{ mock.Mock }

func (m *MockContactUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockContactUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockContactUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockContactUoW) ContactRepository() ports.ContactRepository {
	return m.Called().Get(0).(ports.ContactRepository)
}

type MockContactUoWFactory struct{ mock.Mock }

func (m *MockContactUoWFactory) Create() commands.ContactUoW {
	return m.Called().Get(0).(commands.ContactUoW)
}

// newUoW returns a unit of work whose deferred Rollback is always accepted.
func newUoW(deliveries ports.DeliveryRepository, contacts ports.ContactRepository) (*MockUoW, *MockUoWFactory) {
	uow := new(MockUoW)
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	if deliveries != nil {
		uow.On("DeliveryRepository").Return(deliveries).Maybe()
	}
	if contacts != nil {
		uow.On("ContactRepository").Return(contacts).Maybe()
	}

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func mustOrderNumber(s string) kernel.OrderNumber {
	n, err := kernel.ParseOrderNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}
