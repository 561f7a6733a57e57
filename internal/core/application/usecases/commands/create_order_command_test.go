package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	window, err := order.NewDeliveryWindow(testNow, testNow.Add(4*time.Hour))
	require.NoError(t, err)
	dest := kernel.MustNewLocation(21.1458, 79.0882, "Nagpur Agro Mart")

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-2025-010", dest, 750, window, order.PriorityMedium, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 750, cmd.RequiredCapacity())
	})

	t.Run("joins errors", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), " ", kernel.Location{}, 0, order.DeliveryWindow{},
			order.PriorityUnknown, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "order number")
		assert.Contains(t, err.Error(), "required capacity")
		assert.Contains(t, err.Error(), "delivery window")
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	window, _ := order.NewDeliveryWindow(testNow, testNow.Add(4*time.Hour))
	dest := kernel.MustNewLocation(21.1458, 79.0882, "Nagpur Agro Mart")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)

	var added *order.Order
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-2025-010", dest, 750, window, order.PriorityLow, nil)
	require.NoError(t, err)

	err = commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, order.Pending, added.Status())
	assert.Equal(t, "ORD-2025-010", added.Number())
	assert.WithinDuration(t, time.Now(), added.CreatedAt(), time.Minute)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
