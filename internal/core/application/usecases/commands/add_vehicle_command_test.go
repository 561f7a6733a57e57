package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddVehicleCommand(t *testing.T) {
	t.Run("defaults status to Available", func(t *testing.T) {
		cmd, err := commands.NewAddVehicleCommand(kernel.NewUUID(), " MH-12-XY-0001 ", "Van", 1500,
			"Anil Kumar", "+91 90000 12345", "Nagpur Yard", vehicle.Unknown)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "MH-12-XY-0001", cmd.Number())
		assert.Equal(t, vehicle.Available, cmd.Status())
	})

	t.Run("every field is required", func(t *testing.T) {
		_, err := commands.NewAddVehicleCommand(kernel.NewUUID(), "", "", 10, "", " ", "", vehicle.Available)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"vehicle number", "type", "driver name", "driver phone", "location"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		for _, capacity := range []int{0, -5} {
			_, err := commands.NewAddVehicleCommand(kernel.NewUUID(), "MH-12", "Truck", capacity,
				"Anil", "+91 1", "Yard", vehicle.Available)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "capacity must be a positive number")
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.AddVehicleCommand{}.Validate(), commands.ErrAddVehicleCommandIsNotConstructed)
	})
}

func TestAddVehicleCommandHandler_Handle(t *testing.T) {
	t.Run("adds an empty vehicle", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockVehicleRepository)
		uow := new(MockUoW)
		factory := new(MockVehicleUoWFactory)
		publisher := new(MockEventPublisher)

		var added *vehicle.Vehicle
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("VehicleRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*vehicle.Vehicle) }).
			Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(events []ports.Event) bool {
			return len(events) == 1 && events[0].Type == ports.EventVehicleAdded
		})).Return(nil).Once()

		id := kernel.NewUUID()
		cmd, err := commands.NewAddVehicleCommand(id, "MH-12-XY-0001", "Van", 1500,
			"Anil Kumar", "+91 90000 12345", "Nagpur Yard", vehicle.Unknown)
		require.NoError(t, err)

		err = commands.NewAddVehicleCommandHandler(factory, publisher, discardLogger).Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, added)
		assert.True(t, added.ID().IsEqual(id))
		assert.Zero(t, added.CurrentLoad())
		assert.Equal(t, vehicle.Available, added.Status())
		assert.Equal(t, "Nagpur Yard", added.Location().Address())
		assert.Zero(t, added.Location().Lat())
		assert.Empty(t, added.Driver().LicenseNumber())
		factory.AssertExpectations(t)
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("repository error aborts without commit", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockVehicleRepository)
		uow := new(MockUoW)
		factory := new(MockVehicleUoWFactory)
		dbErr := errors.New("duplicate")

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("VehicleRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.Anything).Return(dbErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, _ := commands.NewAddVehicleCommand(kernel.NewUUID(), "MH-12-XY-0001", "Van", 1500,
			"Anil Kumar", "+91 90000 12345", "Nagpur Yard", vehicle.Available)

		err := commands.NewAddVehicleCommandHandler(factory, nil, discardLogger).Handle(ctx, cmd)

		require.ErrorIs(t, err, dbErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
