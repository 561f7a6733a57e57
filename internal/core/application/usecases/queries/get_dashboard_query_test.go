package queries_test

import (
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
)

func (s *QueriesTestSuite) TestGetDashboard() {
	handler := queries.NewGetDashboardQueryHandler(
		s.uow.VehicleRepository(), s.uow.OrderRepository(), s.uow.DeliveryRepository())

	res, err := handler.Handle(s.ctx)

	s.Require().NoError(err)
	s.Equal(services.DashboardKPIs{
		TotalFleet:       4,
		AvailableNow:     2,
		ActiveDeliveries: 1,
		PendingOrders:    2,
		UnderMaintenance: 1,
	}, res.KPIs)
	s.Equal(4100, res.Fleet.TotalCapacity)
	s.Equal(37, res.Fleet.UtilizationPercent)
	s.Equal(50, res.Fleet.AvailablePercent)
	s.Equal(1, res.Fleet.StatusCounts[vehicle.InTransit])
	s.Equal(100, res.DeliveryStatus.OnTimeRate)
	s.Equal(1, res.DeliveryStatus.StatusCounts[delivery.StatusInProgress])
	s.Len(res.RecentDeliveries, 1)
}

func (s *QueriesTestSuite) TestGetDashboard_AfterAssignment() {
	d := s.assign()
	handler := queries.NewGetDashboardQueryHandler(
		s.uow.VehicleRepository(), s.uow.OrderRepository(), s.uow.DeliveryRepository())

	res, err := handler.Handle(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, res.KPIs.AvailableNow)
	s.Equal(2, res.KPIs.ActiveDeliveries)
	s.Equal(1, res.KPIs.PendingOrders)
	s.Require().Len(res.RecentDeliveries, 2)
	s.Equal(d.ID(), res.RecentDeliveries[0].ID(), "latest start first")
}

func (s *QueriesTestSuite) TestGetTracker() {
	handler := queries.NewGetTrackerQueryHandler(s.uow.VehicleRepository(), s.uow.DeliveryRepository())

	res, err := handler.Handle(s.ctx)

	s.Require().NoError(err)
	s.Len(res.Vehicles, 4)
	s.Require().Len(res.Routes, 1)
	s.Equal("ORD-003", res.Routes[0].OrderNumber())
	s.Equal(1, res.InTransitCount)
	s.Zero(res.DelayedCount)
}

func (s *QueriesTestSuite) TestGetTracker_SkipsVehiclesWithoutPosition() {
	s.assign()
	v := s.vehicleByNumber("MH-15-CD-5678")
	unplaced, err := vehicle.RestoreVehicle(v.ID(), v.Number(), v.Type(), v.Capacity(), 0,
		v.Status(), v.Driver(), mustLocation(0, 0, "Unknown"), testNow)
	s.Require().NoError(err)
	s.Require().NoError(s.uow.VehicleRepository().Update(s.ctx, unplaced))
	handler := queries.NewGetTrackerQueryHandler(s.uow.VehicleRepository(), s.uow.DeliveryRepository())

	res, err := handler.Handle(s.ctx)

	s.Require().NoError(err)
	s.NotContains(vehicleNumbers(res.Vehicles), "MH-15-CD-5678")
	s.Len(res.Routes, 1, "scheduled deliveries are not on the road yet")
}
