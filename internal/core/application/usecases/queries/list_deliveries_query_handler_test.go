package queries_test

import (
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// assign commits ORD-001 to MH-12-AB-1234 the way the assignment workflow does.
func (s *QueriesTestSuite) assign() *delivery.Delivery {
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))

	o, err := uow.OrderRepository().Get(s.ctx, s.orderByNumber("ORD-001").ID())
	s.Require().NoError(err)
	v, err := uow.VehicleRepository().Get(s.ctx, s.vehicleByNumber("MH-12-AB-1234").ID())
	s.Require().NoError(err)

	a, err := services.NewAssignmentService().Assign(kernel.NewUUID(), o, v, testNow)
	s.Require().NoError(err)
	s.Require().NoError(uow.OrderRepository().Update(s.ctx, a.Order))
	s.Require().NoError(uow.VehicleRepository().Update(s.ctx, a.Vehicle))
	s.Require().NoError(uow.DeliveryRepository().Add(s.ctx, a.Delivery))
	s.Require().NoError(uow.Commit(s.ctx))
	return a.Delivery
}

func tabCount(tabs []queries.TabCount, tab string) int {
	for _, t := range tabs {
		if t.Tab == tab {
			return t.Count
		}
	}
	return -1
}

func (s *QueriesTestSuite) TestListDeliveries_TabsCountWholeCollection() {
	s.assign()
	handler := queries.NewListDeliveriesQueryHandler(s.uow.DeliveryRepository())
	query, err := queries.NewListDeliveriesQuery("", "Scheduled")
	s.Require().NoError(err)

	res, err := handler.Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Require().Len(res.Deliveries, 1)
	s.Equal("ORD-001", res.Deliveries[0].OrderNumber())
	s.Equal(2, tabCount(res.Tabs, queries.TabAll))
	s.Equal(1, tabCount(res.Tabs, "Scheduled"))
	s.Equal(1, tabCount(res.Tabs, "In Progress"))
	s.Equal(0, tabCount(res.Tabs, "Cancelled"))
}

func (s *QueriesTestSuite) TestListDeliveries_SearchByOrderOrVehicleNumber() {
	s.assign()
	handler := queries.NewListDeliveriesQueryHandler(s.uow.DeliveryRepository())

	byOrder, err := queries.NewListDeliveriesQuery("ord-003", "")
	s.Require().NoError(err)
	res, err := handler.Handle(s.ctx, byOrder)
	s.Require().NoError(err)
	s.Require().Len(res.Deliveries, 1)
	s.Equal("MH-04-EF-9012", res.Deliveries[0].Vehicle().Number)

	byVehicle, err := queries.NewListDeliveriesQuery("MH-12", "All")
	s.Require().NoError(err)
	res, err = handler.Handle(s.ctx, byVehicle)
	s.Require().NoError(err)
	s.Require().Len(res.Deliveries, 1)
	s.Equal("ORD-001", res.Deliveries[0].OrderNumber())
}

func (s *QueriesTestSuite) TestListDeliveries_UnknownTab() {
	_, err := queries.NewListDeliveriesQuery("", "Lost")
	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (s *QueriesTestSuite) TestGetDelivery() {
	d := s.assign()
	handler := queries.NewGetDeliveryQueryHandler(s.uow.DeliveryRepository())
	query, err := queries.NewGetDeliveryQuery(d.ID())
	s.Require().NoError(err)

	got, err := handler.Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal(delivery.StatusScheduled, got.Status())
	s.Require().Len(got.Stops(), 2)
	s.Equal(delivery.StopPickup, got.Stops()[0].Type())
	s.Equal(1000, got.Vehicle().Capacity)
	s.Equal(0, got.Vehicle().CurrentLoad, "the snapshot is taken before loading")
}

func (s *QueriesTestSuite) TestGetDelivery_NotFound() {
	handler := queries.NewGetDeliveryQueryHandler(s.uow.DeliveryRepository())
	query, err := queries.NewGetDeliveryQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = handler.Handle(s.ctx, query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
