package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderNumbers(orders []*order.Order) []string {
	res := make([]string, 0, len(orders))
	for _, o := range orders {
		res = append(res, o.Number())
	}
	return res
}

func TestNewListOrdersQuery_UnknownTab(t *testing.T) {
	_, err := queries.NewListOrdersQuery("Lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListPendingOrdersQuery(t *testing.T) {
	query := queries.NewListPendingOrdersQuery()
	require.NoError(t, query.Validate())

	status, ok := query.Status()
	assert.True(t, ok)
	assert.Equal(t, order.Pending, status)
}

func (s *QueriesTestSuite) TestListOrders_All() {
	handler := queries.NewListOrdersQueryHandler(s.uow.OrderRepository())
	query, err := queries.NewListOrdersQuery("")
	s.Require().NoError(err)

	res, err := handler.Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal([]string{"ORD-001", "ORD-002", "ORD-003"}, orderNumbers(res))
}

func (s *QueriesTestSuite) TestListOrders_Pending() {
	handler := queries.NewListOrdersQueryHandler(s.uow.OrderRepository())

	res, err := handler.Handle(s.ctx, queries.NewListPendingOrdersQuery())

	s.Require().NoError(err)
	s.Equal([]string{"ORD-001", "ORD-002"}, orderNumbers(res))
}

func (s *QueriesTestSuite) TestListOrders_ByStatus() {
	handler := queries.NewListOrdersQueryHandler(s.uow.OrderRepository())
	query, err := queries.NewListOrdersQuery("In Progress")
	s.Require().NoError(err)

	res, err := handler.Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal([]string{"ORD-003"}, orderNumbers(res))
}

func (s *QueriesTestSuite) TestListOrders_NoPendingLeftIsEmptyNotNil() {
	for _, number := range []string{"ORD-001", "ORD-002"} {
		o := s.orderByNumber(number)
		s.Require().NoError(o.Assign())
		s.Require().NoError(s.uow.OrderRepository().Update(s.ctx, o))
	}
	handler := queries.NewListOrdersQueryHandler(s.uow.OrderRepository())

	res, err := handler.Handle(s.ctx, queries.NewListPendingOrdersQuery())

	s.Require().NoError(err)
	s.NotNil(res)
	s.Empty(res)
}

func (s *QueriesTestSuite) TestListCompatibleVehicles_ExcludesSmallVehicles() {
	handler := queries.NewListCompatibleVehiclesQueryHandler(s.uow.OrderRepository(), s.uow.VehicleRepository())
	query, err := queries.NewListCompatibleVehiclesQuery(s.orderByNumber("ORD-001").ID())
	s.Require().NoError(err)

	res, err := handler.Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal("ORD-001", res.Order.Number())
	s.Equal([]string{"MH-12-AB-1234"}, vehicleNumbers(res.Vehicles))
}

func (s *QueriesTestSuite) TestListCompatibleVehicles_NoneFits() {
	handler := queries.NewListCompatibleVehiclesQueryHandler(s.uow.OrderRepository(), s.uow.VehicleRepository())
	query, err := queries.NewListCompatibleVehiclesQuery(s.orderByNumber("ORD-002").ID())
	s.Require().NoError(err)

	res, err := handler.Handle(s.ctx, query)

	s.Require().NoError(err)
	s.NotNil(res.Vehicles)
	s.Empty(res.Vehicles)
}

func (s *QueriesTestSuite) TestListCompatibleVehicles_UnknownOrder() {
	handler := queries.NewListCompatibleVehiclesQueryHandler(s.uow.OrderRepository(), s.uow.VehicleRepository())
	query, err := queries.NewListCompatibleVehiclesQuery(s.vehicleByNumber("MH-12-AB-1234").ID())
	s.Require().NoError(err)

	_, err = handler.Handle(s.ctx, query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
