package queries_test

import (
	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/wizard"
	"logistics/internal/pkg/errs"
)

func (s *QueriesTestSuite) sessionHandler(sessions *memory.WizardSessionStore) queries.GetAssignmentSessionQueryHandler {
	return queries.NewGetAssignmentSessionQueryHandler(sessions, s.uow.OrderRepository(), s.uow.VehicleRepository())
}

func (s *QueriesTestSuite) TestGetAssignmentSession_OrderSelection() {
	sessions := memory.NewWizardSessionStore()
	w, err := wizard.Start(kernel.NewUUID(), testNow)
	s.Require().NoError(err)
	s.Require().NoError(sessions.Save(s.ctx, w))
	query, err := queries.NewGetAssignmentSessionQuery(w.ID())
	s.Require().NoError(err)

	res, err := s.sessionHandler(sessions).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal(wizard.StepOrderSelection, res.Session.Step())
	s.Equal([]string{"ORD-001", "ORD-002"}, orderNumbers(res.PendingOrders))
	s.Nil(res.SelectedOrder)
	s.Empty(res.CompatibleVehicles)
}

func (s *QueriesTestSuite) TestGetAssignmentSession_VehicleSelection() {
	sessions := memory.NewWizardSessionStore()
	w, err := wizard.Start(kernel.NewUUID(), testNow)
	s.Require().NoError(err)
	s.Require().NoError(w.SelectOrder(s.orderByNumber("ORD-001"), testNow))
	s.Require().NoError(sessions.Save(s.ctx, w))
	query, err := queries.NewGetAssignmentSessionQuery(w.ID())
	s.Require().NoError(err)

	res, err := s.sessionHandler(sessions).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal(wizard.StepVehicleSelection, res.Session.Step())
	s.Equal("ORD-001", res.SelectedOrder.Number())
	s.Equal([]string{"MH-12-AB-1234"}, vehicleNumbers(res.CompatibleVehicles))
	s.Empty(res.PendingOrders)
}

func (s *QueriesTestSuite) TestGetAssignmentSession_Confirmation() {
	sessions := memory.NewWizardSessionStore()
	o := s.orderByNumber("ORD-001")
	v := s.vehicleByNumber("MH-12-AB-1234")
	w, err := wizard.Start(kernel.NewUUID(), testNow)
	s.Require().NoError(err)
	s.Require().NoError(w.SelectOrder(o, testNow))
	s.Require().NoError(w.SelectVehicle(o, v, testNow))
	s.Require().NoError(sessions.Save(s.ctx, w))
	query, err := queries.NewGetAssignmentSessionQuery(w.ID())
	s.Require().NoError(err)

	res, err := s.sessionHandler(sessions).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal(wizard.StepConfirmation, res.Session.Step())
	s.Equal("MH-12-AB-1234", res.SelectedVehicle.Number())
	s.Equal("ORD-001", res.SelectedOrder.Number())
}

func (s *QueriesTestSuite) TestGetAssignmentSession_Unknown() {
	query, err := queries.NewGetAssignmentSessionQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = s.sessionHandler(memory.NewWizardSessionStore()).Handle(s.ctx, query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
