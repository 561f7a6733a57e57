package queries_test

import (
	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/pkg/errs"
)

func mustLocation(lat, lng float64, address string) kernel.Location {
	return kernel.MustNewLocation(lat, lng, address)
}

func (s *QueriesTestSuite) TestListLoadVehicles_OnlyActive() {
	handler := queries.NewListLoadVehiclesQueryHandler(s.uow.VehicleRepository())

	res, err := handler.Handle(s.ctx)

	s.Require().NoError(err)
	s.ElementsMatch([]string{"MH-12-AB-1234", "MH-15-CD-5678", "MH-04-EF-9012"}, vehicleNumbers(res))
}

func (s *QueriesTestSuite) TestGetLoadChecklist_FreshChecklistIsNotSaved() {
	checklists := memory.NewChecklistStore()
	handler := queries.NewGetLoadChecklistQueryHandler(s.uow.VehicleRepository(), checklists)
	v := s.vehicleByNumber("MH-12-AB-1234")
	query, err := queries.NewGetLoadChecklistQuery(v.ID())
	s.Require().NoError(err)

	res, err := handler.Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal(v.ID(), res.Vehicle.ID())
	s.Len(res.Checklist.Items(), 4)
	s.Equal(loadcheck.ModeLoading, res.Checklist.Mode())
	s.Zero(res.Summary.LoadedCount)

	_, err = checklists.Get(s.ctx, v.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesTestSuite) TestGetLoadChecklist_ReturnsStoredChecklist() {
	checklists := memory.NewChecklistStore()
	v := s.vehicleByNumber("MH-04-EF-9012")
	c, err := loadcheck.NewChecklist(v.ID())
	s.Require().NoError(err)
	s.Require().NoError(c.Toggle("2"))
	s.Require().NoError(checklists.Save(s.ctx, c))
	handler := queries.NewGetLoadChecklistQueryHandler(s.uow.VehicleRepository(), checklists)
	query, err := queries.NewGetLoadChecklistQuery(v.ID())
	s.Require().NoError(err)

	res, err := handler.Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal(loadcheck.Summary{LoadedCount: 1, TotalItems: 4, TotalWeightKg: 2000, TotalCrates: 40}, res.Summary)
}

func (s *QueriesTestSuite) TestGetLoadChecklist_VehicleUnderMaintenance() {
	handler := queries.NewGetLoadChecklistQueryHandler(s.uow.VehicleRepository(), memory.NewChecklistStore())
	query, err := queries.NewGetLoadChecklistQuery(s.vehicleByNumber("MH-11-GH-3456").ID())
	s.Require().NoError(err)

	_, err = handler.Handle(s.ctx, query)

	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}
