package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/in/ws"
	"logistics/internal/adapters/out/amqp"
	"logistics/internal/adapters/out/eventbus"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot owns the fleet store, the session stores and the event publishers and
// builds every handler from them.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	sessions   ports.WizardSessionStore
	checklists ports.ChecklistStore
	expirer    jobs.SessionExpirer
	hub        *ws.Hub
	publisher  ports.EventPublisher
	closers    []func() error
}

// NewCompositionRoot connects the configured backends and seeds an empty fleet store.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		hub:    ws.NewHub(logger.With("component", "ws_hub")),
	}

	if err := c.openStore(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.openSessions(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.openPublisher(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	return c, nil
}

func (c *CompositionRoot) openStore(ctx context.Context) error {
	switch c.cfg.StoreDriver {
	case StorePostgres:
		db, err := gorm.Open(gormpostgres.Open(c.cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		c.closers = append(c.closers, sqlDB.Close)

		if err = postgres.Migrate(db); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	default:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	vehicles, err := c.uowFactory.Create().VehicleRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(vehicles) > 0 {
		return nil
	}

	c.logger.InfoContext(ctx, "Seeding empty fleet store", "driver", c.cfg.StoreDriver)
	return memory.Seed(ctx, c.uowFactory.Create(), time.Now().UTC())
}

func (c *CompositionRoot) openSessions(ctx context.Context) error {
	if c.cfg.RedisAddr == "" {
		sessions := memory.NewWizardSessionStore()
		c.sessions = sessions
		c.expirer = sessions
		c.checklists = memory.NewChecklistStore()
		return nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     c.cfg.RedisAddr,
		Password: c.cfg.RedisPassword,
	})
	c.closers = append(c.closers, client.Close)
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}

	c.sessions = redis.NewWizardSessionStore(client, c.cfg.SessionTTL)
	c.checklists = redis.NewChecklistStore(client)
	return nil
}

func (c *CompositionRoot) openPublisher() error {
	publishers := []ports.EventPublisher{
		c.hub,
		eventbus.NewLogPublisher(c.logger.With("component", "events")),
	}

	if c.cfg.AMQPURL != "" {
		pub, err := amqp.Dial(c.cfg.AMQPURL, c.cfg.AMQPExchange)
		if err != nil {
			return fmt.Errorf("connect amqp: %w", err)
		}
		c.closers = append(c.closers, pub.Close)
		publishers = append(publishers, pub)
	}

	c.publisher = eventbus.NewFanout(publishers...)
	return nil
}

// Close releases the backends in reverse order of opening.
func (c *CompositionRoot) Close() error {
	c.hub.Close()
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

// reads is a unit of work that is never begun, so its repositories see committed state.
func (c *CompositionRoot) reads() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddVehicleCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateStartAssignmentCommandHandler() commands.StartAssignmentCommandHandler {
	return commands.NewStartAssignmentCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSelectOrderCommandHandler() commands.SelectOrderCommandHandler {
	return commands.NewSelectOrderCommandHandler(c.sessions, c.reads().OrderRepository())
}

func (c *CompositionRoot) CreateSelectVehicleCommandHandler() commands.SelectVehicleCommandHandler {
	reads := c.reads()
	return commands.NewSelectVehicleCommandHandler(c.sessions, reads.OrderRepository(), reads.VehicleRepository())
}

func (c *CompositionRoot) CreateStepBackCommandHandler() commands.StepBackCommandHandler {
	return commands.NewStepBackCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateResetAssignmentCommandHandler() commands.ResetAssignmentCommandHandler {
	return commands.NewResetAssignmentCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateConfirmAssignmentCommandHandler() commands.ConfirmAssignmentCommandHandler {
	return commands.NewConfirmAssignmentCommandHandler(c.sessions, c.CreateAssignVehicleCommandHandler())
}

func (c *CompositionRoot) CreateToggleLoadItemCommandHandler() commands.ToggleLoadItemCommandHandler {
	return commands.NewToggleLoadItemCommandHandler(c.reads().VehicleRepository(), c.checklists)
}

func (c *CompositionRoot) CreateSetLoadModeCommandHandler() commands.SetLoadModeCommandHandler {
	return commands.NewSetLoadModeCommandHandler(c.reads().VehicleRepository(), c.checklists)
}

func (c *CompositionRoot) CreateConfirmLoadCommandHandler() commands.ConfirmLoadCommandHandler {
	return commands.NewConfirmLoadCommandHandler(c.reads().VehicleRepository(), c.checklists, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	reads := c.reads()
	return queries.NewGetDashboardQueryHandler(
		reads.VehicleRepository(), reads.OrderRepository(), reads.DeliveryRepository())
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.reads().VehicleRepository())
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	reads := c.reads()
	return queries.NewGetVehicleQueryHandler(reads.VehicleRepository(), reads.DeliveryRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reads().OrderRepository())
}

func (c *CompositionRoot) CreateListCompatibleVehiclesQueryHandler() queries.ListCompatibleVehiclesQueryHandler {
	reads := c.reads()
	return queries.NewListCompatibleVehiclesQueryHandler(reads.OrderRepository(), reads.VehicleRepository())
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.reads().DeliveryRepository())
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.reads().DeliveryRepository())
}

func (c *CompositionRoot) CreateGetAssignmentSessionQueryHandler() queries.GetAssignmentSessionQueryHandler {
	reads := c.reads()
	return queries.NewGetAssignmentSessionQueryHandler(c.sessions, reads.OrderRepository(), reads.VehicleRepository())
}

func (c *CompositionRoot) CreateListLoadVehiclesQueryHandler() queries.ListLoadVehiclesQueryHandler {
	return queries.NewListLoadVehiclesQueryHandler(c.reads().VehicleRepository())
}

func (c *CompositionRoot) CreateGetLoadChecklistQueryHandler() queries.GetLoadChecklistQueryHandler {
	return queries.NewGetLoadChecklistQueryHandler(c.reads().VehicleRepository(), c.checklists)
}

func (c *CompositionRoot) CreateGetTrackerQueryHandler() queries.GetTrackerQueryHandler {
	reads := c.reads()
	return queries.NewGetTrackerQueryHandler(reads.VehicleRepository(), reads.DeliveryRepository())
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AddVehicle:        c.CreateAddVehicleCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AssignVehicle:     c.CreateAssignVehicleCommandHandler(),
		StartAssignment:   c.CreateStartAssignmentCommandHandler(),
		SelectOrder:       c.CreateSelectOrderCommandHandler(),
		SelectVehicle:     c.CreateSelectVehicleCommandHandler(),
		StepBack:          c.CreateStepBackCommandHandler(),
		ResetAssignment:   c.CreateResetAssignmentCommandHandler(),
		ConfirmAssignment: c.CreateConfirmAssignmentCommandHandler(),
		ToggleLoadItem:    c.CreateToggleLoadItemCommandHandler(),
		SetLoadMode:       c.CreateSetLoadModeCommandHandler(),
		ConfirmLoad:       c.CreateConfirmLoadCommandHandler(),

		Dashboard:          c.CreateGetDashboardQueryHandler(),
		ListVehicles:       c.CreateListVehiclesQueryHandler(),
		GetVehicle:         c.CreateGetVehicleQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		CompatibleVehicles: c.CreateListCompatibleVehiclesQueryHandler(),
		ListDeliveries:     c.CreateListDeliveriesQueryHandler(),
		GetDelivery:        c.CreateGetDeliveryQueryHandler(),
		AssignmentSession:  c.CreateGetAssignmentSessionQueryHandler(),
		LoadVehicles:       c.CreateListLoadVehiclesQueryHandler(),
		LoadChecklist:      c.CreateGetLoadChecklistQueryHandler(),
		Tracker:            c.CreateGetTrackerQueryHandler(),
	}, c.logger.With("component", "http"))
}

// CreateJobManager schedules the fleet report, plus the session sweep when sessions
// are kept in memory.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	all := []jobs.Job{
		jobs.NewFleetReportJob(c.CreateGetDashboardQueryHandler(), c.cfg.FleetReportSchedule, c.logger),
	}
	if c.expirer != nil {
		all = append(all, jobs.NewSessionSweepJob(c.expirer, c.cfg.SessionTTL, c.logger))
	}
	return jobs.NewJobManager(all...)
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
