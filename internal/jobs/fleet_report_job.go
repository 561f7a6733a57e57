package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// FleetReportJob logs the dashboard figures on a cron schedule. It only reads.
type FleetReportJob struct {
	handler  queries.GetDashboardQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFleetReportJob creates the job. schedule is a six-field cron expression
// (seconds first), for example "0 */15 * * * *".
func NewFleetReportJob(handler queries.GetDashboardQueryHandler, schedule string, logger *slog.Logger) *FleetReportJob {
	return &FleetReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fleet_report_job"),
	}
}

// Start schedules the report and starts the cron runner.
func (j *FleetReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet report job started", "schedule", j.schedule)
	return nil
}

// Run logs one report.
func (j *FleetReportJob) Run(ctx context.Context) {
	res, err := j.handler.Handle(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Fleet report",
		slog.Int("total_fleet", res.KPIs.TotalFleet),
		slog.Int("available_now", res.KPIs.AvailableNow),
		slog.Int("under_maintenance", res.KPIs.UnderMaintenance),
		slog.Int("active_deliveries", res.KPIs.ActiveDeliveries),
		slog.Int("pending_orders", res.KPIs.PendingOrders),
		slog.Int("utilization_percent", res.Fleet.UtilizationPercent),
		slog.Int("on_time_rate", res.DeliveryStatus.OnTimeRate),
	)
}

// Stop stops the cron runner and waits for a running report to finish.
func (j *FleetReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fleet report job stopped")
}
