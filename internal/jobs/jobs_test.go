package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func TestFleetReportJob_Run(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	require.NoError(t, memory.Seed(ctx, factory.Create(), testNow))
	reads := factory.Create()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := queries.NewGetDashboardQueryHandler(
		reads.VehicleRepository(), reads.OrderRepository(), reads.DeliveryRepository())

	NewFleetReportJob(handler, "0 * * * * *", logger).Run(ctx)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Fleet report", entry["msg"])
	assert.Equal(t, "fleet_report_job", entry["component"])
	assert.InDelta(t, 4, entry["total_fleet"], 0)
	assert.InDelta(t, 2, entry["pending_orders"], 0)
}

func TestFleetReportJob_StartRejectsBadSchedule(t *testing.T) {
	job := NewFleetReportJob(queries.GetDashboardQueryHandler{}, "every now and then", slog.Default())
	require.Error(t, job.Start())
}

func TestSessionSweepJob_Run(t *testing.T) {
	ctx := context.Background()
	sessions := memory.NewWizardSessionStore()
	stale, err := wizard.Start(kernel.NewUUID(), testNow.Add(-time.Hour))
	require.NoError(t, err)
	fresh, err := wizard.Start(kernel.NewUUID(), testNow.Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, stale))
	require.NoError(t, sessions.Save(ctx, fresh))

	job := NewSessionSweepJob(sessions, 30*time.Minute, slog.Default())
	job.now = func() time.Time { return testNow }
	job.Run(ctx)

	_, err = sessions.Get(ctx, stale.ID())
	require.Error(t, err)
	_, err = sessions.Get(ctx, fresh.ID())
	require.NoError(t, err)
}
