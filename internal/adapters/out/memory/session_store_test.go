package memory_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/core/domain/model/wizard"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardSessionStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewWizardSessionStore()
	w, err := wizard.Start(kernel.NewUUID(), testNow)
	require.NoError(t, err)

	_, err = store.Get(ctx, w.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.NoError(t, store.Save(ctx, w))

	got, err := store.Get(ctx, w.ID())
	require.NoError(t, err)
	assert.Equal(t, wizard.StepOrderSelection, got.Step())
}

func TestChecklistStore_KeepsOneChecklistPerVehicle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewChecklistStore()
	vehicleID := kernel.NewUUID()
	c, err := loadcheck.NewChecklist(vehicleID)
	require.NoError(t, err)
	require.NoError(t, c.Toggle("1"))

	require.NoError(t, store.Save(ctx, c))
	require.NoError(t, c.Toggle("2"))

	got, err := store.Get(ctx, vehicleID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Summary().LoadedCount, "the store keeps a copy")

	_, err = store.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestWizardSessionStore_Expire(t *testing.T) {
	ctx := context.Background()
	store := memory.NewWizardSessionStore()
	stale, err := wizard.Start(kernel.NewUUID(), testNow.Add(-2*time.Hour))
	require.NoError(t, err)
	fresh, err := wizard.Start(kernel.NewUUID(), testNow)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, stale))
	require.NoError(t, store.Save(ctx, fresh))

	n, err := store.Expire(ctx, testNow.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Get(ctx, stale.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	_, err = store.Get(ctx, fresh.ID())
	require.NoError(t, err)
}
