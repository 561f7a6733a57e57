package loadcheck_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecklist(t *testing.T) *loadcheck.Checklist {
	t.Helper()
	c, err := loadcheck.NewChecklist(kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewChecklist(t *testing.T) {
	c := newChecklist(t)

	assert.Equal(t, loadcheck.ModeLoading, c.Mode())
	items := c.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "Tomato Seeds - Hybrid", items[0].ProductName)
	assert.Equal(t, "units", items[2].Unit)
	for _, it := range items {
		assert.False(t, it.IsLoaded)
	}
	assert.Equal(t, loadcheck.Summary{TotalItems: 4}, c.Summary())

	_, err := loadcheck.NewChecklist(kernel.UUID{})
	require.Error(t, err)
}

func TestChecklist_Toggle(t *testing.T) {
	c := newChecklist(t)

	require.NoError(t, c.Toggle("1"))
	require.NoError(t, c.Toggle("3"))

	assert.Equal(t, loadcheck.Summary{
		LoadedCount:   2,
		TotalItems:    4,
		TotalWeightKg: 500,
		TotalCrates:   25,
	}, c.Summary())

	require.NoError(t, c.Toggle("1"))
	assert.Equal(t, 1, c.Summary().LoadedCount)
	assert.Zero(t, c.Summary().TotalWeightKg)

	require.ErrorIs(t, c.Toggle("99"), errs.ErrObjectNotFound)
}

func TestChecklist_Confirm(t *testing.T) {
	t.Run("rejects empty checklist", func(t *testing.T) {
		c := newChecklist(t)

		_, err := c.Confirm()

		require.ErrorIs(t, err, loadcheck.ErrNothingLoaded)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("reports loaded items and clears toggles", func(t *testing.T) {
		c := newChecklist(t)
		require.NoError(t, c.SetMode(loadcheck.ModeUnloading))
		require.NoError(t, c.Toggle("2"))
		require.NoError(t, c.Toggle("4"))

		conf, err := c.Confirm()

		require.NoError(t, err)
		assert.Equal(t, loadcheck.ModeUnloading, conf.Mode)
		assert.True(t, conf.VehicleID.IsEqual(c.VehicleID()))
		require.Len(t, conf.Items, 2)
		assert.Equal(t, 3500, conf.Summary.TotalWeightKg)
		assert.Equal(t, 70, conf.Summary.TotalCrates)
		assert.Zero(t, c.Summary().LoadedCount)
	})
}

func TestChecklist_SetMode(t *testing.T) {
	c := newChecklist(t)

	require.ErrorIs(t, c.SetMode("sorting"), errs.ErrValueIsInvalid)
	assert.Equal(t, loadcheck.ModeLoading, c.Mode())
}

func TestChecklist_Clone(t *testing.T) {
	c := newChecklist(t)

	cp := c.Clone()
	require.NoError(t, cp.Toggle("1"))

	assert.Zero(t, c.Summary().LoadedCount)
	assert.Equal(t, 1, cp.Summary().LoadedCount)
}

func TestRestoreChecklist(t *testing.T) {
	c := newChecklist(t)
	require.NoError(t, c.SetMode(loadcheck.ModeUnloading))
	require.NoError(t, c.Toggle("3"))
	require.NoError(t, c.Toggle("1"))

	restored, err := loadcheck.RestoreChecklist(c.VehicleID(), c.Mode(), c.LoadedItemIDs())

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, restored.LoadedItemIDs())
	assert.Equal(t, c.Summary(), restored.Summary())
	assert.Equal(t, loadcheck.ModeUnloading, restored.Mode())

	_, err = loadcheck.RestoreChecklist(c.VehicleID(), loadcheck.ModeLoading, []string{"9"})
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
