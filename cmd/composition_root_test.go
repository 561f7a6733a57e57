package cmd

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/commands"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompositionRoot_MemoryBackend(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	root, err := NewCompositionRoot(ctx, cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, root.Close()) })

	res, err := root.CreateGetDashboardQueryHandler().Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, res.KPIs.TotalFleet, "an empty store is seeded")
	assert.NotNil(t, root.expirer)
	assert.NotNil(t, root.CreateHTTPServer())

	jm := root.CreateJobManager()
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestCompositionRoot_RedisSessions(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	root, err := NewCompositionRoot(ctx, cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, root.Close()) })

	assert.Nil(t, root.expirer)

	_, err = root.CreateStartAssignmentCommandHandler().Handle(ctx, commands.NewStartAssignmentCommand())
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 1)
}

func TestCompositionRoot_RedisUnreachable(t *testing.T) {
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	_, err = NewCompositionRoot(context.Background(), cfg, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect redis")
}
