package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gravity/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	require.NoError(t, recorder.Close())
}

func TestRecorder_Lifecycle(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	gotCtx, fresh := recorder.Record(ctx, "https://lists.example.com/hosts")
	assert.Equal(t, ctx, gotCtx)
	fresh.Log("Update found, downloading...")
	fresh.Complete(nil)

	_, cached := recorder.Record(ctx, "https://other.example.com/hosts")
	cached.Log("No update!")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(ctx, "https://broken.example.com/hosts")
	failed.Complete(errors.New("connection refused"))

	require.NoError(t, recorder.Close())
}
