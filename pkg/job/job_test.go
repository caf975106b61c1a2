package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/pkg/job"
)

func TestService_RunsJobsUntilCancelled(t *testing.T) {
	t.Parallel()

	var ok, failing, panicking atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().
		RegisterJob("ok", 5*time.Millisecond, func(context.Context) error {
			ok.Add(1)
			return nil
		}).
		RegisterJob("failing", 5*time.Millisecond, func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}).
		RegisterJob("panicking", 5*time.Millisecond, func(context.Context) error {
			panicking.Add(1)
			panic("boom")
		}).
		TryRegisterJob(false, "disabled", 5*time.Millisecond, func(context.Context) error {
			t.Error("disabled job must not run")
			return nil
		}).
		Start(ctx)

	require.Eventually(t, func() bool {
		return ok.Load() >= 2 && failing.Load() >= 2 && panicking.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()
}
