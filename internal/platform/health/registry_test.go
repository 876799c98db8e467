package health_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/health"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
	"github.com/jsamuelsen11/go-ediscovery-transforms/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Outcomes(t *testing.T) {
	t.Parallel()

	standby := fmt.Errorf("vault: standby node: %w", ports.ErrDegraded)
	refused := errors.New("dial tcp 10.0.0.7:443: connection refused")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []ports.HealthChecker
		want     map[string]error
	}{
		{
			name:     "nothing registered",
			checkers: func(*testing.T) []ports.HealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all collaborators up",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "vault", nil), checker(t, "ediscovery-api", nil)}
			},
			want: map[string]error{"vault": nil, "ediscovery-api": nil},
		},
		{
			name: "each outcome kept apart",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "vault", standby), checker(t, "ediscovery-api", refused)}
			},
			want: map[string]error{"vault": standby, "ediscovery-api": refused},
		},
		{
			name: "later registration wins",
			checkers: func(t *testing.T) []ports.HealthChecker {
				return []ports.HealthChecker{checker(t, "kms", nil), checker(t, "kms", refused)}
			},
			want: map[string]error{"kms": refused},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			assert.Equal(t, tt.want, r.CheckAll(context.Background()))
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("kms")
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	}).Maybe()

	r := health.New()
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["kms"], context.Canceled)
}

func TestCheckAll_SlowCheckFailsAlone(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("kms")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)
	r.Register(checker(t, "ediscovery-api", nil))

	start := time.Now()
	results := r.CheckAll(context.Background())

	assert.Less(t, time.Since(start), 150*time.Millisecond)
	assert.ErrorIs(t, results["kms"], context.DeadlineExceeded)
	assert.NoError(t, results["ediscovery-api"])
}

func TestCheckAll_PanickingCheckFailsAlone(t *testing.T) {
	t.Parallel()

	broken := mocks.NewMockHealthChecker(t)
	broken.EXPECT().Name().Return("vault")
	broken.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
		panic("nil sys client")
	})

	r := health.New()
	r.Register(broken)
	r.Register(checker(t, "ediscovery-api", nil))

	results := r.CheckAll(context.Background())

	require.Error(t, results["vault"])
	assert.Contains(t, results["vault"].Error(), "nil sys client")
	assert.NoError(t, results["ediscovery-api"])
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return(fmt.Sprintf("checker-%d", i)).Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 25)
}
