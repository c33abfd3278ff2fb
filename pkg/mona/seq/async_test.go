package seq

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/mona/pkg/mona/option"
)

func TestTraverseAsync(t *testing.T) {
	t.Parallel()
	ctx := WithWorkers(context.Background(), 2)

	got, err := TraverseAsync(ctx, []string{"3", "1", "2"},
		func(_ context.Context, s string) (option.Option[int], error) {
			return parse(s), nil
		})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, got.Value(), "results keep input order")
}

func TestTraverseAsync_NoneWins(t *testing.T) {
	t.Parallel()
	got, err := TraverseAsync(context.Background(), []string{"1", "x", "3"},
		func(_ context.Context, s string) (option.Option[int], error) {
			return parse(s), nil
		})
	require.NoError(t, err)
	assert.True(t, got.IsNone())
}

func TestTraverseAsync_ErrorIsUnresolved(t *testing.T) {
	t.Parallel()
	errBoom := errors.New("boom")

	got, err := TraverseAsync(context.Background(), []int{1, 2, 3},
		func(_ context.Context, n int) (option.Option[int], error) {
			if n == 2 {
				return option.None[int](), errBoom
			}
			return option.Some(n), nil
		})
	assert.ErrorIs(t, err, errBoom)
	assert.True(t, got.IsNone())
}

func TestTraverseAsync_RespectsWorkerLimit(t *testing.T) {
	t.Parallel()
	ctx := WithWorkers(context.Background(), 2)
	var running, peak atomic.Int32

	_, err := TraverseAsync(ctx, make([]int, 10),
		func(_ context.Context, n int) (option.Option[string], error) {
			cur := running.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return option.Some(strconv.Itoa(n)), nil
		})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestTraverseAsync_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := TraverseAsync(ctx, []int{1},
		func(_ context.Context, n int) (option.Option[int], error) {
			return option.Some(n), nil
		})
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, got.IsNone())
}

func TestWorkers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, Workers(context.Background(), 4))
	assert.Equal(t, 2, Workers(WithWorkers(context.Background(), 2), 4))
	assert.Equal(t, 4, Workers(WithWorkers(context.Background(), 0), 4))
}
