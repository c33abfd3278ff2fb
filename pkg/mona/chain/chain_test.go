package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/mona/pkg/mona/try"
)

func TestStartAndResult_Ok(t *testing.T) {
	t.Parallel()
	c := Start(context.Background(), try.FromOk[error](5))

	if v, ok := c.Result().GetOk(); !ok || v != 5 {
		t.Fatalf("expected Ok(5), got %v", c.Result())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	c := FromValue(context.Background(), 7)

	if v, ok := c.Result().GetOk(); !ok || v != 7 {
		t.Fatalf("expected Ok(7), got %v", c.Result())
	}
	if c.Err() != nil {
		t.Fatalf("expected no error, got %v", c.Err())
	}
}

func TestThen_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	c := Start(context.Background(), try.FromErr[error, int](errors.New("boom")))

	called := false
	c = c.Then(func(ctx context.Context, v int) try.Try[error, int] {
		called = true
		return try.FromOk[error](v + 1)
	})

	if c.Err() == nil || c.Err().Error() != "boom" {
		t.Fatalf("expected Err(boom), got %v", c.Result())
	}
	if called {
		t.Fatalf("step should not run on a failed chain")
	}
}

func TestThen_OkPath(t *testing.T) {
	t.Parallel()
	c := FromValue(context.Background(), 3).
		Then(func(ctx context.Context, v int) try.Try[error, int] { return try.FromOk[error](v * 2) })

	if v, ok := c.Result().GetOk(); !ok || v != 6 {
		t.Fatalf("expected Ok(6), got %v", c.Result())
	}
}

func TestThen_NotAttemptedSkips(t *testing.T) {
	t.Parallel()
	c := Then(Start(context.Background(), try.NotAttempted[error, int]()),
		func(ctx context.Context, v int) try.Try[error, string] {
			t.Fatalf("step should not run")
			return try.NotAttempted[error, string]()
		})

	if c.Result().IsAttempted() {
		t.Fatalf("expected NotAttempted, got %v", c.Result())
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FromValue(ctx, 4).ThenTry(func(ctx context.Context, v int) (int, error) { return v * v, nil })
	if v, _ := ok.Result().GetOk(); v != 16 {
		t.Fatalf("expected Ok(16), got %v", ok.Result())
	}

	failed := FromValue(ctx, 10).ThenTry(func(ctx context.Context, v int) (int, error) {
		return 0, errors.New("try-error")
	})
	if failed.Err() == nil || failed.Err().Error() != "try-error" {
		t.Fatalf("expected Err(try-error), got %v", failed.Result())
	}
}

func TestThenTry_ChangesType(t *testing.T) {
	t.Parallel()
	c := ThenTry(FromValue(context.Background(), "42"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})

	if v, ok := c.Result().GetOk(); !ok || v != 42 {
		t.Fatalf("expected Ok(42), got %v", c.Result())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	c := Map(FromValue(context.Background(), 5), func(ctx context.Context, v int) string {
		return strconv.Itoa(v + 3)
	})

	if v, ok := c.Result().GetOk(); !ok || v != "8" {
		t.Fatalf("expected Ok(8), got %v", c.Result())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	positive := func(ctx context.Context, v int) (bool, string) { return v > 0, "must be positive" }

	if c := FromValue(context.Background(), 1).Validate(positive); c.Err() != nil {
		t.Fatalf("expected Ok, got %v", c.Result())
	}
	c := FromValue(context.Background(), -1).Validate(positive)
	if c.Err() == nil || c.Err().Error() != "must be positive" {
		t.Fatalf("expected Err(must be positive), got %v", c.Result())
	}
}

func TestCancelledContextStopsSteps(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := FromValue(ctx, 1).Map(func(ctx context.Context, v int) int {
		t.Fatalf("step should not run after cancellation")
		return v
	})

	if !errors.Is(c.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", c.Result())
	}
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	inc := func(ctx context.Context, v int) try.Try[error, int] { return try.FromOk[error](v + 1) }
	below := func(ctx context.Context, v int) bool { return v < 5 }

	c := FromValue(context.Background(), 0).RepeatUntil(inc, below)
	if v, _ := c.Result().GetOk(); v != 5 {
		t.Fatalf("expected Ok(5), got %v", c.Result())
	}

	c = FromValue(context.Background(), 10).RepeatUntil(inc, below)
	if v, _ := c.Result().GetOk(); v != 11 {
		t.Fatalf("expected one run to Ok(11), got %v", c.Result())
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	inc := func(ctx context.Context, v int) try.Try[error, int] { return try.FromOk[error](v + 1) }
	below := func(ctx context.Context, v int) bool { return v < 5 }

	c := FromValue(context.Background(), 10).While(inc, below)
	if v, _ := c.Result().GetOk(); v != 10 {
		t.Fatalf("expected no run, got %v", c.Result())
	}

	failAt3 := func(ctx context.Context, v int) try.Try[error, int] {
		if v == 3 {
			return try.FromErr[error, int](errors.New("three"))
		}
		return try.FromOk[error](v + 1)
	}
	c = FromValue(context.Background(), 0).While(failAt3, below)
	if c.Err() == nil || c.Err().Error() != "three" {
		t.Fatalf("expected Err(three), got %v", c.Result())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	var oks, errs int
	onOk := func(context.Context, int) { oks++ }
	onErr := func(context.Context, error) { errs++ }

	FromValue(context.Background(), 1).Ensure(onOk, onErr)
	Start(context.Background(), try.FromErr[error, int](errors.New("x"))).Ensure(onOk, onErr)
	Start(context.Background(), try.NotAttempted[error, int]()).Ensure(onOk, nil)

	if oks != 1 || errs != 1 {
		t.Fatalf("expected one call each, got ok=%d err=%d", oks, errs)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	failed := Start(ctx, try.FromErr[error, int](errors.New("fail")))
	cancelled := Start(ctx, try.FromErr[error, int](context.DeadlineExceeded))

	if v, _ := failed.Or(FromValue(ctx, 2)).Result().GetOk(); v != 2 {
		t.Fatalf("expected the Ok alternative")
	}
	if c := failed.Or(cancelled); !errors.Is(c.Err(), context.DeadlineExceeded) {
		t.Fatalf("expected cancellation to win over failure, got %v", c.Result())
	}
	if c := failed.Or(Start(ctx, try.NotAttempted[error, int]())); c.Err().Error() != "fail" {
		t.Fatalf("expected the failure, got %v", c.Result())
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if v, _ := FromValue(ctx, 1).And(FromValue(ctx, 2)).Result().GetOk(); v != 2 {
		t.Fatalf("expected the last chain")
	}
	c := FromValue(ctx, 1).And(Start(ctx, try.FromErr[error, int](errors.New("required"))), FromValue(ctx, 3))
	if c.Err() == nil || c.Err().Error() != "required" {
		t.Fatalf("expected Err(required), got %v", c.Result())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	describe := func(c Chain[int]) string {
		return Finally(c,
			func(ctx context.Context, v int) string { return "ok " + strconv.Itoa(v) },
			func(ctx context.Context, err error) string { return "err " + err.Error() },
			func(ctx context.Context, err error) string { return "cancel " + err.Error() })
	}

	cases := map[string]Chain[int]{
		"ok 1":                        FromValue(ctx, 1),
		"err bad":                     Start(ctx, try.FromErr[error, int](errors.New("bad"))),
		"cancel context canceled":     Start(ctx, try.FromErr[error, int](context.Canceled)),
		"cancel chain: not attempted": Start(ctx, try.NotAttempted[error, int]()),
	}
	for want, c := range cases {
		if got := describe(c); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}

	if v := FromValue(ctx, 2).Finally(
		func(ctx context.Context, v int) int { return v * 10 },
		func(context.Context, error) int { return -1 },
		func(context.Context, error) int { return -2 }); v != 20 {
		t.Fatalf("expected 20, got %d", v)
	}
}
