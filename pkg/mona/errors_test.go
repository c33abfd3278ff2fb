package mona

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Parallel()
	err := error(&Error{Kind: ErrTrapState, Op: "either.Match"})

	assert.EqualError(t, err, "either.Match: uninitialized either (bottom state)")
	assert.ErrorIs(t, err, ErrTrapState)
	assert.NotErrorIs(t, err, ErrValueAbsent)

	var merr *Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "either.Match", merr.Op)
}

func TestCatch(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Catch(func() {}))
	assert.ErrorIs(t, Catch(func() { Fail(ErrUnwrapEmpty, "op") }), ErrUnwrapEmpty)
}

func TestCatch_ForeignPanicPropagates(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "boom", func() {
		_ = Catch(func() { panic("boom") })
	})
}

func TestRecover_JoinsWithExistingError(t *testing.T) {
	t.Parallel()
	errFirst := errors.New("first")
	run := func() (err error) {
		defer Recover(&err)
		err = errFirst
		Fail(ErrResultAbsent, "op")
		return err
	}

	err := run()
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, ErrResultAbsent)
}
