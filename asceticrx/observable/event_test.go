package observable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/option"
)

func TestEvent_IsStopEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    Event[bool]
		expected bool
	}{
		{name: "next", event: Next(true), expected: false},
		{name: "error", event: Error[bool](errors.New("boom")), expected: true},
		{name: "completed", event: Completed[bool](), expected: true},
		{name: "zero value", event: Event[bool]{}, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.IsStopEvent())
		})
	}
}

func TestEvent_Accessors(t *testing.T) {
	t.Run("next", func(t *testing.T) {
		e := Next(42)
		assert.Equal(t, KindNext, e.Kind())
		assert.Equal(t, option.Some(42), e.Value())
		assert.NoError(t, e.Err())
	})

	t.Run("error", func(t *testing.T) {
		boom := errors.New("boom")
		e := Error[int](boom)
		assert.Equal(t, KindError, e.Kind())
		assert.True(t, e.Value().IsNothing())
		assert.Same(t, boom, e.Err())
	})

	t.Run("error without error", func(t *testing.T) {
		e := Error[int](nil)
		assert.True(t, e.IsStopEvent())
		assert.ErrorIs(t, e.Err(), ErrNilError)
	})

	t.Run("completed", func(t *testing.T) {
		e := Completed[int]()
		assert.Equal(t, KindCompleted, e.Kind())
		assert.True(t, e.Value().IsNothing())
		assert.NoError(t, e.Err())
	})
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "next(true)", Next(true).String())
	assert.Equal(t, "error(boom)", Error[bool](errors.New("boom")).String())
	assert.Equal(t, "completed", Completed[bool]().String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
