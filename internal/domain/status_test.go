package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next_FullChain(t *testing.T) {
	s := StatusPending

	for _, want := range []Status{StatusConfirmed, StatusPreparing, StatusOccupied, StatusCompleted} {
		next, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, want, next)
		s = next
	}
}

func TestStatus_Next_TerminalRejected(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		_, err := s.Next()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestStatus_CanTransition_CancelOnlyFromPending(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusCancelled))

	for _, s := range []Status{StatusConfirmed, StatusPreparing, StatusOccupied, StatusCompleted, StatusCancelled} {
		assert.False(t, s.CanTransition(StatusCancelled), "from %s", s)
	}
}

func TestStatus_CanTransition_NoSkipping(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusConfirmed))
	assert.False(t, StatusPending.CanTransition(StatusPreparing))
	assert.False(t, StatusPending.CanTransition(StatusOccupied))
	assert.False(t, StatusConfirmed.CanTransition(StatusPending))
	assert.False(t, StatusOccupied.CanTransition(StatusConfirmed))
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	for _, s := range LiveStatuses {
		assert.False(t, s.IsTerminal(), "status %s", s)
	}
}

func TestStatus_IsLive(t *testing.T) {
	for _, s := range LiveStatuses {
		assert.True(t, s.IsLive(), "status %s", s)
	}
	assert.False(t, StatusCompleted.IsLive())
	assert.False(t, StatusCancelled.IsLive())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("checked_in").Valid())
	assert.False(t, Status("").Valid())
}
