package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusQuoted.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("ARCHIVED").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusQuoted.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusQuoted.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))

	assert.False(t, StatusConfirmed.CanTransitionTo(StatusQuoted))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusQuoted))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusQuoted.CanTransitionTo(StatusQuoted))
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusQuoted.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}
