package model_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"tiara/internal/domains/reservation/model"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPendingPayment, to: model.StatusConfirmed, want: true},
		{name: "confirmed to seated", from: model.StatusConfirmed, to: model.StatusSeated, want: true},
		{name: "seated to completed", from: model.StatusSeated, to: model.StatusCompleted, want: true},
		{name: "pending to cancelled", from: model.StatusPendingPayment, to: model.StatusCancelled, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "seated to cancelled", from: model.StatusSeated, to: model.StatusCancelled, want: true},
		{name: "pending cannot skip to seated", from: model.StatusPendingPayment, to: model.StatusSeated, want: false},
		{name: "pending cannot skip to completed", from: model.StatusPendingPayment, to: model.StatusCompleted, want: false},
		{name: "confirmed cannot go back to pending", from: model.StatusConfirmed, to: model.StatusPendingPayment, want: false},
		{name: "completed is terminal", from: model.StatusCompleted, to: model.StatusCancelled, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, want: false},
		{name: "no self transition", from: model.StatusConfirmed, to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, model.StatusCompleted.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
	assert.False(t, model.StatusPendingPayment.Terminal())
	assert.False(t, model.StatusConfirmed.Terminal())
	assert.False(t, model.StatusSeated.Terminal())
	assert.False(t, model.Status("unknown").Terminal())
}

func TestParseStatus(t *testing.T) {
	status, ok := model.ParseStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, model.StatusConfirmed, status)

	_, ok = model.ParseStatus("Confirmed")
	assert.False(t, ok)

	_, ok = model.ParseStatus("archived")
	assert.False(t, ok)
}

func TestValidTimeSlot(t *testing.T) {
	for _, slot := range model.TimeSlots {
		assert.True(t, model.ValidTimeSlot(slot))
	}

	assert.False(t, model.ValidTimeSlot("16:00"))
	assert.False(t, model.ValidTimeSlot("23:00"))
	assert.False(t, model.ValidTimeSlot("19:30"))
	assert.False(t, model.ValidTimeSlot(""))
}

func TestNewPaymentReference(t *testing.T) {
	pattern := regexp.MustCompile(`^EET-\d{13,}-[0-9a-f]{8}$`)

	first := model.NewPaymentReference()
	second := model.NewPaymentReference()

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}
