package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tiara/internal/domains/guest/model"
)

func TestGuest_VIP(t *testing.T) {
	tests := []struct {
		name   string
		visits int
		want   bool
	}{
		{name: "no visits", visits: 0, want: false},
		{name: "at threshold", visits: 3, want: false},
		{name: "above threshold", visits: 4, want: true},
		{name: "well above threshold", visits: 12, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guest := model.Guest{Visits: tt.visits}

			assert.Equal(t, tt.want, guest.VIP())
		})
	}
}
