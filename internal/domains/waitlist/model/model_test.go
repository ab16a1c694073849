package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tiara/internal/domains/waitlist/model"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "local eleven digit number", phone: "08012345678", want: "2348012345678"},
		{name: "formatted local number", phone: "0801 234 5678", want: "2348012345678"},
		{name: "already international", phone: "+2348012345678", want: "2348012345678"},
		{name: "punctuation stripped", phone: "(080) 123-45678", want: "2348012345678"},
		{name: "short number untouched", phone: "12345", want: "12345"},
		{name: "eleven digits without leading zero untouched", phone: "18012345678", want: "18012345678"},
		{name: "empty", phone: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizePhone(tt.phone))
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := model.WhatsAppLink("Ada", "08012345678", "2026-09-15")

	assert.Contains(t, link, "https://wa.me/2348012345678?text=")
	assert.Contains(t, link, "Hello+Ada%2C+good+news+from+Epicurean+Escape%21")
	assert.Contains(t, link, "2026-09-15")
}
