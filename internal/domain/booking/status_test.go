package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	tests := []struct {
		in   Status
		want bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCancelled, true},
		{StatusCompleted, true},
		{"pending", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Valid())
		})
	}
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentPix.Valid())
	assert.True(t, PaymentCreditCard.Valid())
	assert.False(t, PaymentMethod("Boleto").Valid())
	assert.Equal(t, StatusPending, InitialStatus())
}
