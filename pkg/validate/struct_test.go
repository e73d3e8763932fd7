package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Phone  string `json:"phone" validate:"required,phone"`
	Amount string `json:"amount" validate:"required,amount"`
	Kind   string `json:"kind" validate:"required,oneof=EARN REDEEM"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name     string
		input    sample
		expected map[string]string
	}{
		{
			name:     "Valid",
			input:    sample{Phone: "+998 (90) 123-45-67", Amount: "10.000,50", Kind: "EARN"},
			expected: nil,
		},
		{
			name:  "Missing fields",
			input: sample{},
			expected: map[string]string{
				"phone":  "This field is required",
				"amount": "This field is required",
				"kind":   "This field is required",
			},
		},
		{
			name:  "Bad values",
			input: sample{Phone: "12ab", Amount: "ten", Kind: "GIFT"},
			expected: map[string]string{
				"phone":  "Invalid phone number",
				"amount": "amount must be a number",
				"kind":   "Must be one of: EARN REDEEM",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Struct(tt.input))
		})
	}
}
