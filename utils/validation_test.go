package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+15551234567",
		"+44 20 7946 0958",
		"(555) 123-4567",
		"5551234567",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"not-a-phone",
		"+0123456",
		"1",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}
