package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidatePasswordRule(t *testing.T) {
	assert.NoError(t, ValidatePasswordRule("abcd1234"))
	assert.NoError(t, ValidatePasswordRule("A1b2C3d4e5"))

	// kurang dari 8
	assert.Error(t, ValidatePasswordRule("ab1"))
	// huruf semua
	assert.Error(t, ValidatePasswordRule("abcdefgh"))
	// angka semua
	assert.Error(t, ValidatePasswordRule("12345678"))
	// ada karakter di luar alnum
	assert.Error(t, ValidatePasswordRule("abcd 1234"))
}
