package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		contains string
	}{
		{name: "valid", input: "shopper01"},
		{name: "exactly eight", input: "abcdefg1"},
		{name: "too short", input: "abc1", wantErr: true, contains: "at least 8 characters"},
		{name: "no letter", input: "12345678", wantErr: true, contains: "one letter"},
		{name: "no digit", input: "shoppers", wantErr: true, contains: "one number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "username", verr.Field)
			assert.Contains(t, verr.Error(), tt.contains)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{name: "valid", input: "Secret123"},
		{name: "too short", input: "Ab1", contains: "at least 8 characters"},
		{name: "no uppercase", input: "secret123", contains: "uppercase"},
		{name: "no digit", input: "SecretPass", contains: "one number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if tt.contains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("first_name", "Ann"))
	assert.NoError(t, ValidateName("first_name", "Mary Jane"))
	assert.Error(t, ValidateName("first_name", "   "))
	assert.Error(t, ValidateName("first_name", ""))

	err := ValidateName("last_name", "R2D2")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "last_name", verr.Field)
}

func TestRegisterParams_Validate(t *testing.T) {
	valid := RegisterParams{Username: "shopper01", Password: "Secret123", FirstName: "Ann", LastName: "Lee"}
	assert.NoError(t, valid.validate())

	bad := valid
	bad.LastName = "L33"
	assert.True(t, IsValidation(bad.validate()))
}
