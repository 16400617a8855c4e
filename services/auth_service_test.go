package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Biometrics are validated before any lookup, same rule as profile
// updates.
func TestRegisterRejectsNegativeBiometrics(t *testing.T) {
	svc := NewAuthService()

	for _, req := range []RegisterRequest{
		{Username: "u", Email: "u@example.com", Password: "secret1", WeightKg: -70},
		{Username: "u", Email: "u@example.com", Password: "secret1", HeightCm: -170},
		{Username: "u", Email: "u@example.com", Password: "secret1", Age: -1},
	} {
		_, _, err := svc.Register(req)
		assert.ErrorContains(t, err, "negative")
	}
}
