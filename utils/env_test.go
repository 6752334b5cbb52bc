package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HOSTEL_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOrDefault("HOSTEL_TEST_KEY", "fallback"))

	t.Setenv("HOSTEL_TEST_KEY", "   ")
	assert.Equal(t, "fallback", EnvOrDefault("HOSTEL_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", EnvOrDefault("HOSTEL_TEST_MISSING", "fallback"))
}
