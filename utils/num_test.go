package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeMoney(t *testing.T) {
	assert.Equal(t, 1500.0, SafeMoney(1500))
	assert.Equal(t, -400.0, SafeMoney(-400))
	assert.Zero(t, SafeMoney(math.NaN()))
	assert.Zero(t, SafeMoney(math.Inf(1)))
	assert.Zero(t, SafeMoney(math.Inf(-1)))
}

func TestParseMoney(t *testing.T) {
	assert.Equal(t, 1500.0, ParseMoney("1500"))
	assert.Equal(t, 1500.0, ParseMoney("1,500"))
	assert.Equal(t, 1500.5, ParseMoney("  1,500.50 "))

	// unparseable input degrades to zero, never an error
	assert.Zero(t, ParseMoney(""))
	assert.Zero(t, ParseMoney("abc"))
	assert.Zero(t, ParseMoney("฿1500"))
}
