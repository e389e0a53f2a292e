package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 25.0, Round2(100.0/4))
	assert.Equal(t, 33.33, Round2(100.0/3))
	assert.Equal(t, 0.01, Round2(0.005))
	assert.Equal(t, 0.0, Round2(0.004))
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 0.0001, Round4(0.00005))
	assert.Equal(t, 0.3333, Round4(1.0/3))
}

func TestMul(t *testing.T) {
	assert.Equal(t, 200.0, Mul(2, 100))
	assert.Equal(t, 90.0, Mul(1, 90))
	assert.Equal(t, 0.03, Mul(0.0003, 100))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 7.5, Percent(25.0, 30))
	assert.Equal(t, 3.33, Percent(33.33, 10))
}
