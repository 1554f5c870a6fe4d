package brio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "5", Number(5).String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "-0.25", Number(-0.25).String())
	assert.Equal(t, "+Inf", Number(math.Inf(1)).String())
	assert.Equal(t, "true", Boolean(true).String())
	assert.Equal(t, "false", Boolean(false).String())
	assert.Equal(t, "no value", NoValue{}.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "boolean", KindBoolean.String())
	assert.Equal(t, "no value", KindNoValue.String())
}
