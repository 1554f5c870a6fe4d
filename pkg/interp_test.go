package brio

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreterRunString(t *testing.T) {
	interp := NewInterpreter()

	result, err := interp.RunString("x = 5; while (x < 10) x = x + 1; x;")
	require.NoError(t, err)
	assert.Equal(t, Number(10), result)

	result, err = interp.RunString("max(5, 10) + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, Number(16), result)

	_, err = interp.RunString("y;")
	var undefined *UndefinedVariableError
	require.ErrorAs(t, err, &undefined)
}

func TestInterpreterRunFromReader(t *testing.T) {
	result, err := NewInterpreter().RunFromReader(strings.NewReader("1 + 1"))
	require.NoError(t, err)
	assert.Equal(t, Number(2), result)
}

func TestInterpreterRunFile(t *testing.T) {
	result, err := NewInterpreter().Run(filepath.Join("testdata", "sum.brio"))
	require.NoError(t, err)
	assert.Equal(t, Number(10), result)
}

func TestInterpreterRunMissingFile(t *testing.T) {
	_, err := NewInterpreter().Run(filepath.Join("testdata", "missing.brio"))
	assert.Error(t, err)
}

// Each RunString gets a fresh store; EvalString shares the caller's.
func TestInterpreterStoreScoping(t *testing.T) {
	interp := NewInterpreter()

	_, err := interp.RunString("x = 2;")
	require.NoError(t, err)

	_, err = interp.RunString("x;")
	var undefined *UndefinedVariableError
	require.ErrorAs(t, err, &undefined)

	store := NewStore()
	_, err = interp.EvalString("x = 2;", store)
	require.NoError(t, err)

	result, err := interp.EvalString("x * 21", store)
	require.NoError(t, err)
	assert.Equal(t, Number(42), result)
}

func TestInterpreterStepLimit(t *testing.T) {
	interp := NewInterpreter()
	interp.SetStepLimit(1000)

	_, err := interp.RunString("while (true) 1;")

	var limit *StepLimitError
	require.ErrorAs(t, err, &limit)
}
