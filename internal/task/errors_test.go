package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExhaustedErrorMessage(t *testing.T) {
	err := &ExhaustedError{Index: 4, Attempts: 5, Last: errService}

	assert.Equal(t, "item 4: 5 attempts exhausted: service unavailable", err.Error())
	assert.ErrorIs(t, err, errService)
}

func TestRunErrorMessageAndUnwrap(t *testing.T) {
	runErr := &RunError{
		Total: 7,
		Failures: []*ExhaustedError{
			{Index: 1, Attempts: 5, Last: errService},
			{Index: 4, Attempts: 5, Last: errService},
		},
	}

	assert.Equal(t, "extraction failed for 2 of 7 items (positions 1, 4)", runErr.Error())
	assert.Equal(t, []int{1, 4}, runErr.FailedIndices())

	// The aggregate unwraps to each per-item failure and its cause.
	require.True(t, errors.Is(runErr, errService))
	var exhausted *ExhaustedError
	require.True(t, errors.As(runErr, &exhausted))
	assert.Equal(t, 1, exhausted.Index)
}
