package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		err        error
		code       int
		message    string
		userFacing bool
	}{
		"machine not found": {fmt.Errorf("get x: %w", ErrMachineNotFound), NotFoundErrorCode, NotFound, true},
		"tool not found":    {fmt.Errorf("machine m: %w: T99", ErrToolNotFound), NotFoundErrorCode, NotFound, true},
		"tool in use":       {fmt.Errorf("machine m: %w: T3", ErrToolInUse), ConflictErrorCode, Conflict, true},
		"invariant":         {fmt.Errorf("machine m: %w", ErrInvariant), InternalServerErrorCode, InternalServerError, false},
		"unknown":           {errors.New("boom"), InternalServerErrorCode, InternalServerError, false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			appErr := Classify(tc.err)
			assert.Equal(t, tc.code, appErr.Code)
			assert.Equal(t, tc.message, appErr.Message)
			assert.Equal(t, tc.userFacing, appErr.IsUserFacing)
			assert.ErrorIs(t, appErr.Err, tc.err)
		})
	}
}

func TestClassify_KeepsAppError(t *testing.T) {
	original := NewAppError(BadRequestErrorCode, "Invalid tool number", errors.New("strconv"), true)
	assert.Same(t, original, Classify(fmt.Errorf("handler: %w", original)))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "not_found (code: 404)", NewAppError(NotFoundErrorCode, NotFound, nil, true).Error())
	assert.Equal(t, "conflict (code: 409): tool is in use",
		NewAppError(ConflictErrorCode, Conflict, ErrToolInUse, true).Error())
}
