package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidInputError("ING_1000", "invalid input", nil),
			wantErr: NewInvalidInputError("ING_1000", "invalid input", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("OUT_9000", nil)),
			wantErr: NewInternalError("OUT_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
				assert.Equal(t, tt.wantErr.ExitCode, gotErr.ExitCode, "ExitCode mismatch")
			}
		})
	}
}

func TestServiceError_ErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New(`strconv.Atoi: parsing "x": invalid syntax`)

	inputErr := NewInvalidInputError("ING_1002", "row 3: invalid Pageviews", cause)
	assert.Equal(t, `ING_1002: row 3: invalid Pageviews: strconv.Atoi: parsing "x": invalid syntax`, inputErr.Error())
	assert.ErrorIs(t, inputErr, cause)
	assert.Equal(t, ExitCodeInvalidInput, inputErr.ExitCode)

	internalErr := NewInternalError("OUT_9000", cause)
	assert.Equal(t, "OUT_9000: internal error", internalErr.Error())
	assert.True(t, internalErr.IsInternalError())
	assert.Equal(t, ExitCodeInternal, internalErr.ExitCode)
}
