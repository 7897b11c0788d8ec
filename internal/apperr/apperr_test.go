// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Status(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{http.StatusBadRequest, StatusFail},
		{http.StatusUnauthorized, StatusFail},
		{http.StatusNotFound, StatusFail},
		{http.StatusTooManyRequests, StatusFail},
		{http.StatusInternalServerError, StatusError},
		{http.StatusBadGateway, StatusError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "x").Status())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("no rows")
	err := fmt.Errorf("handler: %w", Wrap(http.StatusNotFound, "No document found with that ID", cause))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "No document found with that ID: no rows", appErr.Error())
	assert.Equal(t, "Not logged in", New(http.StatusUnauthorized, "Not logged in").Error())

	_, ok = As(cause)
	assert.False(t, ok)
}
