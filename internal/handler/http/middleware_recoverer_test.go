// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRecoverer(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("tour index out of range")
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.withRecoverer(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tours", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	env, _ := decodeEnvelope(t, rr.Body)
	assert.Equal(t, models.StatusError, env.Status)
	assert.Equal(t, "Something went very wrong!", env.Message)
	assert.Contains(t, env.Error, "tour index out of range")
	require.GreaterOrEqual(t, len(env.Stack), 3)
	assert.Equal(t, "handler panicked: tour index out of range", env.Stack[0])
	assert.Equal(t, "handler panicked", env.Stack[1])
	assert.True(t, strings.HasPrefix(env.Stack[2], "goroutine "), env.Stack[2])
}

func TestWithRecoverer_ProductionHidesStack(t *testing.T) {
	h := newTestHandler()
	h.app.Mode = config.ModeProduction
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("tour index out of range")
	})

	rr := httptest.NewRecorder()
	h.withRecoverer(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tours", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	env, _ := decodeEnvelope(t, rr.Body)
	assert.Equal(t, "Something went very wrong!", env.Message)
	assert.Empty(t, env.Error)
	assert.Empty(t, env.Stack)
}

func TestWithRecoverer_AbortHandlerPropagates(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecoverer(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
