// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := wrapResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		header     int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "nothing written", wantStatus: http.StatusOK},
		{name: "implicit ok", writes: []string{"ab", "cde"}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "explicit status", header: http.StatusBadRequest, writes: []string{`{"status":"fail"}`}, wantStatus: http.StatusBadRequest, wantSize: 17},
		{name: "no content", header: http.StatusNoContent, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := wrapResponseWriter(rr)

			if tt.header != 0 {
				w.WriteHeader(tt.header)
			}
			for _, s := range tt.writes {
				_, err := w.Write([]byte(s))
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantSize, w.size)
		})
	}
}

func TestWrapResponseWriter_Idempotent(t *testing.T) {
	w := wrapResponseWriter(httptest.NewRecorder())

	assert.Same(t, w, wrapResponseWriter(w))
	assert.NotNil(t, w.Unwrap())
}
