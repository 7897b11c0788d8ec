// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithoutParamPollution(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  url.Values
	}{
		{
			name:  "repeated sort keeps the last value",
			query: "sort=duration&sort=price",
			want:  url.Values{"sort": {"price"}},
		},
		{
			name:  "whitelisted field keeps every value",
			query: "duration=5&duration=9",
			want:  url.Values{"duration": {"5", "9"}},
		},
		{
			name:  "whitelisted comparison keeps every value",
			query: "price[gte]=100&price[gte]=200&limit=3&limit=10",
			want:  url.Values{"price[gte]": {"100", "200"}, "limit": {"10"}},
		},
		{
			name:  "single values untouched",
			query: "fields=name,price&page=2",
			want:  url.Values{"fields": {"name,price"}, "page": {"2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got url.Values
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query()
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tours?"+tt.query, nil)
			withoutParamPollution(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithEscapedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "strings are escaped at every depth",
			body: `{"name":"<script>alert(1)</script>","images":["a<b"],"startLocation":{"description":"Tom & Jerry"}}`,
			want: `{"images":["a&lt;b"],"name":"&lt;script&gt;alert(1)&lt;/script&gt;","startLocation":{"description":"Tom &amp; Jerry"}}`,
		},
		{
			name: "numbers keep their precision",
			body: `{"price":1997.5,"duration":7,"secretTour":false}`,
			want: `{"duration":7,"price":1997.5,"secretTour":false}`,
		},
		{
			name: "invalid json passes through",
			body: `{"name":`,
			want: `{"name":`,
		},
		{
			name: "empty body passes through",
			body: ``,
			want: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				got = string(data)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/tours", strings.NewReader(tt.body))
			withEscapedBody(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithEscapedBody_KeepsReadError(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	rr := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rr, req.Body, 16)

	withEscapedBody(next).ServeHTTP(rr, req)

	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxBytesErr)
}
