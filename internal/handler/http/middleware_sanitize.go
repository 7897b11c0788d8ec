// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-tours/internal/logger"
)

// repeatableParams may appear several times in a query string. Any other
// repeated key keeps only its last value.
var repeatableParams = []string{
	"duration",
	"ratingsQuantity",
	"ratingsAverage",
	"maxGroupSize",
	"difficulty",
	"price",
}

// withoutParamPollution collapses repeated query parameters.
func withoutParamPollution(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			query := r.URL.Query()
			changed := false
			for key, values := range query {
				if len(values) < 2 || slices.Contains(repeatableParams, baseParam(key)) {
					continue
				}
				query[key] = values[len(values)-1:]
				changed = true
			}
			if changed {
				r.URL.RawQuery = query.Encode()
			}
		}
		next.ServeHTTP(w, r)
	})
}

// baseParam strips a trailing "[op]" from a query key.
func baseParam(key string) string {
	if i := strings.IndexByte(key, '['); i > 0 {
		return key[:i]
	}
	return key
}

// withEscapedBody HTML-escapes every string in a JSON request body. Bodies
// that are not valid JSON pass through unchanged so the handler reports the
// decoding error itself.
func withEscapedBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		if err != nil {
			// a *http.MaxBytesError surfaces again on the handler's own read
			r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), errReader{err}))
			next.ServeHTTP(w, r)
			return
		}

		escaped, err := escapeJSON(raw)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("request body left unescaped")
			escaped = raw
		}

		r.Body = io.NopCloser(bytes.NewReader(escaped))
		r.ContentLength = int64(len(escaped))
		next.ServeHTTP(w, r)
	})
}

func escapeJSON(raw []byte) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("error decoding body: %w", err)
	}

	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(escapeValue(v)); err != nil {
		return nil, fmt.Errorf("error encoding body: %w", err)
	}
	return bytes.TrimSuffix(out.Bytes(), []byte("\n")), nil
}

func escapeValue(v any) any {
	switch t := v.(type) {
	case string:
		return html.EscapeString(t)
	case []any:
		for i := range t {
			t[i] = escapeValue(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = escapeValue(t[k])
		}
		return t
	default:
		return v
	}
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

