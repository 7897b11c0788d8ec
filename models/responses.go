// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status values of the response envelope.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the JSON body of every API response.
type Envelope struct {
	// Status is "success", "fail" for 4xx errors or "error" otherwise.
	Status string `json:"status"`

	// RequestedAt is the RFC 3339 time the request was received.
	// Set on list responses only.
	RequestedAt string `json:"requestedAt,omitempty"`

	// Results is the number of documents in a list response.
	Results *int `json:"results,omitempty"`

	// Token is the signed JWT returned by authentication endpoints.
	Token string `json:"token,omitempty"`

	// Message is the human-readable error or confirmation message.
	Message string `json:"message,omitempty"`

	// Data holds the payload, keyed by resource name.
	Data any `json:"data,omitempty"`

	// Error carries the internal error detail in development mode.
	Error string `json:"error,omitempty"`

	// Stack lists the wrapped error chain, outermost first, followed by the
	// goroutine stack of a recovered panic. Development mode only.
	Stack []string `json:"stack,omitempty"`
}

// ListEnvelope builds a success envelope for a list of documents.
func ListEnvelope(key string, items any, count int, requestedAt string) Envelope {
	return Envelope{
		Status:      StatusSuccess,
		RequestedAt: requestedAt,
		Results:     &count,
		Data:        map[string]any{key: items},
	}
}

// DataEnvelope builds a success envelope with a single payload.
func DataEnvelope(key string, item any) Envelope {
	return Envelope{Status: StatusSuccess, Data: map[string]any{key: item}}
}
