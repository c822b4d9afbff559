// Package api defines the wire-level contract shared by the lesson admin
// backend and its clients: the response envelope, the unified error shape,
// pagination, and the per-resource request/response types.
package api

import "encoding/json"

// Envelope is the standard response wrapper returned by every endpoint.
// T is the payload type carried in Data.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the envelope signals business success. The backend
// emits both 0 and 200 for success depending on the endpoint's age, so
// both are accepted here and nowhere else.
func (e *Envelope[T]) OK() bool {
	return e.Code == 0 || e.Code == 200
}

// RawEnvelope is an envelope whose payload has not been decoded yet.
// The request layer returns this shape; services decode Data into their
// own types.
type RawEnvelope = Envelope[json.RawMessage]
