package api

import (
	"bytes"
	"encoding/json"
)

// Envelope is the optional success/data/error wrapper used by the API.
// Servers emit it; the client unwraps it transparently.
type Envelope[T any] struct {
	Success bool      `json:"success"`
	Data    *T        `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// OK wraps a payload in a successful envelope.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data}
}

// Fail wraps an error in an unsuccessful envelope.
func Fail(apiErr *APIError) Envelope[struct{}] {
	return Envelope[struct{}]{Success: false, Error: apiErr}
}

// wireEnvelope is the decode-side view. The Success pointer distinguishes a
// real envelope from a payload that merely decodes as a JSON object.
type wireEnvelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

var jsonNull = []byte("null")

// unwrapEnvelope extracts the payload bytes from body. Bodies without a
// success field are assumed to already be the typed payload.
func unwrapEnvelope(body []byte) ([]byte, error) {
	var env wireEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Success == nil {
		return body, nil
	}
	if *env.Success && len(env.Data) > 0 && !bytes.Equal(env.Data, jsonNull) {
		return env.Data, nil
	}
	if env.Error != nil {
		return nil, &Error{Kind: KindAPI, Detail: env.Error}
	}
	return nil, &Error{Kind: KindInvalidResponse}
}

// envelopeError extracts the error object from an envelope body, if present.
func envelopeError(body []byte) *APIError {
	var env wireEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	return env.Error
}
