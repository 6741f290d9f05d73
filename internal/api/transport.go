package api

import (
	"context"
	"encoding/json"
)

// Invoker executes a logical API call and returns the unwrapped payload
// bytes. The live Client and the mock substitution layer both implement it;
// callers never branch on which one they hold.
type Invoker interface {
	Invoke(ctx context.Context, ep Endpoint) ([]byte, error)
}

// Call executes ep against inv and decodes the payload into T.
func Call[T any](ctx context.Context, inv Invoker, ep Endpoint) (T, error) {
	var out T
	payload, err := inv.Invoke(ctx, ep)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		var zero T
		return zero, &Error{Kind: KindDecoding, Err: err}
	}
	return out, nil
}

// Get performs an authenticated-by-default GET against path.
func Get[T any](ctx context.Context, inv Invoker, path string, query map[string]string) (T, error) {
	return Call[T](ctx, inv, Endpoint{Path: path, Method: MethodGet, Query: query, RequiresAuth: true})
}

// Post performs an authenticated-by-default POST against path.
func Post[T any](ctx context.Context, inv Invoker, path string, body any) (T, error) {
	return Call[T](ctx, inv, Endpoint{Path: path, Method: MethodPost, Body: body, RequiresAuth: true})
}

// Put performs an authenticated-by-default PUT against path.
func Put[T any](ctx context.Context, inv Invoker, path string, body any) (T, error) {
	return Call[T](ctx, inv, Endpoint{Path: path, Method: MethodPut, Body: body, RequiresAuth: true})
}

// Delete performs an authenticated-by-default DELETE against path.
func Delete[T any](ctx context.Context, inv Invoker, path string) (T, error) {
	return Call[T](ctx, inv, Endpoint{Path: path, Method: MethodDelete, RequiresAuth: true})
}
