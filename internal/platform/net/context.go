// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyChannel ctxKey = "channel"
	keySender  ctxKey = "sender"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, channel string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if channel != "" {
		ctx = context.WithValue(ctx, keyChannel, channel)
	}
	return ctx
}

// WithSender annotates context with the chat sender identity
func WithSender(ctx context.Context, sender string) context.Context {
	if sender != "" {
		ctx = context.WithValue(ctx, keySender, sender)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// Channel returns the chat channel on the context if present
func Channel(ctx context.Context) string {
	if v, ok := ctx.Value(keyChannel).(string); ok {
		return v
	}
	return ""
}

// Sender returns the chat sender on the context if present
func Sender(ctx context.Context) string {
	if v, ok := ctx.Value(keySender).(string); ok {
		return v
	}
	return ""
}
