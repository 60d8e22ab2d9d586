package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyBarcode   contextKey = "barcode"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithBarcode adds the product barcode being processed to the context
func WithBarcode(ctx context.Context, barcode string) context.Context {
	return context.WithValue(ctx, ContextKeyBarcode, barcode)
}

// BarcodeFromContext extracts the product barcode from context
func BarcodeFromContext(ctx context.Context) string {
	if barcode, ok := ctx.Value(ContextKeyBarcode).(string); ok {
		return barcode
	}
	return ""
}
