package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	OutputKey    contextKey = "output"
)

// SetRequestIDContext tags every API call made while serving one page.
func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestIDFromContext returns the page request id, or a fresh one.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func SetOutputContext(ctx context.Context, output string) context.Context {
	return context.WithValue(ctx, OutputKey, output)
}

// GetOutputFromContext returns the requested render format, default "table".
func GetOutputFromContext(ctx context.Context) string {
	if output, ok := ctx.Value(OutputKey).(string); ok && output != "" {
		return output
	}
	return "table"
}
