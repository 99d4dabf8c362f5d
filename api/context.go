package api

import (
	"context"
)

type keyType string

const (
	requestIDKey keyType = "requestID"
	operatorKey  keyType = "operator"
)

func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ctxGetRequestID returns the request ID, or "" outside a request.
func ctxGetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ctxWithOperator records the authenticated admin subject.
func ctxWithOperator(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, operatorKey, subject)
}

func ctxGetOperator(ctx context.Context) string {
	subject, _ := ctx.Value(operatorKey).(string)
	return subject
}
