// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRequestIDFromContext_Success(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	id, ok := RequestIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "req-1" {
		t.Errorf("expected 'req-1', got '%s'", id)
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty request id")
	}
}

func TestRequestIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)
	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}
