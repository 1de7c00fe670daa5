package ids

import (
	"context"
	"testing"
)

func TestContext(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("empty context should not carry an allocator")
	}

	a := New()
	ctx := WithAllocator(context.Background(), a)
	got, ok := FromContext(ctx)
	if !ok || got != a {
		t.Errorf("FromContext() = %p, %v; want %p, true", got, ok, a)
	}

	if _, ok := FromContext(WithAllocator(context.Background(), nil)); ok {
		t.Error("nil allocator should report ok = false")
	}
}
