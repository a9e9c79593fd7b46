package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "rentwatch/internal/adapters/redis"
	"rentwatch/internal/domain"
)

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	in := domain.Property{ID: "property-1", Title: "Luxury 2BR in Xinyi", Price: 35000}
	if err := c.Set(ctx, "property:property-1", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.Property
	ok, err := c.Get(ctx, "property:property-1", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.ID != in.ID || out.Price != in.Price {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}

	if err := c.Del(ctx, "property:property-1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "property:property-1", &out)
	if err != nil || ok {
		t.Fatalf("expected miss after del: ok=%v err=%v", ok, err)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var s string
	ok, err := c.Get(ctx, "k", &s)
	if err != nil || ok {
		t.Fatalf("expected expiry miss: ok=%v err=%v", ok, err)
	}
}
