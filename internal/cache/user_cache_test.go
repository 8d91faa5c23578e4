package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"

	"keyboards-api/internal/model"
)

func newTestCache(t *testing.T) (*UserCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewUserCache(client, time.Minute, 5*time.Second), mr
}

func TestUserCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	if _, hit, err := c.GetUser(ctx, 1); err != nil || hit {
		t.Fatalf("expected miss on empty cache, hit=%v err=%v", hit, err)
	}

	view := model.UserView{
		ID:       1,
		Username: "ada",
		Password: "p",
		Email:    "a@b.com",
		Keyboards: []model.KeyboardView{
			{ID: 4, Name: "K2", Switches: "Box Jade", Keycaps: "GMK", Image: "k2.png"},
		},
	}
	if err := c.SetUser(ctx, view); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}

	got, hit, err := c.GetUser(ctx, 1)
	if err != nil || !hit {
		t.Fatalf("expected hit, hit=%v err=%v", hit, err)
	}
	if got.Username != "ada" || len(got.Keyboards) != 1 || got.Keyboards[0].Switches != "Box Jade" {
		t.Fatalf("unexpected cached user: %+v", got)
	}

	if err := c.DeleteUser(ctx, 1); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, hit, _ := c.GetUser(ctx, 1); hit {
		t.Fatalf("expected miss after delete")
	}
}

func TestUserCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	if err := c.SetUser(ctx, model.UserView{ID: 2}); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}
	if err := c.MarkDirty(ctx, 2); err != nil {
		t.Fatalf("MarkDirty failed: %v", err)
	}
	if dirty, err := c.IsDirty(ctx, 2); err != nil || !dirty {
		t.Fatalf("expected dirty marker, dirty=%v err=%v", dirty, err)
	}

	mr.FastForward(6 * time.Second)
	if dirty, _ := c.IsDirty(ctx, 2); dirty {
		t.Fatalf("dirty marker should expire")
	}
	if _, hit, _ := c.GetUser(ctx, 2); !hit {
		t.Fatalf("user entry should outlive the dirty marker")
	}

	mr.FastForward(time.Minute)
	if _, hit, _ := c.GetUser(ctx, 2); hit {
		t.Fatalf("user entry should expire")
	}
}
