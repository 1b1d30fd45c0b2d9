package session

import (
	"context"
	"testing"
	"time"

	"collections-backend/internal/models"
)

func newTestStore() (*Store, *MemorySlot, *MemorySlot) {
	durable := NewMemorySlot()
	scoped := NewMemorySlot()
	return NewStore(durable, scoped, time.Hour), durable, scoped
}

func jo() *models.Administrator {
	return &models.Administrator{ID: 7, Name: "Jo Admin", Username: "jo"}
}

func TestRememberedSessionLivesInDurableSlot(t *testing.T) {
	ctx := context.Background()
	store, durable, scoped := newTestStore()

	if err := store.Save(ctx, "sid", jo(), true); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, ok, _ := durable.Get(ctx, "sid"); !ok {
		t.Error("remembered session missing from durable slot")
	}
	if _, ok, _ := scoped.Get(ctx, "sid"); ok {
		t.Error("remembered session leaked into scoped slot")
	}

	// A scoped wipe (process restart analogue) must not touch it.
	scoped.Delete(ctx, "sid")
	admin, ok, err := store.Load(ctx, "sid")
	if err != nil || !ok {
		t.Fatalf("Load after scoped wipe: ok=%v err=%v", ok, err)
	}
	if admin.Username != "jo" {
		t.Errorf("loaded admin = %+v", admin)
	}
}

func TestScopedSessionLivesInScopedSlot(t *testing.T) {
	ctx := context.Background()
	store, durable, scoped := newTestStore()

	if err := store.Save(ctx, "sid", jo(), false); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, ok, _ := scoped.Get(ctx, "sid"); !ok {
		t.Error("scoped session missing from scoped slot")
	}
	if _, ok, _ := durable.Get(ctx, "sid"); ok {
		t.Error("scoped session leaked into durable slot")
	}

	durable.Delete(ctx, "sid")
	if _, ok, _ := store.Load(ctx, "sid"); !ok {
		t.Error("scoped session lost after durable wipe")
	}
}

func TestSaveEnforcesSlotExclusivity(t *testing.T) {
	ctx := context.Background()
	store, durable, scoped := newTestStore()

	// Log in remembered, then log in again without remember.
	store.Save(ctx, "sid", jo(), true)
	store.Save(ctx, "sid", jo(), false)

	if _, ok, _ := durable.Get(ctx, "sid"); ok {
		t.Error("durable copy survived a non-remembered re-login")
	}
	if _, ok, _ := scoped.Get(ctx, "sid"); !ok {
		t.Error("scoped copy missing after re-login")
	}

	// And back again.
	store.Save(ctx, "sid", jo(), true)
	if _, ok, _ := scoped.Get(ctx, "sid"); ok {
		t.Error("scoped copy survived a remembered re-login")
	}
}

func TestLoadChecksDurableFirst(t *testing.T) {
	ctx := context.Background()
	store, durable, scoped := newTestStore()

	// Plant conflicting copies directly; Load must prefer durable.
	durable.Put(ctx, "sid", []byte(`{"id":1,"username":"durable"}`), time.Hour)
	scoped.Put(ctx, "sid", []byte(`{"id":2,"username":"scoped"}`), time.Hour)

	admin, ok, err := store.Load(ctx, "sid")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if admin.Username != "durable" {
		t.Errorf("Load preferred %q, want the durable copy", admin.Username)
	}
}

func TestClearRemovesBothSlots(t *testing.T) {
	ctx := context.Background()
	store, durable, scoped := newTestStore()

	durable.Put(ctx, "sid", []byte(`{}`), time.Hour)
	scoped.Put(ctx, "sid", []byte(`{}`), time.Hour)

	if err := store.Clear(ctx, "sid"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := store.Load(ctx, "sid"); ok {
		t.Error("session still loadable after Clear")
	}
}

func TestRefreshRewritesOwningSlot(t *testing.T) {
	ctx := context.Background()
	store, durable, _ := newTestStore()

	store.Save(ctx, "sid", jo(), false)

	renamed := jo()
	renamed.Username = "renamed"
	if err := store.Refresh(ctx, "sid", renamed); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	admin, ok, _ := store.Load(ctx, "sid")
	if !ok || admin.Username != "renamed" {
		t.Fatalf("refreshed admin = %+v, ok=%v", admin, ok)
	}
	if _, ok, _ := durable.Get(ctx, "sid"); ok {
		t.Error("Refresh moved the session into the durable slot")
	}
}

func TestMemorySlotExpiry(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	slot.Put(ctx, "k", []byte("v"), -time.Second)
	if _, ok, _ := slot.Get(ctx, "k"); ok {
		t.Error("expired entry still readable")
	}
}

func TestUnknownSessionNotFound(t *testing.T) {
	store, _, _ := newTestStore()
	if _, ok, err := store.Load(context.Background(), "nope"); ok || err != nil {
		t.Fatalf("Load unknown: ok=%v err=%v", ok, err)
	}
}
