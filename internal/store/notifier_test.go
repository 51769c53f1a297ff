package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/models"
)

// fakeRosterStore is a scriptable in-memory [RosterStore] for decorator tests.
type fakeRosterStore struct {
	insertErr  error
	updateHit  bool
	deleteHit  bool
	failReads  bool
	listResult []models.User
}

func (f *fakeRosterStore) List(_ context.Context) ([]models.User, error) {
	if f.failReads {
		return nil, errors.New("list failed")
	}
	return f.listResult, nil
}

func (f *fakeRosterStore) Insert(_ context.Context, user models.User) (models.User, error) {
	if f.insertErr != nil {
		return models.User{}, f.insertErr
	}
	user.ID = "generated-id"
	return user, nil
}

func (f *fakeRosterStore) Update(_ context.Context, _ string, _ models.UserPatch) (bool, error) {
	return f.updateHit, nil
}

func (f *fakeRosterStore) Delete(_ context.Context, _ string) (bool, error) {
	return f.deleteHit, nil
}

func newTestNotifyingStore(inner RosterStore) NotifyingStore {
	return NewNotifyingStore(inner, logger.NewLogger("test"))
}

func TestNotifyingStore_InsertFiresOneEvent(t *testing.T) {
	store := newTestNotifyingStore(&fakeRosterStore{})

	events := 0
	unsubscribe := store.Subscribe(func() { events++ })
	defer unsubscribe()

	_, err := store.Insert(context.Background(), models.User{Email: "viewer@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if events != 1 {
		t.Fatalf("expected exactly 1 event, got %d", events)
	}
	if store.Revision() != 1 {
		t.Errorf("expected revision 1, got %d", store.Revision())
	}
}

func TestNotifyingStore_FailedInsertFiresNothing(t *testing.T) {
	store := newTestNotifyingStore(&fakeRosterStore{insertErr: ErrEmailAlreadyExists})

	events := 0
	unsubscribe := store.Subscribe(func() { events++ })
	defer unsubscribe()

	_, err := store.Insert(context.Background(), models.User{Email: "dupe@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
	if events != 0 {
		t.Errorf("expected no events on failure, got %d", events)
	}
	if store.Revision() != 0 {
		t.Errorf("expected revision unchanged, got %d", store.Revision())
	}
}

func TestNotifyingStore_UpdateZeroRowsFiresNothing(t *testing.T) {
	store := newTestNotifyingStore(&fakeRosterStore{updateHit: false})

	events := 0
	unsubscribe := store.Subscribe(func() { events++ })
	defer unsubscribe()

	updated, err := store.Update(context.Background(), "no-such-id", models.UserPatch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated {
		t.Fatal("expected updated=false")
	}
	if events != 0 {
		t.Errorf("expected no events when nothing changed, got %d", events)
	}
}

func TestNotifyingStore_EveryMutationBumpsRevision(t *testing.T) {
	store := newTestNotifyingStore(&fakeRosterStore{updateHit: true, deleteHit: true})

	events := 0
	unsubscribe := store.Subscribe(func() { events++ })
	defer unsubscribe()

	ctx := context.Background()
	if _, err := store.Insert(ctx, models.User{Email: "a@example.com"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := store.Update(ctx, "id-1", models.UserPatch{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := store.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if events != 3 {
		t.Errorf("expected 3 events (no coalescing), got %d", events)
	}
	if store.Revision() != 3 {
		t.Errorf("expected revision 3, got %d", store.Revision())
	}
}

func TestNotifyingStore_MultipleSubscribers(t *testing.T) {
	store := newTestNotifyingStore(&fakeRosterStore{deleteHit: true})

	first, second := 0, 0
	unsubFirst := store.Subscribe(func() { first++ })
	defer unsubFirst()
	unsubSecond := store.Subscribe(func() { second++ })
	defer unsubSecond()

	if _, err := store.Delete(context.Background(), "id-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if first != 1 || second != 1 {
		t.Errorf("expected both subscribers notified once, got %d and %d", first, second)
	}
}

func TestNotifyingStore_UnsubscribeIsIdempotent(t *testing.T) {
	store := newTestNotifyingStore(&fakeRosterStore{deleteHit: true})

	stale := 0
	unsubscribe := store.Subscribe(func() { stale++ })

	live := 0
	unsubLive := store.Subscribe(func() { live++ })
	defer unsubLive()

	unsubscribe()
	unsubscribe() // second call must not disturb other subscriptions

	if _, err := store.Delete(context.Background(), "id-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if stale != 0 {
		t.Errorf("expected no events after unsubscribe, got %d", stale)
	}
	if live != 1 {
		t.Errorf("expected surviving subscriber notified once, got %d", live)
	}
}

func TestNotifyingStore_ListPassesThrough(t *testing.T) {
	roster := []models.User{{ID: "id-1", Email: "viewer@example.com"}}
	store := newTestNotifyingStore(&fakeRosterStore{listResult: roster})

	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "id-1" {
		t.Fatalf("unexpected roster: %v", got)
	}
	if store.Revision() != 0 {
		t.Errorf("reads must not bump revision, got %d", store.Revision())
	}
}
