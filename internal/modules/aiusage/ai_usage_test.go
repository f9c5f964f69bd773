// README: Quota service tests with an in-memory store fake.
package aiusage

import (
	"context"
	"errors"
	"testing"

	"mrtbot/internal/types"
)

type fakeQuotaStore struct {
	remaining map[types.ID]int
	ensureErr error
}

func newFakeQuotaStore() *fakeQuotaStore {
	return &fakeQuotaStore{remaining: map[types.ID]int{}}
}

func (f *fakeQuotaStore) UseCall(ctx context.Context, userID types.ID) error {
	n, ok := f.remaining[userID]
	if !ok || n <= 0 {
		return ErrQuotaExhausted
	}
	f.remaining[userID] = n - 1
	return nil
}

func (f *fakeQuotaStore) EnsureUser(ctx context.Context, userID types.ID) error {
	if f.ensureErr != nil {
		return f.ensureErr
	}
	if _, ok := f.remaining[userID]; !ok {
		f.remaining[userID] = DefaultCalls
	}
	return nil
}

func TestUseCallInitialisesNewUser(t *testing.T) {
	store := newFakeQuotaStore()
	svc := NewService(store)

	if err := svc.UseCall(context.Background(), "u_new"); err != nil {
		t.Fatalf("first call for a new user must succeed: %v", err)
	}
	if got := store.remaining["u_new"]; got != DefaultCalls-1 {
		t.Fatalf("expected %d calls remaining, got %d", DefaultCalls-1, got)
	}
}

func TestUseCallExhaustion(t *testing.T) {
	store := newFakeQuotaStore()
	store.remaining["u1"] = 1
	svc := NewService(store)

	if err := svc.UseCall(context.Background(), "u1"); err != nil {
		t.Fatalf("last call: %v", err)
	}
	if err := svc.UseCall(context.Background(), "u1"); err != ErrQuotaExhausted {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
}

func TestUseCallEnsureFailurePropagates(t *testing.T) {
	store := newFakeQuotaStore()
	store.ensureErr = errors.New("db down")
	svc := NewService(store)

	if err := svc.UseCall(context.Background(), "u1"); !errors.Is(err, store.ensureErr) {
		t.Fatalf("expected ensure error, got %v", err)
	}
}
