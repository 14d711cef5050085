package cart

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/crustcraft/crustcraft-backend/pkg/errors"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

type memoryStore struct {
	snapshots map[string]Snapshot
}

func newMemoryStore() *memoryStore {
	return &memoryStore{snapshots: map[string]Snapshot{}}
}

func (m *memoryStore) Load(_ context.Context, sessionID string) (Snapshot, bool, error) {
	snap, ok := m.snapshots[sessionID]
	return snap, ok, nil
}

func (m *memoryStore) Save(_ context.Context, sessionID string, snap Snapshot) error {
	m.snapshots[sessionID] = snap
	return nil
}

func (m *memoryStore) Delete(_ context.Context, sessionID string) error {
	delete(m.snapshots, sessionID)
	return nil
}

type staticOutlets struct {
	dir Directory
}

func (s staticOutlets) Directory(context.Context) (Directory, error) {
	return s.dir, nil
}

func newTestService(t *testing.T) (*Service, *memoryStore) {
	t.Helper()
	store := newMemoryStore()
	svc, err := NewService(store, staticOutlets{dir: testDirectory()}, logger.New(logger.Options{Output: io.Discard}), ServiceOptions{
		Delivery: DeliveryPolicy{FlatFee: 30},
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc, store
}

func TestServiceAddItemPersistsAcrossRequests(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess-1", Product{Name: "Margherita", SizeName: "Medium", Price: 200}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.AddItem(ctx, "sess-1", Product{Name: "Margherita", SizeName: "Medium", Price: 200})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if view.TotalItems != 2 || len(view.Items) != 1 {
		t.Fatalf("expected merged line with quantity 2, got %+v", view)
	}
	if view.Subtotal != 400 || view.Total != 430 {
		t.Fatalf("unexpected totals: %+v", view)
	}

	// A fresh Fetch sees the same state.
	fetched, err := svc.Fetch(ctx, "sess-1")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if fetched.TotalItems != 2 {
		t.Fatalf("expected persisted state, got %+v", fetched)
	}
}

func TestServiceSessionsAreIsolated(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess-1", Product{Name: "Margherita", SizeName: "Medium", Price: 200}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	other, err := svc.Fetch(ctx, "sess-2")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if other.TotalItems != 0 {
		t.Fatalf("sessions must not share state, got %+v", other)
	}
}

func TestServiceValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Fetch(ctx, ""); errors.As(err) == nil || errors.As(err).Code() != errors.CodeValidation {
		t.Fatalf("expected validation error for missing session, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "sess-1", Product{}); errors.As(err) == nil || errors.As(err).Code() != errors.CodeValidation {
		t.Fatalf("expected validation error for unnamed item, got %v", err)
	}
	if _, err := svc.ToggleAddOn(ctx, "sess-1", "id", "stuffedCrust"); errors.As(err) == nil || errors.As(err).Code() != errors.CodeValidation {
		t.Fatalf("expected validation error for unknown add-on, got %v", err)
	}
}

func TestServiceCheckoutPreconditions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// No outlet selected.
	if _, err := svc.AddItem(ctx, "sess-1", Product{Name: "Margherita", SizeName: "Medium", Price: 200}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Checkout(ctx, "sess-1"); errors.As(err) == nil || errors.As(err).Code() != errors.CodeValidation {
		t.Fatalf("expected validation error without outlet, got %v", err)
	}

	// Outlet selected but cart empty.
	if _, err := svc.SelectOutlet(ctx, "sess-2", "sector17"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if _, err := svc.Checkout(ctx, "sess-2"); errors.As(err) == nil || errors.As(err).Code() != errors.CodeValidation {
		t.Fatalf("expected validation error for empty cart, got %v", err)
	}

	// Outlet key that no longer resolves.
	if _, err := svc.SelectOutlet(ctx, "sess-1", "closed-outlet"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if _, err := svc.Checkout(ctx, "sess-1"); errors.As(err) == nil || errors.As(err).Code() != errors.CodeValidation {
		t.Fatalf("expected validation error for unknown outlet, got %v", err)
	}
}

func TestServiceCheckout(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "sess-1", Product{Name: "Margherita", SizeName: "Medium", Price: 200}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.SelectOutlet(ctx, "sess-1", "sector17"); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	result, err := svc.Checkout(ctx, "sess-1")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if result.OutletKey != "sector17" || result.OutletPhone != "+919876500017" {
		t.Fatalf("unexpected outlet in result: %+v", result)
	}
	if !strings.Contains(result.Message, "Total: Rs.230") {
		t.Fatalf("unexpected message:\n%s", result.Message)
	}
	if !strings.HasPrefix(result.WhatsAppLink, "https://wa.me/919876500017?") {
		t.Fatalf("unexpected link: %s", result.WhatsAppLink)
	}
}

func TestServiceClearAndRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "sess-1", Product{Name: "Margherita", SizeName: "Medium", Price: 200})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	id := view.Items[0].ID

	view, err = svc.UpdateQuantity(ctx, "sess-1", id, 3)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if view.TotalItems != 3 {
		t.Fatalf("expected quantity 3, got %+v", view)
	}

	view, err = svc.RemoveItem(ctx, "sess-1", id)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if view.TotalItems != 0 {
		t.Fatalf("expected empty cart, got %+v", view)
	}

	if _, err := svc.AddItem(ctx, "sess-1", Product{Name: "Farmhouse", SizeName: "Large", Price: 320}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err = svc.Clear(ctx, "sess-1")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if view.TotalItems != 0 {
		t.Fatalf("expected cleared cart, got %+v", view)
	}
}

func TestServiceToggleAddOn(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "sess-1", Product{Name: "Margherita", SizeName: "Small", Price: 200})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	id := view.Items[0].ID

	view, err = svc.ToggleAddOn(ctx, "sess-1", id, "extraCheese")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if view.Subtotal != 230 {
		t.Fatalf("expected subtotal 230 with surcharge, got %+v", view)
	}
}
