package cart

import (
	"context"
	"testing"

	"github.com/shopkartlabs/shopkart-backend/internal/catalog"
)

func product(id int64, price int64) catalog.Product {
	return catalog.Product{ID: id, Name: "Test Product", Slug: "test-product", Price: price + 100, DiscountPrice: price}
}

func TestAddMergesQuantities(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	s.Add(ctx, product(1, 500), 1)
	s.Add(ctx, product(1, 500), 2)
	s.Add(ctx, product(2, 300), 1)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", items[0].Quantity)
	}
	if s.ItemCount() != 4 {
		t.Fatalf("expected item count 4, got %d", s.ItemCount())
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	s.Add(ctx, product(1, 500), 0)
	s.Add(ctx, product(2, 300), -4)

	for _, item := range s.Items() {
		if item.Quantity != 1 {
			t.Fatalf("non-positive add quantity should default to 1, got %d", item.Quantity)
		}
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	s.Add(ctx, product(1, 500), 2)
	s.UpdateQuantity(ctx, 1, 0)

	if len(s.Items()) != 0 {
		t.Fatalf("quantity 0 should remove the line")
	}

	s.Add(ctx, product(1, 500), 2)
	s.UpdateQuantity(ctx, 1, -5)
	if s.IsInCart(1) {
		t.Fatalf("negative quantity should remove the line")
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	s.Add(ctx, product(1, 500), 2)
	s.UpdateQuantity(ctx, 1, 7)

	if got := s.Items()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity 7, got %d", got)
	}

	// updating an absent product is a no-op
	s.UpdateQuantity(ctx, 99, 3)
	if len(s.Items()) != 1 {
		t.Fatalf("updating absent product should not add lines")
	}
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	s.Add(ctx, product(1, 500), 1)
	s.Remove(ctx, 42)

	if len(s.Items()) != 1 {
		t.Fatalf("removing absent product should leave cart unchanged")
	}
}

func TestTotalsBelowFreeShippingThreshold(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	s.Add(ctx, product(1, 650), 1)

	totals := s.Totals()
	if totals.Subtotal != 650 {
		t.Fatalf("expected subtotal 650, got %d", totals.Subtotal)
	}
	if totals.Tax != 117 {
		t.Fatalf("expected tax 117, got %d", totals.Tax)
	}
	if totals.Shipping != 99 {
		t.Fatalf("expected shipping 99, got %d", totals.Shipping)
	}
	if totals.Total != 866 {
		t.Fatalf("expected total 866, got %d", totals.Total)
	}
}

func TestTotalsAtFreeShippingThreshold(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	s.Add(ctx, product(1, 650), 2)

	totals := s.Totals()
	if totals.Subtotal != 1300 {
		t.Fatalf("expected subtotal 1300, got %d", totals.Subtotal)
	}
	if totals.Tax != 234 {
		t.Fatalf("expected tax 234, got %d", totals.Tax)
	}
	if totals.Shipping != 0 {
		t.Fatalf("subtotal >= 1000 should ship free, got %d", totals.Shipping)
	}
	if totals.Total != 1534 {
		t.Fatalf("expected total 1534, got %d", totals.Total)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	totals := s.Totals()
	if totals.Subtotal != 0 || totals.Tax != 0 || totals.Shipping != 0 || totals.Total != 0 {
		t.Fatalf("empty cart should have zero totals, got %+v", totals)
	}
}

func TestTaxRoundsToNearestRupee(t *testing.T) {
	// 18% of 103 is 18.54, rounds to 19
	totals := ComputeTotals([]Item{{Product: product(1, 103), Quantity: 1}})
	if totals.Tax != 19 {
		t.Fatalf("expected tax 19, got %d", totals.Tax)
	}

	// 18% of 25 is 4.5, rounds half away from zero to 5
	totals = ComputeTotals([]Item{{Product: product(1, 25), Quantity: 1}})
	if totals.Tax != 5 {
		t.Fatalf("expected tax 5, got %d", totals.Tax)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{})

	s.Add(ctx, product(1, 500), 2)
	s.Add(ctx, product(2, 300), 1)
	s.Clear(ctx)

	if len(s.Items()) != 0 || s.ItemCount() != 0 {
		t.Fatalf("clear should empty the cart")
	}
	if s.Total() != 0 {
		t.Fatalf("cleared cart should total zero")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	persister := NewMemoryPersister()

	s := NewStore(ctx, StoreParams{Persister: persister})
	s.Add(ctx, product(1, 500), 2)
	s.Add(ctx, product(2, 300), 1)

	restored := NewStore(ctx, StoreParams{Persister: persister})
	items := restored.Items()
	if len(items) != 2 {
		t.Fatalf("expected restored cart with 2 lines, got %d", len(items))
	}
	if items[0].Product.ID != 1 || items[0].Quantity != 2 {
		t.Fatalf("restored line mismatch: %+v", items[0])
	}
}

func TestPersistFailureKeepsCartUsable(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, StoreParams{Persister: failingPersister{}})

	s.Add(ctx, product(1, 500), 1)

	if len(s.Items()) != 1 {
		t.Fatalf("persist failure should not lose the in-memory mutation")
	}
}

func TestFilePersisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	persister, err := NewFilePersister(t.TempDir())
	if err != nil {
		t.Fatalf("building file persister: %v", err)
	}

	s := NewStore(ctx, StoreParams{Persister: persister})
	s.Add(ctx, product(1, 750), 3)

	restored := NewStore(ctx, StoreParams{Persister: persister})
	if restored.ItemCount() != 3 {
		t.Fatalf("expected restored count 3, got %d", restored.ItemCount())
	}

	// missing snapshot loads an empty cart
	empty := NewStore(ctx, StoreParams{Persister: persister, Key: "other_key"})
	if len(empty.Items()) != 0 {
		t.Fatalf("missing snapshot should start empty")
	}
}

func TestNotifierReceivesEvents(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	s := NewStore(ctx, StoreParams{Notifier: notifier})

	s.Add(ctx, product(1, 500), 1)
	s.Remove(ctx, 1)
	s.Remove(ctx, 1) // absent, no event

	if notifier.added != 1 {
		t.Fatalf("expected 1 add event, got %d", notifier.added)
	}
	if notifier.removed != 1 {
		t.Fatalf("expected 1 remove event, got %d", notifier.removed)
	}
}

type failingPersister struct{}

func (failingPersister) Save(context.Context, string, []Item) error {
	return context.DeadlineExceeded
}

func (failingPersister) Load(context.Context, string) ([]Item, error) {
	return nil, nil
}

type recordingNotifier struct {
	added   int
	removed int
}

func (r *recordingNotifier) ItemAdded(_ context.Context, _ catalog.Product) { r.added++ }
func (r *recordingNotifier) ItemRemoved(_ context.Context)                  { r.removed++ }
