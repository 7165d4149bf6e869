package pricing

import "testing"

func TestCoupledAdjustmentKeepsSum(t *testing.T) {
	a := NewAllocation(3, 110000, 85000)

	a.SetFull(2)
	if a.QtyFull() != 2 || a.QtyHalf() != 1 {
		t.Fatalf("SetFull(2): got %d/%d", a.QtyFull(), a.QtyHalf())
	}
	a.SetHalf(3)
	if a.QtyFull() != 0 || a.QtyHalf() != 3 {
		t.Fatalf("SetHalf(3): got %d/%d", a.QtyFull(), a.QtyHalf())
	}

	// Any single edit keeps the invariant, including out-of-range input.
	edits := []struct {
		full bool
		v    int
	}{
		{true, 5}, {false, -2}, {true, 0}, {false, 1}, {true, 3}, {false, 99},
	}
	for _, e := range edits {
		if e.full {
			a.SetFull(e.v)
		} else {
			a.SetHalf(e.v)
		}
		if a.QtyFull()+a.QtyHalf() != 3 {
			t.Fatalf("after edit %+v: sum %d != 3", e, a.QtyFull()+a.QtyHalf())
		}
		if a.QtyFull() < 0 || a.QtyFull() > 3 || a.QtyHalf() < 0 || a.QtyHalf() > 3 {
			t.Fatalf("after edit %+v: out of range %d/%d", e, a.QtyFull(), a.QtyHalf())
		}
	}
}

func TestCanConfirm(t *testing.T) {
	a := NewAllocation(3, 110000, 85000)
	if a.CanConfirm() {
		t.Fatal("fresh allocation must not be confirmable")
	}
	a.SetFull(1)
	if !a.CanConfirm() {
		t.Fatal("allocation should be confirmable after an edit")
	}

	zero := NewAllocation(0, 110000, 85000)
	zero.SetFull(0)
	if zero.CanConfirm() {
		t.Fatal("zero seats must never be confirmable")
	}
	if zero.QtyFull() != 0 || zero.QtyHalf() != 0 {
		t.Fatal("zero seats must pin both quantities at zero")
	}
}

func TestNegativeSeatCountTreatedAsZero(t *testing.T) {
	a := NewAllocation(-4, 110000, 0)
	a.SetFull(2)
	if a.Seats() != 0 || a.QtyFull() != 0 || a.QtyHalf() != 0 {
		t.Fatalf("negative seats: got seats=%d %d/%d", a.Seats(), a.QtyFull(), a.QtyHalf())
	}
}

func TestHalfPriceDefaultsTo77Percent(t *testing.T) {
	a := NewAllocation(2, 110000, 0)
	if got := a.PriceHalfCents(); got != 84700 {
		t.Fatalf("derived half price: got %d, want 84700", got)
	}
	// An explicit half price is taken as-is.
	b := NewAllocation(2, 110000, 85000)
	if b.PriceHalfCents() != 85000 {
		t.Fatalf("explicit half price overridden: got %d", b.PriceHalfCents())
	}
}

func TestTotals(t *testing.T) {
	a := NewAllocation(3, 110000, 85000)
	a.SetFull(2)
	if got := a.TicketTotalCents(); got != 2*110000+85000 {
		t.Fatalf("ticket total: got %d", got)
	}
	if got := a.VATCents(); got != (2*110000+85000)*8/100 {
		t.Fatalf("vat: got %d", got)
	}
	if a.TotalWithVATCents() != a.TicketTotalCents()+a.VATCents() {
		t.Fatal("total with vat inconsistent")
	}
}

func TestResetDiscardsSplit(t *testing.T) {
	a := NewAllocation(4, 110000, 85000)
	a.SetFull(3)
	a.Reset()
	if a.QtyFull() != 0 || a.QtyHalf() != 0 {
		t.Fatalf("reset: got %d/%d", a.QtyFull(), a.QtyHalf())
	}
	if a.CanConfirm() {
		t.Fatal("reset allocation must not be confirmable")
	}
	if a.Seats() != 4 {
		t.Fatal("reset must not change the seat count")
	}
}
