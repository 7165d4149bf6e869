package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
	"github.com/iliyamo/movie-booking-gateway/internal/model"
)

// fakeBookings records calls and fails on demand.
type fakeBookings struct {
	createErr  error
	createID   uint64
	updateErr  error
	created    []client.CreateBookingRequest
	updated    []uint64
	lastStatus string
}

func (f *fakeBookings) Create(_ context.Context, req client.CreateBookingRequest) (uint64, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		return 0, f.createErr
	}
	if f.createID == 0 {
		return 0, client.ErrNoBookingID
	}
	return f.createID, nil
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id uint64, status string) error {
	f.updated = append(f.updated, id)
	f.lastStatus = status
	return f.updateErr
}

type fakePayments struct {
	createErr error
	createID  uint64
	created   []client.CreatePaymentRequest
}

func (f *fakePayments) Create(_ context.Context, req client.CreatePaymentRequest) (uint64, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createID, nil
}

func testUser() model.User {
	return model.User{ID: 7, Name: "Jane", Email: "jane@example.com", Role: model.RoleCustomer}
}

func testCard() Card {
	return Card{Number: "4111111111111111", Name: "Jane Doe", Expiry: "12/27", CVV: "123", Method: model.PaymentMethodVisa}
}

func TestRunHappyPath(t *testing.T) {
	fb := &fakeBookings{createID: 55}
	fp := &fakePayments{createID: 99}
	flow := NewFlow(fb, fp)

	res, err := flow.Run(context.Background(), testUser(), testPayload(t), testCard())
	if err != nil {
		t.Fatal(err)
	}
	if flow.State() != StateDone {
		t.Fatalf("state: got %s", flow.State())
	}
	if res.BookingID != 55 || res.PaymentID != 99 || !res.Confirmed {
		t.Fatalf("result: %+v", res)
	}

	// The booking was created APPROVED with the category quantities.
	if len(fb.created) != 1 {
		t.Fatalf("bookings created: %d", len(fb.created))
	}
	req := fb.created[0]
	if req.Status != model.BookingStatusApproved || req.TotalAdults != 2 || req.TotalChildren != 1 {
		t.Fatalf("booking request: %+v", req)
	}
	// The payment charged the ticket total against the new booking.
	if len(fp.created) != 1 {
		t.Fatalf("payments created: %d", len(fp.created))
	}
	pay := fp.created[0]
	if pay.BookingID != 55 || pay.AmountCents != 2*110000+85000 {
		t.Fatalf("payment request: %+v", pay)
	}
	if pay.PaymentStatus != model.PaymentStatusCompleted || !strings.HasPrefix(pay.TransactionID, "TXN-") {
		t.Fatalf("payment request: %+v", pay)
	}
	// The confirm step flipped the label.
	if len(fb.updated) != 1 || fb.updated[0] != 55 || fb.lastStatus != model.BookingStatusConfirmed {
		t.Fatalf("confirm: updated=%v status=%q", fb.updated, fb.lastStatus)
	}
}

func TestRunIncompleteCardIsPrecondition(t *testing.T) {
	fb := &fakeBookings{createID: 55}
	fp := &fakePayments{createID: 99}
	flow := NewFlow(fb, fp)

	card := testCard()
	card.CVV = ""
	_, err := flow.Run(context.Background(), testUser(), testPayload(t), card)
	if !errors.Is(err, ErrMissingCardFields) {
		t.Fatalf("got %v, want ErrMissingCardFields", err)
	}
	if len(fb.created) != 0 || len(fp.created) != 0 {
		t.Fatal("no remote call may happen on a precondition failure")
	}
	if flow.State() != StateIdle {
		t.Fatalf("state: got %s", flow.State())
	}
}

func TestRunInvalidPayloadIsPrecondition(t *testing.T) {
	fb := &fakeBookings{createID: 55}
	fp := &fakePayments{createID: 99}
	flow := NewFlow(fb, fp)

	p := testPayload(t)
	p.Context.ShowtimeID = 0
	_, err := flow.Run(context.Background(), testUser(), p, testCard())
	if !errors.Is(err, ErrMissingShowtime) {
		t.Fatalf("got %v, want ErrMissingShowtime", err)
	}
	if len(fb.created) != 0 {
		t.Fatal("no booking may be created for an invalid payload")
	}
}

func TestRunBookingFailureIsClean(t *testing.T) {
	fb := &fakeBookings{createErr: errors.New("connection refused")}
	fp := &fakePayments{createID: 99}
	flow := NewFlow(fb, fp)

	res, err := flow.Run(context.Background(), testUser(), testPayload(t), testCard())
	if err == nil {
		t.Fatal("expected error")
	}
	if res != nil {
		t.Fatalf("no result may survive a booking failure: %+v", res)
	}
	if len(fp.created) != 0 {
		t.Fatal("payment must not be attempted after a booking failure")
	}
	if flow.State() != StateIdle {
		t.Fatalf("state: got %s", flow.State())
	}
}

func TestRunMissingBookingIDIsFatal(t *testing.T) {
	fb := &fakeBookings{} // createID zero -> ErrNoBookingID
	fp := &fakePayments{createID: 99}
	flow := NewFlow(fb, fp)

	_, err := flow.Run(context.Background(), testUser(), testPayload(t), testCard())
	if !errors.Is(err, client.ErrNoBookingID) {
		t.Fatalf("got %v, want ErrNoBookingID", err)
	}
	if len(fp.created) != 0 {
		t.Fatal("payment must not be attempted without a booking id")
	}
}

func TestRunPaymentFailureLeavesOrphanedBooking(t *testing.T) {
	fb := &fakeBookings{createID: 55}
	fp := &fakePayments{createErr: errors.New("card declined")}
	flow := NewFlow(fb, fp)

	res, err := flow.Run(context.Background(), testUser(), testPayload(t), testCard())
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("got %v, want ErrPaymentFailed", err)
	}
	// The orphaned booking id is reported and no compensation runs.
	if res == nil || res.BookingID != 55 {
		t.Fatalf("result: %+v", res)
	}
	if len(fb.updated) != 0 {
		t.Fatal("no confirm and no rollback may run after a payment failure")
	}
	if flow.State() != StateIdle {
		t.Fatalf("state: got %s", flow.State())
	}
}

func TestRunConfirmFailureStillSucceeds(t *testing.T) {
	fb := &fakeBookings{createID: 55, updateErr: errors.New("timeout")}
	fp := &fakePayments{createID: 99}
	flow := NewFlow(fb, fp)

	res, err := flow.Run(context.Background(), testUser(), testPayload(t), testCard())
	if err != nil {
		t.Fatalf("confirm failure must not fail the flow: %v", err)
	}
	if res.Confirmed {
		t.Fatal("confirmed must be false when the status flip failed")
	}
	if flow.State() != StateDone {
		t.Fatalf("state: got %s", flow.State())
	}
}

func TestRunDefaultsPaymentMethod(t *testing.T) {
	fb := &fakeBookings{createID: 55}
	fp := &fakePayments{createID: 99}
	card := testCard()
	card.Method = ""
	if _, err := NewFlow(fb, fp).Run(context.Background(), testUser(), testPayload(t), card); err != nil {
		t.Fatal(err)
	}
	if fp.created[0].PaymentMethod != model.PaymentMethodVisa {
		t.Fatalf("method: got %q", fp.created[0].PaymentMethod)
	}
}
