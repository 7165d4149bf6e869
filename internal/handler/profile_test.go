package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-gateway/internal/client"
	"github.com/iliyamo/movie-booking-gateway/internal/model"
	"github.com/iliyamo/movie-booking-gateway/internal/session"
)

func profileRequest(h *ProfileHandler, fn echo.HandlerFunc, id string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7))
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	_ = fn(c)
	return rec
}

type historyItem struct {
	model.Booking
	Payment *model.Payment `json:"payment"`
}

func decodeHistory(t *testing.T, rec *httptest.ResponseRecorder) []historyItem {
	t.Helper()
	var out struct {
		Items []historyItem `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	return out.Items
}

func TestHistoryJoinsPaymentsByBooking(t *testing.T) {
	bookingSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/7" {
			t.Fatalf("bookings path: %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"id":1,"userId":7,"status":"CONFIRMED"},
			{"id":2,"userId":7,"status":"APPROVED"}
		]`))
	}))
	t.Cleanup(bookingSrv.Close)
	paymentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":9,"bookingId":1,"userId":7,"amountCents":305000}]`))
	}))
	t.Cleanup(paymentSrv.Close)

	h := NewProfileHandler(
		client.NewBookingClient(bookingSrv.URL, bookingSrv.Client()),
		client.NewPaymentClient(paymentSrv.URL, paymentSrv.Client()),
		session.NewContext(stubUserService(t), nil),
	)
	rec := profileRequest(h, h.History, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	items := decodeHistory(t, rec)
	if len(items) != 2 {
		t.Fatalf("items: %+v", items)
	}
	if items[0].Payment == nil || items[0].Payment.AmountCents != 305000 {
		t.Fatalf("paid booking lost its payment: %+v", items[0])
	}
	// Booking 2 is the orphan case: it renders unpaid, not as an error.
	if items[1].Payment != nil {
		t.Fatalf("unpaid booking gained a payment: %+v", items[1])
	}
}

func TestHistoryDegradesWhenPaymentsUnavailable(t *testing.T) {
	bookingSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"userId":7,"status":"CONFIRMED"}]`))
	}))
	t.Cleanup(bookingSrv.Close)
	paymentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(paymentSrv.Close)

	h := NewProfileHandler(
		client.NewBookingClient(bookingSrv.URL, bookingSrv.Client()),
		client.NewPaymentClient(paymentSrv.URL, paymentSrv.Client()),
		session.NewContext(stubUserService(t), nil),
	)
	rec := profileRequest(h, h.History, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("history must survive a payment outage: status %d", rec.Code)
	}
	items := decodeHistory(t, rec)
	if len(items) != 1 || items[0].Payment != nil {
		t.Fatalf("items: %+v", items)
	}
}

func TestBookingDetailAttachesPayment(t *testing.T) {
	bookingSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1" {
			t.Fatalf("booking path: %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":1,"userId":7,"status":"CONFIRMED","seatsSelected":["C4","C5"]}`))
	}))
	t.Cleanup(bookingSrv.Close)
	paymentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/booking/1" {
			t.Fatalf("payments path: %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":9,"bookingId":1,"userId":7,"transactionId":"TXN-ABC"}]`))
	}))
	t.Cleanup(paymentSrv.Close)

	h := NewProfileHandler(
		client.NewBookingClient(bookingSrv.URL, bookingSrv.Client()),
		client.NewPaymentClient(paymentSrv.URL, paymentSrv.Client()),
		session.NewContext(stubUserService(t), nil),
	)
	rec := profileRequest(h, h.Booking, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Item historyItem `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Item.ID != 1 || out.Item.Payment == nil || out.Item.Payment.TransactionID != "TXN-ABC" {
		t.Fatalf("item: %+v", out.Item)
	}
}

func TestBookingDetailHidesOtherUsers(t *testing.T) {
	bookingSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"userId":8,"status":"CONFIRMED"}`))
	}))
	t.Cleanup(bookingSrv.Close)
	paymentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("payments must not be queried for another user's booking")
	}))
	t.Cleanup(paymentSrv.Close)

	h := NewProfileHandler(
		client.NewBookingClient(bookingSrv.URL, bookingSrv.Client()),
		client.NewPaymentClient(paymentSrv.URL, paymentSrv.Client()),
		session.NewContext(stubUserService(t), nil),
	)
	rec := profileRequest(h, h.Booking, "1")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
}
