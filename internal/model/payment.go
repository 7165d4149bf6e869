package model

// PaymentStatusCompleted is the status the payment service expects on a
// successfully captured card payment.
const PaymentStatusCompleted = "Completed"

// Payment methods accepted by the card form.
const (
	PaymentMethodVisa       = "visa"
	PaymentMethodMastercard = "mastercard"
)

// Payment mirrors the payment service's record of one captured charge.
type Payment struct {
	ID            uint64 `json:"id"`
	BookingID     uint64 `json:"bookingId"`
	UserID        uint64 `json:"userId"`
	AmountCents   uint32 `json:"amountCents"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	TransactionID string `json:"transactionId"`
	CreatedAt     string `json:"createdAt"`
}
