package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// InitialStatus is assigned when the request does not name one.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Payment Method
// ===============================

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "Cartão de Crédito"
	PaymentDebitCard  PaymentMethod = "Cartão de Débito"
	PaymentPix        PaymentMethod = "PIX"
	PaymentCash       PaymentMethod = "Dinheiro"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentCash:
		return true
	}
	return false
}

// DateLayout is the wire format of Booking.date.
const DateLayout = "2006-01-02"

// MaxTimeLabel bounds the free-form time label ("09:00", "13:45").
const MaxTimeLabel = 10
