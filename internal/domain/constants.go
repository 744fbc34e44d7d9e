package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxGuestsPerBooking         = 6
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 100
	MaxCustomerPhoneLength      = 30
	PaymentLast5Length          = 5
)

// Default configuration values
const (
	DefaultDepositPerGuest = 1000
	DefaultBookingsLimit   = 300 // admin list cap, mirrors the mini-app history view
)

// ValidBookingStatuses all statuses a booking may hold
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ValidPaymentStatuses all payment states a booking may hold
var ValidPaymentStatuses = []PaymentStatus{
	PaymentUnpaid,
	PaymentReported,
	PaymentVerified,
}
