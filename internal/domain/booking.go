package domain

import (
	"strings"
	"time"

	"github.com/AM-Studio-19/am-booking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the deposit payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentReported PaymentStatus = "reported"
	PaymentVerified PaymentStatus = "verified"
)

// Booking represents a single guest's appointment at the studio.
// Group bookings share a Code; GuestIndex orders guests within the group.
type Booking struct {
	ID         int64
	Code       string // public group code, exposed to the customer instead of the numeric ID
	LocationID string

	CustomerName  string
	CustomerPhone string

	// Denormalized snapshot for history: the catalog may change later,
	// the booking keeps what was actually ordered
	LocationName    string
	ServiceName     string
	DurationMinutes int

	Date       time.Time
	StartTime  types.TimeString
	GuestIndex int

	Status        BookingStatus
	PaymentStatus PaymentStatus

	TotalPrice int64
	Deposit    int64

	Notes *string

	PaymentLast5      *string
	PaymentReportedAt *time.Time

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanReportPayment returns true if a deposit transfer can be reported
func (b *Booking) CanReportPayment() bool {
	return b.IsActive() && b.PaymentStatus == PaymentUnpaid
}

// IsCompletedVisit reports whether the booking counts as a valid past visit
// for touch-up history purposes: confirmed by the studio or with a verified
// deposit, and dated strictly before the reference time.
func (b *Booking) IsCompletedVisit(reference time.Time) bool {
	if b.Status == StatusCancelled {
		return false
	}
	if b.Status != StatusConfirmed && b.PaymentStatus != PaymentVerified {
		return false
	}
	return b.Date.Before(reference)
}

// MatchesCategory reports whether the booked service belongs to the given
// treatment category. Matching is substring containment on the free-text
// service name, deliberately loose: catalog names like "頂級霧眉 (首次)"
// must match the category "霧眉".
func (b *Booking) MatchesCategory(category string) bool {
	return category != "" && strings.Contains(b.ServiceName, category)
}

// BookingsFilter flexible filter for admin booking queries
type BookingsFilter struct {
	LocationID      *string
	Date            *time.Time
	Status          *BookingStatus
	IncludeInactive bool
	Limit           uint64 // 0 = no limit
}
