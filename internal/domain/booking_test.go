package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_CanReportPayment(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending, PaymentStatus: PaymentUnpaid}).CanReportPayment())
	assert.False(t, (&Booking{Status: StatusPending, PaymentStatus: PaymentReported}).CanReportPayment())
	assert.False(t, (&Booking{Status: StatusPending, PaymentStatus: PaymentVerified}).CanReportPayment())
	assert.False(t, (&Booking{Status: StatusCancelled, PaymentStatus: PaymentUnpaid}).CanReportPayment())
}

func TestBooking_IsCompletedVisit(t *testing.T) {
	reference := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		booking  Booking
		expected bool
	}{
		{
			name:     "confirmed past visit",
			booking:  Booking{Status: StatusConfirmed, PaymentStatus: PaymentUnpaid, Date: past},
			expected: true,
		},
		{
			name:     "pending with verified deposit",
			booking:  Booking{Status: StatusPending, PaymentStatus: PaymentVerified, Date: past},
			expected: true,
		},
		{
			name:     "pending with unpaid deposit",
			booking:  Booking{Status: StatusPending, PaymentStatus: PaymentUnpaid, Date: past},
			expected: false,
		},
		{
			name:     "pending with reported but unverified deposit",
			booking:  Booking{Status: StatusPending, PaymentStatus: PaymentReported, Date: past},
			expected: false,
		},
		{
			name:     "cancelled even with verified deposit",
			booking:  Booking{Status: StatusCancelled, PaymentStatus: PaymentVerified, Date: past},
			expected: false,
		},
		{
			name:     "confirmed future visit",
			booking:  Booking{Status: StatusConfirmed, PaymentStatus: PaymentUnpaid, Date: future},
			expected: false,
		},
		{
			name:     "visit on the reference date itself",
			booking:  Booking{Status: StatusConfirmed, PaymentStatus: PaymentUnpaid, Date: reference},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.booking.IsCompletedVisit(reference))
		})
	}
}

func TestBooking_MatchesCategory(t *testing.T) {
	b := &Booking{ServiceName: "頂級霧眉 (首次)"}

	assert.True(t, b.MatchesCategory("霧眉"))
	assert.False(t, b.MatchesCategory("霧唇"))
	assert.False(t, b.MatchesCategory(""))

	combo := &Booking{ServiceName: "韓式水霧眉+設計"}
	assert.True(t, combo.MatchesCategory("霧眉"))
}

func TestService_IsTouchup(t *testing.T) {
	assert.True(t, (&Service{Type: ServiceTypeTouchup}).IsTouchup())
	assert.False(t, (&Service{Type: ServiceTypeFirstTime}).IsTouchup())
	assert.False(t, (&Service{}).IsTouchup())
}
