package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	bookingRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/booking"
	"github.com/AM-Studio-19/am-booking/internal/service/bookings/models"
	"github.com/AM-Studio-19/am-booking/pkg/ptr"
)

type mockBookingRepo struct {
	byID        map[int64]*domain.Booking
	byCode      map[string][]*domain.Booking
	searched    []*domain.Booking
	filtered    []*domain.Booking
	err         error
	gotFilter   domain.BookingsFilter
	gotStatus   *domain.BookingStatus
	gotPayment  *domain.PaymentStatus
	gotReason   string
	gotLast5    string
	reportedAt  time.Time
	cancelledID int64
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	if b, ok := m.byID[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *mockBookingRepo) GetByCode(_ context.Context, code string) ([]*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	if group, ok := m.byCode[code]; ok {
		return group, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *mockBookingRepo) SearchByCustomer(_ context.Context, _ string) ([]*domain.Booking, error) {
	return m.searched, m.err
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.gotFilter = filter
	return m.filtered, m.err
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	m.gotStatus = &status
	return m.err
}

func (m *mockBookingRepo) UpdatePaymentStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	m.gotPayment = &status
	return m.err
}

func (m *mockBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	m.cancelledID = id
	m.gotReason = reason
	return m.err
}

func (m *mockBookingRepo) ReportPaymentByCode(_ context.Context, code string, last5 string, reportedAt time.Time) error {
	m.gotLast5 = last5
	m.reportedAt = reportedAt
	for _, b := range m.byCode[code] {
		b.PaymentStatus = domain.PaymentReported
		b.PaymentLast5 = &last5
		b.PaymentReportedAt = &reportedAt
	}
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, code string, guestIndex int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		Code:            code,
		LocationID:      "tainan",
		LocationName:    "台南店",
		CustomerName:    "王小姐",
		CustomerPhone:   "0912345678",
		ServiceName:     "頂級霧眉 (首次)",
		DurationMinutes: 120,
		Date:            time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "13:00",
		GuestIndex:      guestIndex,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentUnpaid,
		TotalPrice:      8800,
		Deposit:         1000,
	}
}

func newTestService(repo *mockBookingRepo, now time.Time) *Service {
	svc := NewService(repo, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestGetByCode(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	t.Run("group totals are summed over guests", func(t *testing.T) {
		second := testBooking(2, "abc-123", 1)
		second.TotalPrice = 9800
		repo := &mockBookingRepo{byCode: map[string][]*domain.Booking{
			"abc-123": {testBooking(1, "abc-123", 0), second},
		}}
		svc := newTestService(repo, now)

		resp, err := svc.GetByCode(context.Background(), "abc-123")
		require.NoError(t, err)

		assert.Equal(t, "abc-123", resp.Code)
		assert.Equal(t, "台南店", resp.LocationName)
		assert.Equal(t, int64(8800+9800), resp.TotalPrice)
		assert.Equal(t, int64(2000), resp.TotalDeposit)
		require.Len(t, resp.Bookings, 2)
		assert.Equal(t, 0, resp.Bookings[0].GuestIndex)
		assert.Equal(t, 1, resp.Bookings[1].GuestIndex)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		_, err := svc.GetByCode(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("blank code", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		_, err := svc.GetByCode(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSearch(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	t.Run("returns customer bookings", func(t *testing.T) {
		repo := &mockBookingRepo{searched: []*domain.Booking{testBooking(1, "abc-123", 0)}}
		svc := newTestService(repo, now)

		resp, err := svc.Search(context.Background(), "0912345678")
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "王小姐", resp.Bookings[0].CustomerName)
	})

	t.Run("blank query", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		_, err := svc.Search(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{err: errors.New("connection refused")}, now)

		_, err := svc.Search(context.Background(), "0912345678")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGetWithFilter(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	t.Run("limit defaults when unset", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newTestService(repo, now)

		_, err := svc.GetWithFilter(context.Background(), &models.GetBookingsRequest{})
		require.NoError(t, err)
		assert.Equal(t, uint64(domain.DefaultBookingsLimit), repo.gotFilter.Limit)
	})

	t.Run("status filter is validated", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		_, err := svc.GetWithFilter(context.Background(), &models.GetBookingsRequest{
			Status: ptr.Ptr("vanished"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("filter fields pass through", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := newTestService(repo, now)

		date := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
		_, err := svc.GetWithFilter(context.Background(), &models.GetBookingsRequest{
			LocationID:      ptr.Ptr("tainan"),
			Date:            &date,
			Status:          ptr.Ptr(string(domain.StatusConfirmed)),
			IncludeInactive: true,
			Limit:           50,
		})
		require.NoError(t, err)

		require.NotNil(t, repo.gotFilter.LocationID)
		assert.Equal(t, "tainan", *repo.gotFilter.LocationID)
		require.NotNil(t, repo.gotFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.gotFilter.Status)
		assert.True(t, repo.gotFilter.IncludeInactive)
		assert.Equal(t, uint64(50), repo.gotFilter.Limit)
	})
}

func TestUpdateStatus(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	t.Run("updates booking status", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{1: testBooking(1, "abc-123", 0)}}
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Status: ptr.Ptr(string(domain.StatusConfirmed)),
		})
		require.NoError(t, err)
		require.NotNil(t, repo.gotStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.gotStatus)
		assert.Nil(t, repo.gotPayment)
	})

	t.Run("updates both statuses at once", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{1: testBooking(1, "abc-123", 0)}}
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Status:        ptr.Ptr(string(domain.StatusConfirmed)),
			PaymentStatus: ptr.Ptr(string(domain.PaymentVerified)),
		})
		require.NoError(t, err)
		require.NotNil(t, repo.gotStatus)
		require.NotNil(t, repo.gotPayment)
		assert.Equal(t, domain.PaymentVerified, *repo.gotPayment)
	})

	t.Run("empty request", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid status value", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{1: testBooking(1, "abc-123", 0)}}
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Status: ptr.Ptr("vanished"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{
			Status: ptr.Ptr(string(domain.StatusConfirmed)),
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	t.Run("cancels pending booking", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{1: testBooking(1, "abc-123", 0)}}
		svc := newTestService(repo, now)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			CancellationReason: "臨時有事",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.cancelledID)
		assert.Equal(t, "臨時有事", repo.gotReason)
	})

	t.Run("already cancelled booking", func(t *testing.T) {
		cancelled := testBooking(1, "abc-123", 0)
		cancelled.Status = domain.StatusCancelled
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{1: cancelled}}
		svc := newTestService(repo, now)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		err := svc.Cancel(context.Background(), 404, &models.CancelBookingRequest{})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("oversized reason", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{1: testBooking(1, "abc-123", 0)}}
		svc := newTestService(repo, now)

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			CancellationReason: strings.Repeat("很", domain.MaxCancellationReasonLength),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestReportPayment(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	t.Run("marks whole group as reported", func(t *testing.T) {
		repo := &mockBookingRepo{byCode: map[string][]*domain.Booking{
			"abc-123": {testBooking(1, "abc-123", 0), testBooking(2, "abc-123", 1)},
		}}
		svc := newTestService(repo, now)

		resp, err := svc.ReportPayment(context.Background(), &models.ReportPaymentRequest{
			Code:  "abc-123",
			Last5: "54321",
		})
		require.NoError(t, err)

		assert.Equal(t, "54321", repo.gotLast5)
		assert.Equal(t, now, repo.reportedAt)
		require.Len(t, resp.Bookings, 2)
		for _, b := range resp.Bookings {
			assert.Equal(t, string(domain.PaymentReported), b.PaymentStatus)
			require.NotNil(t, b.PaymentLast5)
			assert.Equal(t, "54321", *b.PaymentLast5)
		}
	})

	t.Run("last5 validation", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		for _, last5 := range []string{"", "1234", "123456", "12a45", "１２３４５"} {
			_, err := svc.ReportPayment(context.Background(), &models.ReportPaymentRequest{
				Code:  "abc-123",
				Last5: last5,
			})
			assert.ErrorIs(t, err, ErrInvalidInput, "last5=%q", last5)
		}
	})

	t.Run("cancelled group cannot report", func(t *testing.T) {
		cancelled := testBooking(1, "abc-123", 0)
		cancelled.Status = domain.StatusCancelled
		repo := &mockBookingRepo{byCode: map[string][]*domain.Booking{"abc-123": {cancelled}}}
		svc := newTestService(repo, now)

		_, err := svc.ReportPayment(context.Background(), &models.ReportPaymentRequest{
			Code:  "abc-123",
			Last5: "54321",
		})
		assert.ErrorIs(t, err, ErrCannotReportPayment)
	})

	t.Run("already verified group cannot report again", func(t *testing.T) {
		verified := testBooking(1, "abc-123", 0)
		verified.PaymentStatus = domain.PaymentVerified
		repo := &mockBookingRepo{byCode: map[string][]*domain.Booking{"abc-123": {verified}}}
		svc := newTestService(repo, now)

		_, err := svc.ReportPayment(context.Background(), &models.ReportPaymentRequest{
			Code:  "abc-123",
			Last5: "54321",
		})
		assert.ErrorIs(t, err, ErrCannotReportPayment)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{}, now)

		_, err := svc.ReportPayment(context.Background(), &models.ReportPaymentRequest{
			Code:  "missing",
			Last5: "54321",
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
