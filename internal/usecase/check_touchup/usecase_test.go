package check_touchup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	"github.com/AM-Studio-19/am-booking/pkg/ptr"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
	gotQuery string
}

func (m *mockBookingRepo) SearchByCustomer(_ context.Context, query string) ([]*domain.Booking, error) {
	m.gotQuery = query
	return m.bookings, m.err
}

type mockCatalogRepo struct {
	services []*domain.Service
	err      error
}

func (m *mockCatalogRepo) List(_ context.Context, _ bool) ([]*domain.Service, error) {
	return m.services, m.err
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

func newTestUseCase(bookings *mockBookingRepo, catalog *mockCatalogRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, catalog, nil, nil, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_BatchResolution(t *testing.T) {
	now := date(2024, time.April, 5)
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		completedVisit(1, "頂級霧眉", date(2024, time.February, 1)),
		completedVisit(2, "霧唇 (首次)", date(2023, time.July, 10)),
	}}
	catalog := &mockCatalogRepo{services: []*domain.Service{
		touchupEntry(1, "霧眉", "3個月內", 2000),
		touchupEntry(2, "霧唇", "一年內", 3500),
	}}

	uc := newTestUseCase(bookings, catalog, now)

	resp, err := uc.Execute(context.Background(), &Request{Query: "0912345678"})
	require.NoError(t, err)

	assert.Equal(t, "0912345678", bookings.gotQuery)
	assert.Equal(t, "王小姐", resp.CustomerName)
	require.Len(t, resp.Records, 2)

	assert.Equal(t, "霧眉", resp.Records[0].Category)
	assert.Equal(t, "2024-02-01", resp.Records[0].LastVisitDate)
	assert.Equal(t, 2, resp.Records[0].ElapsedMonths)
	assert.Equal(t, "3個月內", resp.Records[0].WindowLabel)
	require.NotNil(t, resp.Records[0].MatchedPrice)
	assert.Equal(t, int64(2000), *resp.Records[0].MatchedPrice)

	assert.Equal(t, "霧唇", resp.Records[1].Category)
	assert.Equal(t, 9, resp.Records[1].ElapsedMonths)
	assert.Equal(t, "一年內", resp.Records[1].WindowLabel)
	require.NotNil(t, resp.Records[1].MatchedPrice)
	assert.Equal(t, int64(3500), *resp.Records[1].MatchedPrice)
}

func TestExecute_SingleCategory(t *testing.T) {
	now := date(2024, time.April, 5)
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		completedVisit(1, "霧眉", date(2023, time.January, 15)),
	}}
	catalog := &mockCatalogRepo{services: []*domain.Service{
		touchupEntry(1, "霧眉", "3個月內", 2000),
	}}

	uc := newTestUseCase(bookings, catalog, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Query:    "王小姐",
		Category: ptr.Ptr("霧眉"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)

	// 15 месяцев - окно "一年半內", цены на него в каталоге нет
	assert.Equal(t, 15, resp.Records[0].ElapsedMonths)
	assert.Equal(t, "一年半內", resp.Records[0].WindowLabel)
	assert.Nil(t, resp.Records[0].MatchedPrice)
}

func TestExecute_SingleCategoryNoEligibleHistory(t *testing.T) {
	now := date(2024, time.April, 5)
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		completedVisit(1, "霧唇", date(2024, time.January, 15)),
	}}
	catalog := &mockCatalogRepo{}

	uc := newTestUseCase(bookings, catalog, now)

	_, err := uc.Execute(context.Background(), &Request{
		Query:    "王小姐",
		Category: ptr.Ptr("霧眉"),
	})
	assert.ErrorIs(t, err, ErrNoEligibleHistory)
}

func TestExecute_NoHistoryAtAll(t *testing.T) {
	now := date(2024, time.April, 5)

	t.Run("empty search result", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockCatalogRepo{}, now)

		_, err := uc.Execute(context.Background(), &Request{Query: "0912345678"})
		assert.ErrorIs(t, err, ErrNoHistory)
	})

	t.Run("only cancelled bookings", func(t *testing.T) {
		cancelled := completedVisit(1, "霧眉", date(2024, time.January, 15))
		cancelled.Status = domain.StatusCancelled

		uc := newTestUseCase(&mockBookingRepo{bookings: []*domain.Booking{cancelled}}, &mockCatalogRepo{}, now)

		_, err := uc.Execute(context.Background(), &Request{Query: "0912345678"})
		assert.ErrorIs(t, err, ErrNoHistory)
	})
}

func TestExecute_NoCategoryHistory(t *testing.T) {
	// Завершенные визиты есть, но ни один не относится к отслеживаемым категориям
	now := date(2024, time.April, 5)
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		completedVisit(1, "美睫嫁接", date(2024, time.February, 1)),
	}}

	uc := newTestUseCase(bookings, &mockCatalogRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{Query: "0912345678"})
	assert.ErrorIs(t, err, ErrNoCategoryHistory)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockCatalogRepo{}, date(2024, time.April, 5))

	t.Run("empty query", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Query: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty category", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Query: "王小姐", Category: ptr.Ptr("")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_RepositoryErrors(t *testing.T) {
	now := date(2024, time.April, 5)
	dbErr := errors.New("connection refused")

	t.Run("booking search fails", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{err: dbErr}, &mockCatalogRepo{}, now)

		_, err := uc.Execute(context.Background(), &Request{Query: "0912345678"})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("catalog load fails", func(t *testing.T) {
		bookings := &mockBookingRepo{bookings: []*domain.Booking{
			completedVisit(1, "霧眉", date(2024, time.February, 1)),
		}}
		uc := newTestUseCase(bookings, &mockCatalogRepo{err: dbErr}, now)

		_, err := uc.Execute(context.Background(), &Request{Query: "0912345678"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_QueryIsTrimmed(t *testing.T) {
	now := date(2024, time.April, 5)
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		completedVisit(1, "霧眉", date(2024, time.February, 1)),
	}}
	catalog := &mockCatalogRepo{services: []*domain.Service{
		touchupEntry(1, "霧眉", "3個月內", 2000),
	}}

	uc := newTestUseCase(bookings, catalog, now)

	_, err := uc.Execute(context.Background(), &Request{Query: "  0912345678  "})
	require.NoError(t, err)
	assert.Equal(t, "0912345678", bookings.gotQuery)
}
