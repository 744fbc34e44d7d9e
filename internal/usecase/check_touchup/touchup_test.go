package check_touchup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	"github.com/AM-Studio-19/am-booking/pkg/ptr"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func completedVisit(id int64, serviceName string, visitDate time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		CustomerName:  "王小姐",
		ServiceName:   serviceName,
		Date:          visitDate,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func touchupEntry(id int64, category, timeRange string, price int64) *domain.Service {
	return &domain.Service{
		ID:        id,
		Name:      category + "補色",
		Price:     price,
		Category:  category,
		Type:      domain.ServiceTypeTouchup,
		TimeRange: ptr.Ptr(timeRange),
		Active:    true,
	}
}

func TestElapsedMonths(t *testing.T) {
	tests := []struct {
		name      string
		visit     time.Time
		reference time.Time
		want      int
	}{
		{
			name:      "same month",
			visit:     date(2024, time.March, 1),
			reference: date(2024, time.March, 28),
			want:      0,
		},
		{
			name:      "day of month ignored",
			visit:     date(2024, time.January, 28),
			reference: date(2024, time.February, 1),
			want:      1,
		},
		{
			name:      "three calendar months",
			visit:     date(2024, time.January, 10),
			reference: date(2024, time.April, 5),
			want:      3,
		},
		{
			name:      "year boundary",
			visit:     date(2023, time.November, 15),
			reference: date(2024, time.February, 15),
			want:      3,
		},
		{
			name:      "several years",
			visit:     date(2021, time.June, 1),
			reference: date(2024, time.January, 1),
			want:      31,
		},
		{
			name:      "future visit clamps to zero",
			visit:     date(2024, time.August, 1),
			reference: date(2024, time.March, 1),
			want:      0,
		},
		{
			name:      "same date",
			visit:     date(2024, time.March, 1),
			reference: date(2024, time.March, 1),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, elapsedMonths(tt.visit, tt.reference))
		})
	}
}

func TestElapsedMonths_Monotonicity(t *testing.T) {
	// При фиксированной дате визита результат не убывает с ростом референсной даты
	visit := date(2024, time.January, 10)

	prev := 0
	for offset := 0; offset < 36; offset++ {
		reference := visit.AddDate(0, offset, 3)
		months := elapsedMonths(visit, reference)
		assert.GreaterOrEqual(t, months, prev, "reference=%s", reference)
		prev = months
	}
}

func TestClassifyWindow(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "3個月內"},
		{2, "3個月內"},
		{3, "3個月內"},
		{4, "半年內"},
		{6, "半年內"},
		{7, "一年內"},
		{12, "一年內"},
		{13, "一年半內"},
		{18, "一年半內"},
		{19, "兩年內"},
		{24, "兩年內"},
		{25, domain.WindowLabelRedo},
		{30, domain.WindowLabelRedo},
		{100, domain.WindowLabelRedo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyWindow(tt.months, domain.DefaultTouchupWindows),
			"months=%d", tt.months)
	}
}

func TestClassifyWindow_TotalCoverage(t *testing.T) {
	// Каждое неотрицательное число месяцев попадает ровно в одно окно
	for months := 0; months <= 120; months++ {
		label := classifyWindow(months, domain.DefaultTouchupWindows)
		assert.NotEmpty(t, label, "months=%d", months)
	}
}

func TestFindCatalogEntry(t *testing.T) {
	catalog := []*domain.Service{
		touchupEntry(1, "霧眉", "3個月內", 2000),
		touchupEntry(2, "霧眉", "半年內", 3000),
		touchupEntry(3, "霧唇", "3個月內", 2500),
	}

	t.Run("exact match", func(t *testing.T) {
		entry := findCatalogEntry("霧眉", "半年內", catalog)
		require.NotNil(t, entry)
		assert.Equal(t, int64(3000), entry.Price)
	})

	t.Run("containment match", func(t *testing.T) {
		// Студия пишет расширенные тексты в time_range
		catalog := []*domain.Service{
			touchupEntry(1, "霧眉", "3個月內 (限眉)", 2000),
		}
		entry := findCatalogEntry("霧眉", "3個月內", catalog)
		require.NotNil(t, entry)
		assert.Equal(t, int64(2000), entry.Price)
	})

	t.Run("category must match exactly", func(t *testing.T) {
		entry := findCatalogEntry("霧唇", "半年內", catalog)
		assert.Nil(t, entry)
	})

	t.Run("first-time entries are skipped", func(t *testing.T) {
		catalog := []*domain.Service{
			{
				ID:        1,
				Category:  "霧眉",
				Type:      domain.ServiceTypeFirstTime,
				TimeRange: ptr.Ptr("3個月內"),
				Price:     8800,
			},
		}
		assert.Nil(t, findCatalogEntry("霧眉", "3個月內", catalog))
	})

	t.Run("nil time range is skipped", func(t *testing.T) {
		catalog := []*domain.Service{
			{ID: 1, Category: "霧眉", Type: domain.ServiceTypeTouchup, Price: 2000},
		}
		assert.Nil(t, findCatalogEntry("霧眉", "3個月內", catalog))
	})

	t.Run("first match wins in catalog order", func(t *testing.T) {
		catalog := []*domain.Service{
			touchupEntry(1, "霧眉", "3個月內", 2000),
			touchupEntry(2, "霧眉", "3個月內 (優惠)", 1500),
		}
		entry := findCatalogEntry("霧眉", "3個月內", catalog)
		require.NotNil(t, entry)
		assert.Equal(t, int64(1), entry.ID)
	})

	t.Run("no match is a valid outcome", func(t *testing.T) {
		assert.Nil(t, findCatalogEntry("霧眉", domain.WindowLabelRedo, catalog))
	})
}

func TestResolveTouchup(t *testing.T) {
	reference := date(2024, time.April, 5)
	catalog := []*domain.Service{
		touchupEntry(1, "霧眉", "3個月內", 2000),
		touchupEntry(2, "霧眉", "半年內", 3000),
	}

	t.Run("matches price for recent visit", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "頂級霧眉 (首次)", date(2024, time.January, 10)),
		}

		resolved, err := resolveTouchup("霧眉", history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)

		assert.Equal(t, "霧眉", resolved.Category)
		assert.Equal(t, date(2024, time.January, 10), resolved.LastVisitDate)
		assert.Equal(t, 3, resolved.ElapsedMonths)
		assert.Equal(t, "3個月內", resolved.WindowLabel)
		require.NotNil(t, resolved.MatchedPrice)
		assert.Equal(t, int64(2000), *resolved.MatchedPrice)
	})

	t.Run("most recent visit is selected", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "霧眉", date(2023, time.June, 1)),
			completedVisit(2, "霧眉", date(2023, time.September, 15)),
		}

		resolved, err := resolveTouchup("霧眉", history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		assert.Equal(t, date(2023, time.September, 15), resolved.LastVisitDate)
	})

	t.Run("equal dates keep the first record in provider order", func(t *testing.T) {
		// Провайдер истории сортирует от новых к старым; при равных датах
		// остается первая встреченная запись
		sameDay := date(2023, time.September, 15)
		history := []*domain.Booking{
			completedVisit(10, "霧眉 第一位", sameDay),
			completedVisit(11, "霧眉 第二位", sameDay),
		}

		resolved, err := resolveTouchup("霧眉", history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		assert.Equal(t, sameDay, resolved.LastVisitDate)
		assert.Equal(t, elapsedMonths(sameDay, reference), resolved.ElapsedMonths)
	})

	t.Run("no price for window still returns record", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "霧眉", date(2021, time.January, 1)),
		}

		resolved, err := resolveTouchup("霧眉", history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		assert.Equal(t, domain.WindowLabelRedo, resolved.WindowLabel)
		assert.Nil(t, resolved.MatchedPrice)
	})

	t.Run("cancelled bookings are not visits", func(t *testing.T) {
		cancelled := completedVisit(1, "霧眉", date(2024, time.January, 10))
		cancelled.Status = domain.StatusCancelled

		_, err := resolveTouchup("霧眉", []*domain.Booking{cancelled}, catalog, domain.DefaultTouchupWindows, reference)
		assert.ErrorIs(t, err, ErrNoEligibleHistory)
	})

	t.Run("pending unpaid bookings are not visits", func(t *testing.T) {
		pending := completedVisit(1, "霧眉", date(2024, time.January, 10))
		pending.Status = domain.StatusPending
		pending.PaymentStatus = domain.PaymentUnpaid

		_, err := resolveTouchup("霧眉", []*domain.Booking{pending}, catalog, domain.DefaultTouchupWindows, reference)
		assert.ErrorIs(t, err, ErrNoEligibleHistory)
	})

	t.Run("pending with verified payment counts as visit", func(t *testing.T) {
		paid := completedVisit(1, "霧眉", date(2024, time.January, 10))
		paid.Status = domain.StatusPending
		paid.PaymentStatus = domain.PaymentVerified

		resolved, err := resolveTouchup("霧眉", []*domain.Booking{paid}, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		assert.Equal(t, "3個月內", resolved.WindowLabel)
	})

	t.Run("future bookings are excluded", func(t *testing.T) {
		future := completedVisit(1, "霧眉", date(2024, time.June, 1))

		_, err := resolveTouchup("霧眉", []*domain.Booking{future}, catalog, domain.DefaultTouchupWindows, reference)
		assert.ErrorIs(t, err, ErrNoEligibleHistory)
	})

	t.Run("category matched by substring of service name", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "韓式水霧眉+設計", date(2024, time.February, 1)),
		}

		resolved, err := resolveTouchup("霧眉", history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		assert.Equal(t, "霧眉", resolved.Category)
	})

	t.Run("no service name contains category", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "霧唇", date(2024, time.February, 1)),
		}

		_, err := resolveTouchup("霧眉", history, catalog, domain.DefaultTouchupWindows, reference)
		assert.ErrorIs(t, err, ErrNoEligibleHistory)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "霧眉", date(2024, time.January, 10)),
		}

		first, err := resolveTouchup("霧眉", history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		second, err := resolveTouchup("霧眉", history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("empty category is rejected", func(t *testing.T) {
		_, err := resolveTouchup("", nil, catalog, domain.DefaultTouchupWindows, reference)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero booking date is rejected", func(t *testing.T) {
		broken := &domain.Booking{ID: 7, ServiceName: "霧眉", Status: domain.StatusConfirmed}

		_, err := resolveTouchup("霧眉", []*domain.Booking{broken}, catalog, domain.DefaultTouchupWindows, reference)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative catalog price is rejected", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "霧眉", date(2024, time.January, 10)),
		}
		broken := []*domain.Service{touchupEntry(1, "霧眉", "3個月內", -1)}

		_, err := resolveTouchup("霧眉", history, broken, domain.DefaultTouchupWindows, reference)
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})
}

func TestResolveAllTouchups(t *testing.T) {
	reference := date(2024, time.April, 5)
	catalog := []*domain.Service{
		touchupEntry(1, "霧眉", "3個月內", 2000),
		touchupEntry(2, "霧唇", "半年內", 2500),
	}

	t.Run("resolves each category with history", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "霧眉", date(2024, time.February, 1)),
			completedVisit(2, "霧唇", date(2023, time.November, 20)),
		}

		records, err := resolveAllTouchups(domain.DefaultTouchupCategories, history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "霧眉", records[0].Category)
		require.NotNil(t, records[0].MatchedPrice)
		assert.Equal(t, int64(2000), *records[0].MatchedPrice)

		assert.Equal(t, "霧唇", records[1].Category)
		require.NotNil(t, records[1].MatchedPrice)
		assert.Equal(t, int64(2500), *records[1].MatchedPrice)
	})

	t.Run("categories without history are silently omitted", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "霧眉", date(2024, time.February, 1)),
		}

		records, err := resolveAllTouchups(domain.DefaultTouchupCategories, history, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "霧眉", records[0].Category)
	})

	t.Run("empty history yields empty result", func(t *testing.T) {
		records, err := resolveAllTouchups(domain.DefaultTouchupCategories, nil, catalog, domain.DefaultTouchupWindows, reference)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("invalid catalog aborts the batch", func(t *testing.T) {
		history := []*domain.Booking{
			completedVisit(1, "霧眉", date(2024, time.February, 1)),
		}
		broken := []*domain.Service{touchupEntry(1, "霧眉", "3個月內", -500)}

		_, err := resolveAllTouchups(domain.DefaultTouchupCategories, history, broken, domain.DefaultTouchupWindows, reference)
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})
}

func TestHasCompletedVisits(t *testing.T) {
	reference := date(2024, time.April, 5)

	assert.False(t, hasCompletedVisits(nil, reference))

	cancelled := completedVisit(1, "霧眉", date(2024, time.January, 1))
	cancelled.Status = domain.StatusCancelled
	assert.False(t, hasCompletedVisits([]*domain.Booking{cancelled}, reference))

	assert.True(t, hasCompletedVisits([]*domain.Booking{
		cancelled,
		completedVisit(2, "霧唇", date(2024, time.February, 1)),
	}, reference))
}
