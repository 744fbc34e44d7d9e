package check_touchup

import (
	"context"
	"time"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// SearchByCustomer возвращает историю бронирований клиента по имени или телефону
	// Порядок выдачи детерминирован (от новых к старым) - движок опирается на него при tie-break
	SearchByCustomer(ctx context.Context, query string) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	// List возвращает каталог услуг в детерминированном порядке (sort_order, id)
	List(ctx context.Context, onlyActive bool) ([]*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
