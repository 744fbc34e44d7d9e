package create_booking

import (
	"context"
	"time"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// DiscountRepository интерфейс репозитория скидок
type DiscountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Discount, error)
}

// SettingsRepository интерфейс репозитория настроек локаций
type SettingsRepository interface {
	GetByLocation(ctx context.Context, locationID string) (*domain.LocationSettings, error)
}

// LineClient интерфейс клиента LINE для уведомлений
type LineClient interface {
	PushMessageWithGracefulDegradation(ctx context.Context, to string, text string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
