package settings

import (
	"context"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек локаций
type SettingsRepository interface {
	GetByLocation(ctx context.Context, locationID string) (*domain.LocationSettings, error)
	Upsert(ctx context.Context, settings *domain.LocationSettings) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
