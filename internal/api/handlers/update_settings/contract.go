package update_settings

import (
	"context"

	"github.com/AM-Studio-19/am-booking/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, locationID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
