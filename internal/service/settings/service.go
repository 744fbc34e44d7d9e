package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	settingsRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/settings"
	"github.com/AM-Studio-19/am-booking/internal/service/settings/models"
)

// Service сервис настроек локаций: открытые даты, сетка слотов, исключения
type Service struct {
	settingsRepo SettingsRepository
	locations    []domain.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, locations []domain.Location, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		locations:    locations,
		logger:       logger,
	}
}

// Get возвращает настройки локации
// Локация без сохранённых настроек получает стандартную сетку слотов
func (s *Service) Get(ctx context.Context, locationID string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for location=%s", locationID)

	if err := s.checkLocation(locationID); err != nil {
		s.logger.Warn("Get: location id=%s not found", locationID)
		return nil, err
	}

	settings, err := s.settingsRepo.GetByLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: no settings for location=%s, returning defaults", locationID)
			return models.FromDomainSettings(&domain.LocationSettings{
				LocationID: locationID,
				TimeSlots:  domain.DefaultTimeSlots,
			}), nil
		}
		s.logger.Error("Get: repository error for location=%s: %v", locationID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched settings for location=%s", locationID)
	return models.FromDomainSettings(settings), nil
}

// Update заменяет настройки локации целиком
func (s *Service) Update(ctx context.Context, locationID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for location=%s, dates=%d, slots=%d",
		locationID, len(req.AllowedDates), len(req.TimeSlots))

	if err := s.checkLocation(locationID); err != nil {
		s.logger.Warn("Update: location id=%s not found", locationID)
		return nil, err
	}

	settings, err := req.ToDomainSettings(locationID)
	if err != nil {
		s.logger.Warn("Update: invalid settings for location=%s: %v", locationID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		s.logger.Error("Update: repository error for location=%s: %v", locationID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for location=%s", locationID)
	return models.FromDomainSettings(settings), nil
}

func (s *Service) checkLocation(locationID string) error {
	for _, location := range s.locations {
		if location.ID == locationID {
			return nil
		}
	}
	return ErrLocationNotFound
}
