package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	serviceRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/catalog"
	discountRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/discount"
	templateRepo "github.com/AM-Studio-19/am-booking/internal/infra/storage/template"
	"github.com/AM-Studio-19/am-booking/internal/service/catalog/models"
)

// Service сервис каталога студии: услуги, скидки и шаблоны сообщений
type Service struct {
	serviceRepo  ServiceRepository
	discountRepo DiscountRepository
	templateRepo TemplateRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	discountRepo DiscountRepository,
	templateRepo TemplateRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		discountRepo: discountRepo,
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// GetCatalog возвращает совокупный каталог студии
// Клиентская часть получает только активные позиции, админка - всё
func (s *Service) GetCatalog(ctx context.Context, includeInactive bool) (*models.CatalogResponse, error) {
	s.logger.Info("GetCatalog: fetching catalog, includeInactive=%v", includeInactive)

	services, err := s.serviceRepo.List(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - failed to list services: %v", ErrInternal, err)
	}

	discounts, err := s.discountRepo.List(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list discounts: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - failed to list discounts: %v", ErrInternal, err)
	}

	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list templates: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - failed to list templates: %v", ErrInternal, err)
	}

	s.logger.Info("GetCatalog: fetched %d services, %d discounts, %d templates",
		len(services), len(discounts), len(templates))

	return &models.CatalogResponse{
		Services:  models.FromDomainServiceList(services),
		Discounts: models.FromDomainDiscountList(discounts),
		Templates: models.FromDomainTemplateList(templates),
	}, nil
}

// Услуги

// CreateService создает услугу в каталоге
func (s *Service) CreateService(ctx context.Context, payload *models.ServicePayload) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service name=%s", payload.Name)

	if err := validateServicePayload(payload); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, payload.ToDomainService(0))
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService обновляет услугу каталога
func (s *Service) UpdateService(ctx context.Context, id int64, payload *models.ServicePayload) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	if err := validateServicePayload(payload); err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	service := payload.ToDomainService(id)
	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	updated, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateService: failed to re-read service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу из каталога
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrItemNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: successfully deleted service id=%d", id)
	return nil
}

// Скидки

// CreateDiscount создает скидку
func (s *Service) CreateDiscount(ctx context.Context, payload *models.DiscountPayload) (*models.DiscountResponse, error) {
	s.logger.Info("CreateDiscount: creating discount name=%s", payload.Name)

	if err := validateDiscountPayload(payload); err != nil {
		s.logger.Warn("CreateDiscount: validation failed: %v", err)
		return nil, err
	}

	created, err := s.discountRepo.Create(ctx, payload.ToDomainDiscount(0))
	if err != nil {
		s.logger.Error("CreateDiscount: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateDiscount - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDiscount: successfully created discount id=%d", created.ID)
	return models.FromDomainDiscount(created), nil
}

// UpdateDiscount обновляет скидку
func (s *Service) UpdateDiscount(ctx context.Context, id int64, payload *models.DiscountPayload) (*models.DiscountResponse, error) {
	s.logger.Info("UpdateDiscount: updating discount id=%d", id)

	if err := validateDiscountPayload(payload); err != nil {
		s.logger.Warn("UpdateDiscount: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	discount := payload.ToDomainDiscount(id)
	if err := s.discountRepo.Update(ctx, discount); err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("UpdateDiscount: discount id=%d not found", id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateDiscount: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDiscount - repository error: %v", ErrInternal, err)
	}

	updated, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateDiscount: failed to re-read discount id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDiscount - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDiscount: successfully updated discount id=%d", id)
	return models.FromDomainDiscount(updated), nil
}

// DeleteDiscount удаляет скидку
func (s *Service) DeleteDiscount(ctx context.Context, id int64) error {
	s.logger.Info("DeleteDiscount: deleting discount id=%d", id)

	if err := s.discountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("DeleteDiscount: discount id=%d not found", id)
			return ErrItemNotFound
		}
		s.logger.Error("DeleteDiscount: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteDiscount - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDiscount: successfully deleted discount id=%d", id)
	return nil
}

// Шаблоны сообщений

// CreateTemplate создает шаблон сообщения
func (s *Service) CreateTemplate(ctx context.Context, payload *models.TemplatePayload) (*models.TemplateResponse, error) {
	s.logger.Info("CreateTemplate: creating template title=%s", payload.Title)

	if err := validateTemplatePayload(payload); err != nil {
		s.logger.Warn("CreateTemplate: validation failed: %v", err)
		return nil, err
	}

	created, err := s.templateRepo.Create(ctx, payload.ToDomainTemplate(0))
	if err != nil {
		s.logger.Error("CreateTemplate: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTemplate: successfully created template id=%d", created.ID)
	return models.FromDomainTemplate(created), nil
}

// UpdateTemplate обновляет шаблон сообщения
func (s *Service) UpdateTemplate(ctx context.Context, id int64, payload *models.TemplatePayload) (*models.TemplateResponse, error) {
	s.logger.Info("UpdateTemplate: updating template id=%d", id)

	if err := validateTemplatePayload(payload); err != nil {
		s.logger.Warn("UpdateTemplate: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	template := payload.ToDomainTemplate(id)
	if err := s.templateRepo.Update(ctx, template); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("UpdateTemplate: template id=%d not found", id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateTemplate: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateTemplate: successfully updated template id=%d", id)
	return models.FromDomainTemplate(template), nil
}

// DeleteTemplate удаляет шаблон сообщения
func (s *Service) DeleteTemplate(ctx context.Context, id int64) error {
	s.logger.Info("DeleteTemplate: deleting template id=%d", id)

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("DeleteTemplate: template id=%d not found", id)
			return ErrItemNotFound
		}
		s.logger.Error("DeleteTemplate: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTemplate: successfully deleted template id=%d", id)
	return nil
}

// Валидация

func validateServicePayload(payload *models.ServicePayload) error {
	if strings.TrimSpace(payload.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if payload.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if strings.TrimSpace(payload.Category) == "" {
		return fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}

	serviceType := domain.ServiceType(payload.Type)
	if serviceType != domain.ServiceTypeFirstTime && serviceType != domain.ServiceTypeTouchup {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, payload.Type)
	}

	// Позиция типа 補色 без метки срока бесполезна для расчёта цены
	if serviceType == domain.ServiceTypeTouchup {
		if payload.TimeRange == nil || strings.TrimSpace(*payload.TimeRange) == "" {
			return fmt.Errorf("%w: touch-up service requires a timeRange", ErrInvalidInput)
		}
	}

	if payload.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}

	return nil
}

func validateDiscountPayload(payload *models.DiscountPayload) error {
	if strings.TrimSpace(payload.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if payload.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateTemplatePayload(payload *models.TemplatePayload) error {
	if strings.TrimSpace(payload.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(payload.Content) == "" {
		return fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
	}
	return nil
}
