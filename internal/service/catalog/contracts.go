package catalog

import (
	"context"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// Коллекции каталога, управляемые через админку
const (
	CollectionServices  = "services"
	CollectionDiscounts = "discounts"
	CollectionTemplates = "templates"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id int64) error
}

// DiscountRepository интерфейс репозитория скидок
type DiscountRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Discount, error)
	GetByID(ctx context.Context, id int64) (*domain.Discount, error)
	Create(ctx context.Context, discount *domain.Discount) (*domain.Discount, error)
	Update(ctx context.Context, discount *domain.Discount) error
	Delete(ctx context.Context, id int64) error
}

// TemplateRepository интерфейс репозитория шаблонов сообщений
type TemplateRepository interface {
	List(ctx context.Context) ([]*domain.Template, error)
	Create(ctx context.Context, template *domain.Template) (*domain.Template, error)
	Update(ctx context.Context, template *domain.Template) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
