package manage_catalog_item

import (
	"context"

	"github.com/AM-Studio-19/am-booking/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, payload *models.ServicePayload) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, id int64, payload *models.ServicePayload) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id int64) error

	CreateDiscount(ctx context.Context, payload *models.DiscountPayload) (*models.DiscountResponse, error)
	UpdateDiscount(ctx context.Context, id int64, payload *models.DiscountPayload) (*models.DiscountResponse, error)
	DeleteDiscount(ctx context.Context, id int64) error

	CreateTemplate(ctx context.Context, payload *models.TemplatePayload) (*models.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, id int64, payload *models.TemplatePayload) (*models.TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
