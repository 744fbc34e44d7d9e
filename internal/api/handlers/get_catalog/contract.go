package get_catalog

import (
	"context"

	"github.com/AM-Studio-19/am-booking/internal/service/catalog/models"
)

type CatalogService interface {
	GetCatalog(ctx context.Context, includeInactive bool) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
