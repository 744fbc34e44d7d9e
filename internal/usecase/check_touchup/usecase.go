package check_touchup

import (
	"context"
	"fmt"
	"strings"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// UseCase use case проверки цены коррекции для старых клиентов
// Чистый движок подбора живет в touchup.go, здесь - оркестрация:
// история и каталог загружаются один раз и трактуются как неизменяемые
// снимки на время одного вычисления
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	categories   []string
	windows      []domain.TouchupWindow
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// categories и windows - бизнес-конфигурация студии; пустые значения
// заменяются стандартными
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	categories []string,
	windows []domain.TouchupWindow,
	logger Logger,
) *UseCase {
	if len(categories) == 0 {
		categories = domain.DefaultTouchupCategories
	}
	if len(windows) == 0 {
		windows = domain.DefaultTouchupWindows
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		categories:   categories,
		windows:      windows,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки цены коррекции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckTouchup: query=%q, category=%v", req.Query, req.Category)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckTouchup: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем референсное время на все вычисление
	now := uc.timeProvider.Now()

	// 3. Загружаем историю бронирований клиента
	query := strings.TrimSpace(req.Query)
	history, err := uc.bookingRepo.SearchByCustomer(ctx, query)
	if err != nil {
		uc.logger.Error("CheckTouchup: failed to search bookings for query=%q: %v", query, err)
		return nil, fmt.Errorf("%w: failed to search bookings: %v", ErrInternal, err)
	}

	// 4. Загружаем снимок каталога (только активные услуги)
	services, err := uc.catalogRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("CheckTouchup: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	// 5. Нет ни одного завершенного визита - отдельный сигнал,
	// отличный от "визиты есть, но не по отслеживаемым категориям"
	if !hasCompletedVisits(history, now) {
		uc.logger.Info("CheckTouchup: no completed visits for query=%q", query)
		return nil, ErrNoHistory
	}

	// 6. Одиночный запрос по конкретной категории
	if req.Category != nil {
		resolved, err := resolveTouchup(*req.Category, history, services, uc.windows, now)
		if err != nil {
			if err == ErrNoEligibleHistory {
				uc.logger.Info("CheckTouchup: no eligible history for category=%q, query=%q", *req.Category, query)
			} else {
				uc.logger.Warn("CheckTouchup: resolve failed for category=%q: %v", *req.Category, err)
			}
			return nil, err
		}

		uc.logger.Info("CheckTouchup: resolved category=%q, window=%q, hasPrice=%t",
			resolved.Category, resolved.WindowLabel, resolved.HasPrice())

		return &Response{
			CustomerName: customerDisplayName(history, now),
			Records:      []TouchupRecord{toTouchupRecord(resolved)},
		}, nil
	}

	// 7. Batch-запрос по всем отслеживаемым категориям (best effort)
	resolved, err := resolveAllTouchups(uc.categories, history, services, uc.windows, now)
	if err != nil {
		uc.logger.Warn("CheckTouchup: batch resolve failed for query=%q: %v", query, err)
		return nil, err
	}

	if len(resolved) == 0 {
		uc.logger.Info("CheckTouchup: completed visits exist but none in tracked categories, query=%q", query)
		return nil, ErrNoCategoryHistory
	}

	records := make([]TouchupRecord, len(resolved))
	for i, r := range resolved {
		records[i] = toTouchupRecord(r)
	}

	uc.logger.Info("CheckTouchup: resolved %d categories for query=%q", len(records), query)

	return &Response{
		CustomerName: customerDisplayName(history, now),
		Records:      records,
	}, nil
}
