package check_touchup

import (
	"fmt"
	"strings"
	"time"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// elapsedMonths вычисляет календарную разницу в месяцах между датой визита
// и референсной датой: (Δлет)*12 + (Δмесяцев)
//
// День месяца сознательно игнорируется - это политика студии, а не баг:
// визит 28-го числа и запрос 1-го числа следующего месяца считаются
// одним прошедшим месяцем. Отрицательный результат (визит в будущем)
// прижимается к нулю
func elapsedMonths(visitDate, referenceDate time.Time) int {
	years := referenceDate.Year() - visitDate.Year()
	months := int(referenceDate.Month()) - int(visitDate.Month())

	result := years*12 + months
	if result < 0 {
		return 0
	}
	return result
}

// classifyWindow сопоставляет количество прошедших месяцев с временным окном
// Таблица окон упорядочена по возрастанию верхней границы (включительно),
// побеждает первое окно с границей >= months. За пределами последнего окна
// возвращается domain.WindowLabelRedo - скидка на коррекцию не действует
func classifyWindow(months int, windows []domain.TouchupWindow) string {
	for _, w := range windows {
		if months <= w.MaxMonths {
			return w.Label
		}
	}
	return domain.WindowLabelRedo
}

// findCatalogEntry ищет в каталоге запись коррекции для категории и окна
//
// Запись подходит, если её time_range равен названию окна ИЛИ содержит его
// как подстроку - студия пишет в каталоге расширенные тексты вроде
// "3個月內 (限眉)", и точное сравнение их бы не находило
//
// При нескольких совпадениях побеждает первая запись в порядке каталога
// (sort_order, id) - порядок управляется админкой и детерминирован.
// Отсутствие записи - валидный исход, возвращается nil
func findCatalogEntry(category string, windowLabel string, services []*domain.Service) *domain.Service {
	for _, s := range services {
		if s.Category != category || !s.IsTouchup() || s.TimeRange == nil {
			continue
		}
		if *s.TimeRange == windowLabel || strings.Contains(*s.TimeRange, windowLabel) {
			return s
		}
	}
	return nil
}

// resolveTouchup подбирает цену коррекции для одной категории
//
// Из истории отбираются завершенные визиты (подтвержденные или с проверенной
// оплатой) с датой строго раньше referenceDate, чьё название услуги содержит
// категорию. Из них берется самый поздний по дате; при равных датах побеждает
// запись, стоящая раньше в выдаче провайдера (стабильный выбор)
func resolveTouchup(
	category string,
	history []*domain.Booking,
	services []*domain.Service,
	windows []domain.TouchupWindow,
	referenceDate time.Time,
) (*domain.ResolvedTouchup, error) {
	if err := validateResolveInputs(category, history, services); err != nil {
		return nil, err
	}

	var lastVisit *domain.Booking
	for _, b := range history {
		if !b.IsCompletedVisit(referenceDate) || !b.MatchesCategory(category) {
			continue
		}
		// Строгое сравнение: при равных датах остается первая встреченная запись
		if lastVisit == nil || b.Date.After(lastVisit.Date) {
			lastVisit = b
		}
	}

	if lastVisit == nil {
		return nil, ErrNoEligibleHistory
	}

	months := elapsedMonths(lastVisit.Date, referenceDate)
	windowLabel := classifyWindow(months, windows)

	resolved := &domain.ResolvedTouchup{
		Category:      category,
		LastVisitDate: lastVisit.Date,
		ElapsedMonths: months,
		WindowLabel:   windowLabel,
	}

	// Отсутствие цены - валидный терминальный исход: окно вычислено,
	// но каталог его не тарифицирует ("уточните цену у студии")
	if entry := findCatalogEntry(category, windowLabel, services); entry != nil {
		price := entry.Price
		resolved.MatchedPrice = &price
	}

	return resolved, nil
}

// resolveAllTouchups подбирает цены коррекции по всем категориям (best effort)
// Категории без завершенных визитов молча пропускаются - в отличие от
// одиночного запроса, который сигнализирует ErrNoEligibleHistory
func resolveAllTouchups(
	categories []string,
	history []*domain.Booking,
	services []*domain.Service,
	windows []domain.TouchupWindow,
	referenceDate time.Time,
) ([]*domain.ResolvedTouchup, error) {
	records := make([]*domain.ResolvedTouchup, 0, len(categories))

	for _, category := range categories {
		resolved, err := resolveTouchup(category, history, services, windows, referenceDate)
		if err != nil {
			if err == ErrNoEligibleHistory {
				continue
			}
			return nil, err
		}
		records = append(records, resolved)
	}

	return records, nil
}

// validateResolveInputs проверяет входные данные движка перед вычислением
// Лучше явная ошибка, чем мусор в расчете
func validateResolveInputs(category string, history []*domain.Booking, services []*domain.Service) error {
	if category == "" {
		return fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}

	for _, b := range history {
		if b.Date.IsZero() {
			return fmt.Errorf("%w: booking id=%d has no date", ErrInvalidInput, b.ID)
		}
	}

	for _, s := range services {
		if s.Price < 0 {
			return fmt.Errorf("%w: service id=%d has negative price", ErrInvalidCatalog, s.ID)
		}
	}

	return nil
}

// hasCompletedVisits проверяет наличие хотя бы одного завершенного визита
// независимо от категории
func hasCompletedVisits(history []*domain.Booking, referenceDate time.Time) bool {
	for _, b := range history {
		if b.IsCompletedVisit(referenceDate) {
			return true
		}
	}
	return false
}

// customerDisplayName возвращает имя клиента из первого завершенного визита
func customerDisplayName(history []*domain.Booking, referenceDate time.Time) string {
	for _, b := range history {
		if b.IsCompletedVisit(referenceDate) {
			return b.CustomerName
		}
	}
	return ""
}
