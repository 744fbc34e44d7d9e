package check_touchup

import "errors"

var (
	// ErrNoHistory возвращается, когда у клиента нет ни одного завершенного визита
	ErrNoHistory = errors.New("check_touchup: no completed visits found")

	// ErrNoCategoryHistory возвращается, когда завершенные визиты есть,
	// но ни один не относится к отслеживаемым категориям
	ErrNoCategoryHistory = errors.New("check_touchup: no visits in tracked categories")

	// ErrNoEligibleHistory возвращается при запросе по конкретной категории,
	// если по ней нет завершенных визитов
	ErrNoEligibleHistory = errors.New("check_touchup: no eligible history for category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_touchup: invalid input data")

	// ErrInvalidCatalog возвращается при некорректных данных каталога
	// (отрицательная цена и т.п.) - fail fast вместо тихой выдачи мусора
	ErrInvalidCatalog = errors.New("check_touchup: invalid catalog data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_touchup: internal error")
)
