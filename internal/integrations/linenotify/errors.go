package linenotify

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("linenotify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от LINE API
	ErrInvalidResponse = errors.New("linenotify client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что LINE API недоступен и уведомление не доставлено
	ErrServiceDegraded = errors.New("linenotify unavailable: graceful degradation applied")
)
