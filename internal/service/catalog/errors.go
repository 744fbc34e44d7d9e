package catalog

import "errors"

var (
	// ErrItemNotFound возвращается, когда элемент каталога не найден
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrUnknownCollection возвращается при обращении к неизвестной коллекции
	ErrUnknownCollection = errors.New("unknown catalog collection")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
