package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки локации не найдены
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrEncodeJSON возвращается при ошибке сериализации JSONB полей
	ErrEncodeJSON = errors.New("settings.repository: failed to encode json")

	// ErrDecodeJSON возвращается при ошибке десериализации JSONB полей
	ErrDecodeJSON = errors.New("settings.repository: failed to decode json")
)
