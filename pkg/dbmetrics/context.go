package dbmetrics

import "context"

type executorCtxKey struct{}

// WithExecutor кладет исполнителя запросов (обычно транзакцию) в контекст
// Используется transaction manager'ами, чтобы репозитории выполняли запросы
// внутри активной транзакции без изменения сигнатур
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, executor)
}

// GetExecutor возвращает исполнителя из контекста, если он там есть
// Иначе возвращает fallback (обычный пул соединений репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorCtxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}
