package check_touchup

import (
	"context"

	checkTouchup "github.com/AM-Studio-19/am-booking/internal/usecase/check_touchup"
)

type CheckTouchupUseCase interface {
	Execute(ctx context.Context, req *checkTouchup.Request) (*checkTouchup.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
