package check_consecutive

import (
	"context"

	checkConsecutive "github.com/m04kA/TurfBookingService/internal/usecase/check_consecutive"
)

type CheckConsecutiveUseCase interface {
	Execute(ctx context.Context, req *checkConsecutive.Request) (*checkConsecutive.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
