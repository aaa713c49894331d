package check_conflict

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
)

type ConflictChecker interface {
	Execute(ctx context.Context, req *find_conflict.Request) (*find_conflict.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
