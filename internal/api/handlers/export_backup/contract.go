package export_backup

import (
	"context"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

type BackupService interface {
	Export(ctx context.Context) (*domain.Backup, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
