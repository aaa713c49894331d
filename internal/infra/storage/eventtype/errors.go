package eventtype

import "errors"

var (
	// ErrEventTypeNotFound возвращается, когда тип события не найден
	ErrEventTypeNotFound = errors.New("eventtype.repository: event type not found")

	ErrTransaction = errors.New("eventtype.repository: transaction error")
	ErrBuildQuery  = errors.New("eventtype.repository: failed to build query")
	ErrExecQuery   = errors.New("eventtype.repository: failed to execute query")
	ErrScanRow     = errors.New("eventtype.repository: failed to scan row")
)
