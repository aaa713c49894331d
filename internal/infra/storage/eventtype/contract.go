package eventtype

import "github.com/m04kA/GSO-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
