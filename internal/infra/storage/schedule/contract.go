package schedule

import (
	"github.com/m04kA/BilliardBookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
