package delete_closed_date

import "context"

type VenueService interface {
	DeleteClosedDate(ctx context.Context, dateStr string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
