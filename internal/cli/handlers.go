package cli

import (
	addClosedDateHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/add_closed_date"
	checkSlotBookableHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/check_slot_bookable"
	createReservationHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/create_reservation"
	deleteClosedDateHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/delete_closed_date"
	getClosedDatesHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/get_closed_dates"
	getMaxDurationHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/get_max_duration"
	getReservationHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/get_schedule"
	getSchedulesHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/get_schedules"
	getTableReservationsHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/get_table_reservations"
	getTablesHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/get_tables"
	listSlotsHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/list_available_slots"
	rescheduleReservationHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/reschedule_reservation"
	updateReservationStatusHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/update_reservation_status"
	updateScheduleHandler "github.com/m04kA/BilliardBookingService/internal/api/handlers/update_schedule"
	reservationsService "github.com/m04kA/BilliardBookingService/internal/service/reservations"
	venueService "github.com/m04kA/BilliardBookingService/internal/service/venue"
	checkSlotBookableUC "github.com/m04kA/BilliardBookingService/internal/usecase/check_slot_bookable"
	createReservationUC "github.com/m04kA/BilliardBookingService/internal/usecase/create_reservation"
	getMaxDurationUC "github.com/m04kA/BilliardBookingService/internal/usecase/get_max_duration"
	listSlotsUC "github.com/m04kA/BilliardBookingService/internal/usecase/list_available_slots"
	rescheduleReservationUC "github.com/m04kA/BilliardBookingService/internal/usecase/reschedule_reservation"
)

// buildRoutes инициализирует сервисы, use cases и HTTP обработчики
func (a *app) buildRoutes() routes {
	// Сервисы
	reservationSvc := reservationsService.NewService(a.reservations, a.tables, a.txManager, a.log)
	venueSvc := venueService.NewService(a.schedules, a.tables, a.log)

	// Use cases
	listSlots := listSlotsUC.NewUseCase(a.engine, a.tables, a.metrics, a.location, a.log)
	getMaxDuration := getMaxDurationUC.NewUseCase(a.engine, a.tables, a.catalog, a.cfg.Venue.DurationCatalog, a.metrics, a.log)
	checkSlotBookable := checkSlotBookableUC.NewUseCase(a.engine, a.tables, a.metrics, a.log)
	createReservation := createReservationUC.NewUseCase(a.engine, a.reservations, a.tables, a.txManager, a.metrics, a.location, a.log)
	rescheduleReservation := rescheduleReservationUC.NewUseCase(a.engine, a.reservations, a.tables, a.txManager, a.metrics, a.location, a.log)

	return routes{
		listTables:        getTablesHandler.NewHandler(venueSvc, a.log).Handle,
		listSlots:         listSlotsHandler.NewHandler(listSlots, a.log).Handle,
		getMaxDuration:    getMaxDurationHandler.NewHandler(getMaxDuration, a.log).Handle,
		checkSlotBookable: checkSlotBookableHandler.NewHandler(checkSlotBookable, a.log).Handle,

		createReservation:       createReservationHandler.NewHandler(createReservation, a.log).Handle,
		getReservation:          getReservationHandler.NewHandler(reservationSvc, a.log).Handle,
		rescheduleReservation:   rescheduleReservationHandler.NewHandler(rescheduleReservation, a.log).Handle,
		updateReservationStatus: updateReservationStatusHandler.NewHandler(reservationSvc, a.log).Handle,
		getTableReservations:    getTableReservationsHandler.NewHandler(reservationSvc, a.log).Handle,

		getSchedules:     getSchedulesHandler.NewHandler(venueSvc, a.log).Handle,
		getSchedule:      getScheduleHandler.NewHandler(venueSvc, a.log).Handle,
		updateSchedule:   updateScheduleHandler.NewHandler(venueSvc, a.log).Handle,
		getClosedDates:   getClosedDatesHandler.NewHandler(venueSvc, a.log).Handle,
		addClosedDate:    addClosedDateHandler.NewHandler(venueSvc, a.log).Handle,
		deleteClosedDate: deleteClosedDateHandler.NewHandler(venueSvc, a.log).Handle,
	}
}
