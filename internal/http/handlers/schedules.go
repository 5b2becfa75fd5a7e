package handlers

import (
	"net/http"

	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/schedules/search
func SearchSchedules(c *gin.Context) {
	var params models.ScheduleSearchParams
	if !BindJSONOrError(c, &params) {
		return
	}
	schedules, err := services.ScheduleService{}.Search(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GET /api/schedules/:id
func GetScheduleByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	sched, err := services.ScheduleService{}.GetSchedule(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// GET /api/schedules/:id/seats
func GetScheduleSeats(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	seats, err := services.SeatService{}.SeatMap(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}

// GET /api/schedules/:id/bookings (driver)
func GetScheduleBookings(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	bookings, err := services.BookingService{}.ListForSchedule(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
