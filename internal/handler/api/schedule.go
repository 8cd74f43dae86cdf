package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleQueries  queries.ScheduleQueries
}

func NewScheduleHandler(scheduleCommands commands.ScheduleCommands, scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleQueries:  scheduleQueries,
	}
}

// @Summary Get working hours
// @Description Get the weekly working-hour configuration of the salon
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WeekdayHoursResponse
// @Failure 401 {object} map[string]string
// @Router /schedule/working-hours [get]
func (h *ScheduleHandler) GetWorkingHours(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrMissingActor, "Internal server error", nil)
		return
	}

	views, err := h.scheduleQueries.WeekHours(c.Request.Context(), actor.SalonID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekdayHoursViews(views))
}

// @Summary Replace working hours
// @Description Replace the whole weekly working-hour configuration
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceWorkingHoursRequest true "Weekly configuration"
// @Success 200 {array} resdto.WeekdayHoursResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedule/working-hours [put]
func (h *ScheduleHandler) ReplaceWorkingHours(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrMissingActor, "Internal server error", nil)
		return
	}

	var req reqdto.ReplaceWorkingHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	views, err := h.scheduleCommands.ReplaceWorkingHours(c.Request.Context(), actor, req)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekdayHoursViews(views))
}

// @Summary List holidays
// @Description List the salon's holidays
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HolidayResponse
// @Failure 401 {object} map[string]string
// @Router /schedule/holidays [get]
func (h *ScheduleHandler) ListHolidays(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrMissingActor, "Internal server error", nil)
		return
	}

	views, err := h.scheduleQueries.Holidays(c.Request.Context(), actor.SalonID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHolidayViews(views))
}

// @Summary Add holiday
// @Description Close the salon for one calendar date
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHolidayRequest true "Holiday"
// @Success 201 {object} resdto.HolidayResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedule/holidays [post]
func (h *ScheduleHandler) AddHoliday(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrMissingActor, "Internal server error", nil)
		return
	}

	var req reqdto.CreateHolidayRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.scheduleCommands.AddHoliday(c.Request.Context(), actor, req)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHolidayView(view))
}

// @Summary Remove holiday
// @Description Delete one holiday of the salon
// @Tags schedule
// @Security BearerAuth
// @Param id path string true "Holiday ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedule/holidays/{id} [delete]
func (h *ScheduleHandler) RemoveHoliday(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrMissingActor, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid holiday ID format", nil)
		return
	}

	if err := h.scheduleCommands.RemoveHoliday(c.Request.Context(), actor, id); err != nil {
		writeScheduleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrHolidayNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Holiday not found", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid schedule configuration", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
