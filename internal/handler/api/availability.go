package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary List available slots
// @Description List bookable start times for a salon, service and date
// @Tags availability
// @Produce json
// @Param salon_id path string true "Salon ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param employee_id query string false "Employee ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /salons/{salon_id}/availability [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("salon_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid salon ID format", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing service_id", nil)
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	var employeeID *uuid.UUID
	if v := c.Query("employee_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employee_id format", nil)
			return
		}
		employeeID = &id
	}

	view, err := h.availability.ListSlots(c.Request.Context(), salonID, serviceID, date, employeeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayAvailabilityView(view))
}

// @Summary Find nearest available slot
// @Description Scan forward day by day for the first bookable slot
// @Tags availability
// @Produce json
// @Param salon_id path string true "Salon ID"
// @Param service_id query string true "Service ID"
// @Param from query string false "Search start date (YYYY-MM-DD), defaults to today"
// @Param employee_id query string false "Employee ID"
// @Param horizon_days query int false "Search horizon in days"
// @Success 200 {object} resdto.NearestSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /salons/{salon_id}/availability/nearest [get]
func (h *AvailabilityHandler) FindNearest(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("salon_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid salon ID format", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing service_id", nil)
		return
	}

	var from time.Time
	if v := c.Query("from"); v != "" {
		from, err = time.Parse("2006-01-02", v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date format", nil)
			return
		}
	}

	var employeeID *uuid.UUID
	if v := c.Query("employee_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employee_id format", nil)
			return
		}
		employeeID = &id
	}

	horizonDays := 0
	if v := c.Query("horizon_days"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil || iv < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "horizon_days must be a positive integer", nil)
			return
		}
		horizonDays = iv
	}

	view, err := h.availability.FindNearest(c.Request.Context(), salonID, serviceID, employeeID, from, horizonDays)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNearestSlotView(view))
}

func (h *AvailabilityHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrEmployeeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
	case errors.Is(err, errs.ErrNoSlotsInHorizon):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No available slot within the search horizon", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
