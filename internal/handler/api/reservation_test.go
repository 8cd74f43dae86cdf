//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/staff"
	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actor        shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.actor = shared.Actor{
		AccountID: uuid.New(),
		SalonID:   uuid.New(),
		Role:      staff.RoleStaff,
	}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", s.actor)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.GET("/reservations", authMiddleware, s.handler.ListReservations)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.GetReservation)
	s.router.PATCH("/reservations/:id/reschedule", authMiddleware, s.handler.RescheduleReservation)
	s.router.PATCH("/reservations/:id/status", authMiddleware, s.handler.UpdateReservationStatus)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func conflictAt(start time.Time) *commands.ConflictError {
	iv := schedule.MustInterval(start, start.Add(time.Hour))
	return &commands.ConflictError{Requested: iv, Existing: iv}
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	rb := builder.NewReservationBuilder()
	reqBody := rb.BuildCreateRequestDTO()
	returnView := rb.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.EmployeeID, response.EmployeeID)
		s.True(returnView.EndTime.Equal(response.EndTime))
		s.Equal("requested", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing service_id", mutate: testutil.Field("service_id", nil)},
			{name: "missing employee_id", mutate: testutil.Field("employee_id", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing kind", mutate: testutil.Field("kind", nil)},
			{name: "unknown kind", mutate: testutil.Field("kind", "walk-in")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow noon")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 Conflict carries the blocking interval", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, conflictAt(rb.StartTime)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflicts with an existing reservation")

		var body map[string]any
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		detail, ok := body["detail"].(map[string]any)
		s.Require().True(ok)
		s.NotEmpty(detail["conflict"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "service not found",
				commandsError:  errs.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "employee not found",
				commandsError:  errs.ErrEmployeeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Employee not found",
			},
			{
				name:           "closed day",
				commandsError:  errs.ErrClosedDay,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "closed on this day",
			},
			{
				name:           "during break",
				commandsError:  errs.ErrDuringBreak,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "falls into the break",
			},
			{
				name:           "outside working hours",
				commandsError:  errs.ErrOutsideWorkingHours,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "outside working hours",
			},
			{
				name:           "employee not qualified",
				commandsError:  errs.ErrEmployeeNotQualified,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not qualified",
			},
			{
				name:           "past start time",
				commandsError:  errs.ErrPastStartTime,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "in the past",
			},
			{
				name:           "cross-salon reference",
				commandsError:  errs.ErrCrossSalonReference,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRescheduleReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestRescheduleReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/reschedule"

	rb := builder.NewReservationBuilder()
	reqBody := rb.BuildRescheduleRequestDTO()
	returnView := rb.BuildView()
	returnView.ID = reservationID
	returnView.StartTime = reqBody.StartTime
	returnView.EndTime = reqBody.StartTime.Add(time.Hour)

	s.Run("success: returns 200 OK with moved reservation", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), s.actor, reservationID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
		s.True(reqBody.StartTime.Equal(response.StartTime))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/reservations/invalid-uuid/reschedule"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, invalidURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 400 Bad Request when start_time is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("start_time", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  errs.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "slot already taken",
				commandsError:  conflictAt(reqBody.StartTime),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "conflicts with an existing reservation",
			},
			{
				name:           "new start in the past",
				commandsError:  errs.ErrPastStartTime,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "in the past",
			},
			{
				name:           "cancelled reservation cannot move",
				commandsError:  errs.ErrInvalidStatusTransition,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid status transition",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reschedule(gomock.Any(), s.actor, reservationID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateReservationStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateReservationStatus() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/status"

	reqBody := map[string]any{"status": "confirmed"}
	returnView := builder.NewReservationBuilder().WithStatus("confirmed").BuildView()
	returnView.ID = reservationID

	s.Run("success: returns 200 OK with updated status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.actor, reservationID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing status", body: map[string]any{}},
			// Requested is the initial state, never a transition target.
			{name: "status requested rejected", body: map[string]any{"status": "requested"}},
			{name: "unknown status", body: map[string]any{"status": "done"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 on invalid transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.actor, reservationID, gomock.Any()).
			Return(nil, errs.ErrInvalidStatusTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("error: 404 for missing reservation", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.actor, reservationID, gomock.Any()).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	returnView := builder.NewReservationBuilder().BuildView()
	returnView.ID = reservationID

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor.SalonID, reservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
		s.Equal(returnView.ServiceName, response.ServiceName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/reservations/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 Not Found for other salon's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor.SalonID, reservationID).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListReservations() {
	baseURL := "/reservations"
	url := baseURL + "?from=2026-09-01&to=2026-09-08"

	s.Run("success: returns reservation list for the range", func() {
		listItems := []*queries.ReservationListItem{
			builder.NewReservationBuilder().BuildListItem(),
			builder.NewReservationBuilder().WithStatus("confirmed").BuildListItem(),
		}
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

		s.mockQueries.EXPECT().ListBySalon(gomock.Any(), s.actor.SalonID, from, to).
			Return(listItems, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, len(listItems))
	})

	s.Run("error: 400 Bad Request for malformed range", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "missing from", url: baseURL + "?to=2026-09-08"},
			{name: "missing to", url: baseURL + "?from=2026-09-01"},
			{name: "malformed from", url: baseURL + "?from=Sep-1&to=2026-09-08"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListBySalon(gomock.Any(), s.actor.SalonID, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
