//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/httptest"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	// Availability is a public read surface; no auth middleware.
	s.router.GET("/salons/:salon_id/availability", s.handler.ListSlots)
	s.router.GET("/salons/:salon_id/availability/nearest", s.handler.FindNearest)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestListSlots
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestListSlots() {
	salonID := uuid.New()
	serviceID := uuid.New()
	baseURL := "/salons/" + salonID.String() + "/availability"
	url := baseURL + "?service_id=" + serviceID.String() + "&date=2026-09-08"
	date := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	returnView := &queries.DayAvailabilityView{
		SalonID:   salonID,
		ServiceID: serviceID,
		Date:      "2026-09-08",
		Slots:     []string{"10:00", "10:30", "14:00"},
	}

	s.Run("success: returns 200 OK with slots for the day", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), salonID, serviceID, date, (*uuid.UUID)(nil)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(salonID, response.SalonID)
		s.Equal("2026-09-08", response.Date)
		s.Equal([]string{"10:00", "10:30", "14:00"}, response.Slots)
	})

	s.Run("success: passes employee filter through", func() {
		employeeID := uuid.New()
		filteredURL := url + "&employee_id=" + employeeID.String()
		filteredView := &queries.DayAvailabilityView{
			SalonID:    salonID,
			ServiceID:  serviceID,
			EmployeeID: &employeeID,
			Date:       "2026-09-08",
			Slots:      []string{"10:00"},
		}

		s.mockQueries.EXPECT().ListSlots(gomock.Any(), salonID, serviceID, date, &employeeID).
			Return(filteredView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, filteredURL, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.EmployeeID)
		s.Equal(employeeID, *response.EmployeeID)
	})

	s.Run("success: closed day yields empty slot list", func() {
		emptyView := &queries.DayAvailabilityView{
			SalonID:   salonID,
			ServiceID: serviceID,
			Date:      "2026-09-08",
			Slots:     []string{},
		}
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), salonID, serviceID, date, (*uuid.UUID)(nil)).
			Return(emptyView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Slots)
	})

	s.Run("error: 400 Bad Request on invalid parameters", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "invalid salon UUID", url: "/salons/invalid-uuid/availability?service_id=" + serviceID.String() + "&date=2026-09-08"},
			{name: "missing service_id", url: baseURL + "?date=2026-09-08"},
			{name: "missing date", url: baseURL + "?service_id=" + serviceID.String()},
			{name: "malformed date", url: baseURL + "?service_id=" + serviceID.String() + "&date=08/09/2026"},
			{name: "malformed employee_id", url: url + "&employee_id=not-a-uuid"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "service not found",
				queriesError:   errs.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "employee not found",
				queriesError:   errs.ErrEmployeeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Employee not found",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().ListSlots(gomock.Any(), salonID, serviceID, date, (*uuid.UUID)(nil)).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestFindNearest
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestFindNearest() {
	salonID := uuid.New()
	serviceID := uuid.New()
	baseURL := "/salons/" + salonID.String() + "/availability/nearest"
	url := baseURL + "?service_id=" + serviceID.String()

	returnView := &queries.NearestSlotView{
		Date:  "2026-09-10",
		Slot:  "11:30",
		Slots: []string{"11:30", "15:00"},
	}

	s.Run("success: returns 200 OK with the nearest slot", func() {
		s.mockQueries.EXPECT().FindNearest(gomock.Any(), salonID, serviceID, (*uuid.UUID)(nil), time.Time{}, 0).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.NearestSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-09-10", response.Date)
		s.Equal("11:30", response.Slot)
	})

	s.Run("success: honors from and horizon_days", func() {
		from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		scopedURL := url + "&from=2026-10-01&horizon_days=30"

		s.mockQueries.EXPECT().FindNearest(gomock.Any(), salonID, serviceID, (*uuid.UUID)(nil), from, 30).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, scopedURL, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on invalid parameters", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "invalid salon UUID", url: "/salons/invalid-uuid/availability/nearest?service_id=" + serviceID.String()},
			{name: "missing service_id", url: baseURL},
			{name: "malformed from", url: url + "&from=next-monday"},
			{name: "horizon_days below 1", url: url + "&horizon_days=0"},
			{name: "horizon_days not numeric", url: url + "&horizon_days=soon"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 when the horizon holds no slot", func() {
		s.mockQueries.EXPECT().FindNearest(gomock.Any(), salonID, serviceID, (*uuid.UUID)(nil), time.Time{}, 0).
			Return(nil, errs.ErrNoSlotsInHorizon).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No available slot")
	})
}
